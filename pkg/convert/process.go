package convert

import (
	"encoding/json"
	"fmt"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/event"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// ProcessEvent derives the whirlpool-event jsonl artifact for one day.
//
// It is a pure function of its file inputs: the previous day's state is
// loaded into a fresh in-memory store, the day's transactions are replayed
// through the engine (so every instruction sees its pre- and post-state),
// and each instruction's events are appended to the output. No retries
// happen here; the archiver's day-level retry subsumes them.
func ProcessEvent(previousStatePath, tokenPath, transactionPath, eventPath string, program replay.Program) error {
	state, err := LoadStateFile(previousStatePath)
	if err != nil {
		return err
	}
	decimals, err := LoadTokenFile(tokenPath)
	if err != nil {
		return err
	}

	store := accounts.NewMemoryStore()
	defer store.Close()
	for _, account := range state.Accounts {
		if err := store.Upsert(account.Pubkey, account.Data); err != nil {
			return err
		}
	}

	// the executor must hold the previous day's binary before any replay
	if err := program.Deploy(state.ProgramData); err != nil {
		return err
	}

	engine := replay.NewEngine(
		schema.Slot{Slot: state.Slot, BlockHeight: state.BlockHeight, BlockTime: state.BlockTime},
		state.ProgramData, store, program)
	builder := NewBuilder(decimals, store)

	out, err := newJSONLWriter(eventPath)
	if err != nil {
		return err
	}

	err = scanJSONLines(transactionPath, func(line []byte) error {
		var record schema.WhirlpoolTransaction
		if err := json.Unmarshal(line, &record); err != nil {
			return fmt.Errorf("failed to parse transaction line: %w", err)
		}

		engine.UpdateSlot(record.Slot, record.BlockHeight, record.BlockTime)
		for _, tx := range record.Transactions {
			for _, rawIx := range tx.Instructions {
				ix, err := whirlpool.FromJSON(rawIx.Name, rawIx.Payload)
				if err != nil {
					return err
				}

				var events []event.Event
				if deploy, ok := ix.(*whirlpool.ProgramDeployInstruction); ok {
					if err := engine.UpdateProgramData(deploy.ProgramData); err != nil {
						return err
					}
					events, err = builder.Build(ix, nil)
					if err != nil {
						return err
					}
				} else {
					snapshot, err := engine.ReplayInstruction(ix)
					if err != nil {
						return err
					}
					events, err = builder.Build(ix, snapshot)
					if err != nil {
						return err
					}
				}

				for _, e := range events {
					err := out.WriteLine(event.Record{
						Slot:        record.Slot,
						BlockHeight: record.BlockHeight,
						BlockTime:   record.BlockTime,
						Signature:   tx.Signature,
						Event:       e,
					})
					if err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
