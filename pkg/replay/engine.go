package replay

import (
	"fmt"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// Engine sequentially applies decoded instructions to the typed account
// store, advancing a monotone slot cursor. The engine is single-writer: only
// the driver goroutine may call its methods.
type Engine struct {
	slot        schema.Slot
	programData []byte
	accounts    accounts.Store
	program     Program
}

// NewEngine builds an engine resumed from a checkpoint.
func NewEngine(slot schema.Slot, programData []byte, store accounts.Store, program Program) *Engine {
	return &Engine{
		slot:        slot,
		programData: programData,
		accounts:    store,
		program:     program,
	}
}

// Slot returns the current slot cursor.
func (e *Engine) Slot() schema.Slot {
	return e.slot
}

// ProgramData returns the currently deployed program binary.
func (e *Engine) ProgramData() []byte {
	return e.programData
}

// Accounts exposes the account store for checkpointing. Callers must not
// mutate it.
func (e *Engine) Accounts() accounts.Store {
	return e.accounts
}

// UpdateSlot advances the slot cursor. Height monotonicity is asserted by
// the driver before the call, where the bootstrap case is visible.
func (e *Engine) UpdateSlot(slot, blockHeight uint64, blockTime int64) {
	e.slot = schema.Slot{Slot: slot, BlockHeight: blockHeight, BlockTime: blockTime}
}

// UpdateProgramData atomically replaces the program binary after a
// program-deploy instruction.
func (e *Engine) UpdateProgramData(programData []byte) error {
	if err := e.program.Deploy(programData); err != nil {
		return fmt.Errorf("failed to deploy program: %w", err)
	}
	e.programData = programData
	return nil
}

// ReplayInstruction applies one decoded instruction: the writable set is
// snapshotted, the program produces account writes, and the writes are
// committed to the store. The returned snapshot stays valid until the next
// call and feeds event derivation.
func (e *Engine) ReplayInstruction(ix whirlpool.DecodedInstruction) (*WritableAccountSnapshot, error) {
	snapshot, err := NewSnapshot(e.accounts, ix.WritableAccounts())
	if err != nil {
		return nil, err
	}

	writes, err := e.program.Execute(ix, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", ix.Name(), err)
	}

	for _, w := range writes {
		if !snapshot.Contains(w.Pubkey) {
			return nil, fmt.Errorf("%s wrote account %s outside its writable set", ix.Name(), w.Pubkey)
		}
		if w.Delete {
			if err := e.accounts.Delete(w.Pubkey); err != nil {
				return nil, fmt.Errorf("failed to delete %s: %w", w.Pubkey, err)
			}
			continue
		}
		if err := e.accounts.Upsert(w.Pubkey, w.Data); err != nil {
			return nil, fmt.Errorf("failed to upsert %s: %w", w.Pubkey, err)
		}
	}

	return snapshot, nil
}
