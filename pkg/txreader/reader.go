package txreader

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/everlastingsong/sedimentology/pkg/schema"
)

// Reader reassembles per-slot transaction records from the normalized row
// tables. It never mutates the source store.
type Reader struct {
	db *sqlx.DB
}

// New creates a Reader over the source database.
func New(db *sqlx.DB) *Reader {
	return &Reader{db: db}
}

// FetchSlotInfo fetches exactly one slot's metadata.
func (r *Reader) FetchSlotInfo(slot uint64) (schema.Slot, error) {
	var rows []schema.Slot
	err := r.db.Select(&rows,
		"SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot = ?", slot)
	if err != nil {
		return schema.Slot{}, fmt.Errorf("failed to fetch slot %d: %w", slot, err)
	}
	if len(rows) != 1 {
		return schema.Slot{}, fmt.Errorf("slot %d not found", slot)
	}
	return rows[0], nil
}

// FetchNextSlotInfos fetches up to limit slot metadata rows starting at
// startSlot inclusive. startSlot itself must exist; at least one row is
// always returned.
func (r *Reader) FetchNextSlotInfos(startSlot uint64, limit uint16) ([]schema.Slot, error) {
	var rows []schema.Slot
	err := r.db.Select(&rows,
		"SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot >= ? ORDER BY slot ASC LIMIT ?",
		startSlot, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots from %d: %w", startSlot, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no slots at or after %d; start slot must exist", startSlot)
	}
	return rows, nil
}

type txRow struct {
	Txid      uint64 `db:"txid"`
	Signature string `db:"signature"`
	Payer     string `db:"payer"`
}

type balanceRow struct {
	Txid    uint64 `db:"txid"`
	Account string `db:"account"`
	Pre     uint64 `db:"pre"`
	Post    uint64 `db:"post"`
}

type instructionRow struct {
	Txid    uint64
	Order   uint8
	Name    string
	Payload []byte
}

// FetchTransactions reassembles one WhirlpoolTransaction record per slot.
// slots must be a contiguous, non-empty ascending range. Slots without
// transactions yield a record with an empty transaction list.
func (r *Reader) FetchTransactions(slots []schema.Slot) ([]schema.WhirlpoolTransaction, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("empty slot range")
	}

	minTxid := schema.MinTxid(slots[0].Slot)
	maxTxid := schema.MaxTxid(slots[len(slots)-1].Slot)

	var transactions []txRow
	err := r.db.Select(&transactions,
		"SELECT txid, signature, toPubkeyBase58(payer) as payer FROM txs WHERE txid BETWEEN ? AND ?",
		minTxid, maxTxid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Txid < transactions[j].Txid
	})

	var balances []balanceRow
	err = r.db.Select(&balances,
		"SELECT txid, toPubkeyBase58(account) as account, pre, post FROM balances WHERE txid BETWEEN ? AND ?",
		minTxid, maxTxid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].Txid != balances[j].Txid {
			return balances[i].Txid < balances[j].Txid
		}
		return balances[i].Account < balances[j].Account
	})

	instructions, err := r.fetchInstructionRows(minTxid, maxTxid)
	if err != nil {
		return nil, err
	}

	result := make([]schema.WhirlpoolTransaction, 0, len(slots))
	for _, slot := range slots {
		txs := make([]schema.Transaction, 0)
		upper := schema.MinTxid(slot.Slot + 1)
		for len(transactions) > 0 && transactions[0].Txid < upper {
			tx := transactions[0]
			transactions = transactions[1:]

			balancesInTx := make([]schema.TransactionBalance, 0)
			for len(balances) > 0 && balances[0].Txid == tx.Txid {
				b := balances[0]
				balances = balances[1:]
				balancesInTx = append(balancesInTx, schema.TransactionBalance{
					Account: b.Account,
					Pre:     b.Pre,
					Post:    b.Post,
				})
			}

			instructionsInTx := make([]schema.TransactionInstruction, 0)
			for len(instructions) > 0 && instructions[0].Txid == tx.Txid {
				ix := instructions[0]
				instructions = instructions[1:]
				instructionsInTx = append(instructionsInTx, schema.TransactionInstruction{
					Name:    ix.Name,
					Payload: json.RawMessage(ix.Payload),
				})
			}

			txs = append(txs, schema.Transaction{
				Index:        schema.Txid(tx.Txid).Index(),
				Signature:    tx.Signature,
				Payer:        tx.Payer,
				Balances:     balancesInTx,
				Instructions: instructionsInTx,
			})
		}

		result = append(result, schema.WhirlpoolTransaction{
			Slot:         slot.Slot,
			BlockHeight:  slot.BlockHeight,
			BlockTime:    slot.BlockTime,
			Transactions: txs,
		})
	}

	return result, nil
}

func (r *Reader) fetchInstructionRows(minTxid, maxTxid uint64) ([]instructionRow, error) {
	args := make([]interface{}, 0, len(instructionViews)*2)
	for range instructionViews {
		args = append(args, minTxid, maxTxid)
	}

	rows, err := r.db.Query(instructionUnionSQL(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instructions: %w", err)
	}
	defer rows.Close()

	var instructions []instructionRow
	for rows.Next() {
		var ix instructionRow
		if err := rows.Scan(&ix.Txid, &ix.Order, &ix.Name, &ix.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan instruction row: %w", err)
		}
		instructions = append(instructions, ix)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch instructions: %w", err)
	}

	sort.Slice(instructions, func(i, j int) bool {
		if instructions[i].Txid != instructions[j].Txid {
			return instructions[i].Txid < instructions[j].Txid
		}
		return instructions[i].Order < instructions[j].Order
	})
	return instructions, nil
}
