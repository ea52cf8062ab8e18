package schema

import "encoding/json"

// Slot is a single tick of the source chain. Once observed it is never
// modified; block heights are dense within any contiguous run.
type Slot struct {
	Slot        uint64 `db:"slot"`
	BlockHeight uint64 `db:"blockHeight"`
	BlockTime   int64  `db:"blockTime"`
}

// Txid packs (slot, index) into one integer: txid = slot<<24 | index.
// Range scans over txid are used as slot-range scans.
type Txid uint64

const (
	// TxidIndexBits is the width of the per-slot transaction index.
	TxidIndexBits = 24
	// TxidIndexMask masks the index out of a txid.
	TxidIndexMask = (1 << TxidIndexBits) - 1
)

// NewTxid packs a slot and an in-slot index.
func NewTxid(slot uint64, index uint32) Txid {
	return Txid(slot<<TxidIndexBits | uint64(index))
}

// Slot extracts the slot of a txid.
func (t Txid) Slot() uint64 {
	return uint64(t) >> TxidIndexBits
}

// Index extracts the in-slot index of a txid.
func (t Txid) Index() uint32 {
	return uint32(uint64(t) & TxidIndexMask)
}

// MinTxid returns the smallest txid belonging to slot.
func MinTxid(slot uint64) uint64 {
	return slot << TxidIndexBits
}

// MaxTxid returns the largest txid belonging to slot.
func MaxTxid(slot uint64) uint64 {
	return ((slot + 1) << TxidIndexBits) - 1
}

// WhirlpoolTransaction is one jsonl record: all transactions of one slot.
type WhirlpoolTransaction struct {
	Slot         uint64        `json:"slot"`
	BlockHeight  uint64        `json:"block_height"`
	BlockTime    int64         `json:"block_time"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is a single transaction within a slot.
type Transaction struct {
	Index        uint32                   `json:"index"`
	Signature    string                   `json:"signature"`
	Payer        string                   `json:"payer"`
	Balances     []TransactionBalance     `json:"balances"`
	Instructions []TransactionInstruction `json:"instructions"`
}

// TransactionBalance is a pre/post token balance of one account.
type TransactionBalance struct {
	Account string `json:"account"`
	Pre     uint64 `json:"pre"`
	Post    uint64 `json:"post"`
}

// TransactionInstruction is one decoded instruction with its opaque payload.
type TransactionInstruction struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// WhirlpoolState is the daily state artifact: the full account set at the
// last slot of a day, with the deployed program and the token decimals map.
type WhirlpoolState struct {
	Slot        uint64                  `json:"slot"`
	BlockHeight uint64                  `json:"block_height"`
	BlockTime   int64                   `json:"block_time"`
	Accounts    []WhirlpoolStateAccount `json:"accounts"`
	Decimals    []TokenDecimals         `json:"decimals"`
	ProgramData Bytes                   `json:"program_data"`
}

// WhirlpoolStateAccount is one account entry, sorted by pubkey in the artifact.
type WhirlpoolStateAccount struct {
	Pubkey string `json:"pubkey"`
	Data   Bytes  `json:"data"`
}

// TokenDecimals maps a mint to its decimals.
type TokenDecimals struct {
	Mint     string `json:"mint" db:"mint"`
	Decimals uint8  `json:"decimals" db:"decimals"`
}

// WhirlpoolToken is the daily token artifact: the decimals map of every mint
// observed up to the day's checkpoint.
type WhirlpoolToken struct {
	Decimals []TokenDecimals `json:"decimals"`
}
