package distribute

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"

	"github.com/everlastingsong/sedimentology/pkg/schema"
)

// insertChunkSize is how many rows one INSERT statement carries. Inserting
// one row at a time is slow against a distant destination, and a batched
// exec does not reduce round trips, so a single statement carries multiple
// VALUES groups; max_allowed_packet on the destination must accommodate it.
const insertChunkSize = 32

// SlotData is one slot's jsonl record ready for mirroring.
type SlotData struct {
	Slot  schema.Slot
	JSONL []byte
}

// codec wraps a shared zstd encoder/decoder pair. Level 3 is the standard
// zstd level; rows are small enough that window tuning is pointless.
type codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func newCodec() (*codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &codec{encoder: encoder, decoder: decoder}, nil
}

// compress encodes a row and verifies the encoding by decoding it back, a
// defense against silent corruption before the bytes leave the process.
func (c *codec) compress(jsonl []byte) ([]byte, error) {
	compressed := c.encoder.EncodeAll(jsonl, nil)

	decoded, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd verification decode failed: %w", err)
	}
	if !bytes.Equal(decoded, jsonl) {
		return nil, fmt.Errorf("zstd verification mismatch: %d bytes in, %d bytes out", len(jsonl), len(decoded))
	}
	return compressed, nil
}

// AdvanceDestState mirrors a batch into the destination in one transaction:
// compressed row inserts, the retention delete, and the destination cursor
// update commit or roll back together. Returns (raw, compressed) byte
// totals.
func AdvanceDestState(db *sqlx.DB, c *codec, batch []SlotData, keepBlockHeight uint64) (int, int, error) {
	if len(batch) == 0 {
		return 0, 0, fmt.Errorf("empty batch")
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin destination transaction: %w", err)
	}
	defer tx.Rollback()

	totalRaw := 0
	totalCompressed := 0
	for start := 0; start < len(batch); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(batch) {
			end = len(batch)
		}
		chunk := batch[start:end]

		placeholders := make([]string, len(chunk))
		args := make([]interface{}, 0, len(chunk)*4)
		for i, row := range chunk {
			compressed, err := c.compress(row.JSONL)
			if err != nil {
				return 0, 0, err
			}
			totalRaw += len(row.JSONL)
			totalCompressed += len(compressed)

			placeholders[i] = "(?, ?, ?, ?)"
			args = append(args, row.Slot.Slot, row.Slot.BlockHeight, row.Slot.BlockTime, compressed)
		}

		stmt := "INSERT INTO transactions (slot, blockHeight, blockTime, data) VALUES " +
			strings.Join(placeholders, ", ")
		if _, err := tx.Exec(stmt, args...); err != nil {
			return 0, 0, fmt.Errorf("failed to insert batch: %w", err)
		}
	}

	last := batch[len(batch)-1].Slot
	threshold := saturatingSub(last.BlockHeight, keepBlockHeight)
	if _, err := tx.Exec("DELETE FROM transactions WHERE blockHeight < ?", threshold); err != nil {
		return 0, 0, fmt.Errorf("failed to prune retention window: %w", err)
	}

	_, err = tx.Exec(
		"UPDATE admDistributorDestState SET latestDistributedBlockSlot = ?, latestDistributedBlockHeight = ?, latestDistributedBlockTime = ?",
		last.Slot, last.BlockHeight, last.BlockTime)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to advance destination cursor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit destination transaction: %w", err)
	}
	return totalRaw, totalCompressed, nil
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
