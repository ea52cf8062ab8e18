package archive

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/datetime"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

// exportSlotChunkSize bounds how many slots one txid range scan covers
// during the daily transaction export.
const exportSlotChunkSize = 1000

// writeGzJSON writes one gzip-compressed JSON document to path.
func writeGzJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	gz := gzip.NewWriter(f)
	w := bufio.NewWriter(gz)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportState writes the whirlpool-state artifact of one checkpoint date.
func ExportState(db *sqlx.DB, date uint32, path string) error {
	state, err := checkpoint.BuildWhirlpoolState(db, date)
	if err != nil {
		return err
	}
	return writeGzJSON(path, state)
}

// ExportToken writes the whirlpool-token artifact of one checkpoint date.
func ExportToken(db *sqlx.DB, date uint32, path string) error {
	compressed, err := checkpoint.FetchCompressed(db, date)
	if err != nil {
		return err
	}
	decimals, err := checkpoint.FetchTokenDecimals(db, compressed.Slot.Slot)
	if err != nil {
		return err
	}
	return writeGzJSON(path, schema.WhirlpoolToken{Decimals: decimals})
}

// ExportTransaction writes the whirlpool-transaction jsonl artifact: one
// record per slot whose block time falls inside the day, in ascending slot
// order.
func ExportTransaction(db *sqlx.DB, reader *txreader.Reader, date uint32, path string) error {
	minBlockTime := datetime.YYYYMMDDToUnix(date)
	maxBlockTime := minBlockTime + 24*60*60 - 1

	var slotRange struct {
		MinSlot uint64 `db:"minSlot"`
		MaxSlot uint64 `db:"maxSlot"`
	}
	err := db.Get(&slotRange,
		"SELECT min(slot) AS minSlot, max(slot) AS maxSlot FROM vwSlotsUntilCheckpoint WHERE blockTime BETWEEN ? AND ?",
		minBlockTime, maxBlockTime)
	if err != nil {
		return fmt.Errorf("failed to resolve slot range of %d: %w", date, err)
	}

	var slots []schema.Slot
	err = db.Select(&slots,
		"SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot BETWEEN ? AND ? ORDER BY slot ASC",
		slotRange.MinSlot, slotRange.MaxSlot)
	if err != nil {
		return fmt.Errorf("failed to fetch slots of %d: %w", date, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	gz := gzip.NewWriter(f)
	w := bufio.NewWriter(gz)

	for start := 0; start < len(slots); start += exportSlotChunkSize {
		end := start + exportSlotChunkSize
		if end > len(slots) {
			end = len(slots)
		}

		records, err := reader.FetchTransactions(slots[start:end])
		if err != nil {
			f.Close()
			return err
		}
		for _, record := range records {
			line, err := json.Marshal(record)
			if err != nil {
				f.Close()
				return err
			}
			if _, err := w.Write(line); err != nil {
				f.Close()
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				f.Close()
				return err
			}
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
