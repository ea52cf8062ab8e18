package checkpoint

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/schema"
)

// State is a decoded daily checkpoint.
type State struct {
	Date        uint32
	Slot        schema.Slot
	ProgramData []byte
}

// Compressed is a checkpoint row as stored, with the slot metadata joined in.
type Compressed struct {
	Date                  uint32
	Slot                  schema.Slot
	ProgramCompressedData []byte
	AccountCompressedData []byte
}

// FetchLatestReplayedDate reads the replayer progress cursor.
func FetchLatestReplayedDate(db *sqlx.DB) (uint32, error) {
	var date uint32
	if err := db.Get(&date, "SELECT latestReplayedDate FROM admReplayerState"); err != nil {
		return 0, fmt.Errorf("failed to fetch latestReplayedDate: %w", err)
	}
	return date, nil
}

// FetchLatestStateDate resolves the newest checkpoint date.
func FetchLatestStateDate(db *sqlx.DB) (uint32, error) {
	var date uint32
	if err := db.Get(&date, "SELECT max(date) FROM states"); err != nil {
		return 0, fmt.Errorf("failed to fetch latest state date: %w", err)
	}
	return date, nil
}

// FetchCheckpointBlockSlot reads the indexer's checkpoint slot, the default
// starting point for catch-up streaming.
func FetchCheckpointBlockSlot(db *sqlx.DB) (uint64, error) {
	var slot uint64
	if err := db.Get(&slot, "SELECT checkpointBlockSlot FROM admState"); err != nil {
		return 0, fmt.Errorf("failed to fetch checkpointBlockSlot: %w", err)
	}
	return slot, nil
}

// FetchCompressed reads one checkpoint row with its slot metadata.
func FetchCompressed(db *sqlx.DB, date uint32) (*Compressed, error) {
	row := db.QueryRow(`
		SELECT
			states.date,
			states.slot,
			slots.blockHeight,
			slots.blockTime,
			states.programCompressedData,
			states.accountCompressedData
		FROM
			states LEFT OUTER JOIN slots ON states.slot = slots.slot
		WHERE
			states.date = ?`, date)

	var c Compressed
	err := row.Scan(&c.Date, &c.Slot.Slot, &c.Slot.BlockHeight, &c.Slot.BlockTime,
		&c.ProgramCompressedData, &c.AccountCompressedData)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checkpoint %d: %w", date, err)
	}
	return &c, nil
}

// FetchState loads the checkpoint of date, decompressing the program binary
// and loading the account set into store.
func FetchState(db *sqlx.DB, date uint32, store accounts.Store) (*State, error) {
	compressed, err := FetchCompressed(db, date)
	if err != nil {
		return nil, err
	}

	programData, err := DecompressProgramData(compressed.ProgramCompressedData)
	if err != nil {
		return nil, err
	}
	if err := DecompressAccountsInto(compressed.AccountCompressedData, store); err != nil {
		return nil, err
	}

	return &State{
		Date:        compressed.Date,
		Slot:        compressed.Slot,
		ProgramData: programData,
	}, nil
}

// Advance persists a checkpoint and moves latestReplayedDate forward in a
// single transaction, so a crash cannot leave the cursor ahead of the blob.
func Advance(db *sqlx.DB, date uint32, slot uint64, programData []byte, store accounts.Store) error {
	programCompressed, err := CompressProgramData(programData)
	if err != nil {
		return err
	}
	accountCompressed, err := CompressAccounts(store)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO states (date, slot, programCompressedData, accountCompressedData) VALUES (?, ?, ?, ?)",
		date, slot, programCompressed, accountCompressed)
	if err != nil {
		return fmt.Errorf("failed to insert checkpoint %d: %w", date, err)
	}

	if _, err = tx.Exec("UPDATE admReplayerState SET latestReplayedDate = ?", date); err != nil {
		return fmt.Errorf("failed to advance latestReplayedDate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkpoint %d: %w", date, err)
	}
	return nil
}
