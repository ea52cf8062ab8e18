package distribute

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/everlastingsong/sedimentology/pkg/schema"
)

// Cursor is one distributor progress record.
type Cursor struct {
	Slot        uint64 `db:"latestDistributedBlockSlot"`
	BlockHeight uint64 `db:"latestDistributedBlockHeight"`
}

// FetchSourceCursor reads the per-profile cursor on the source side.
func FetchSourceCursor(db *sqlx.DB, profile string) (Cursor, error) {
	var c Cursor
	err := db.Get(&c, `
		SELECT
			latestDistributedBlockSlot,
			latestDistributedBlockHeight
		FROM
			admDistributorState
		WHERE
			profile = ?`, profile)
	if err != nil {
		return Cursor{}, fmt.Errorf("failed to fetch source cursor: %w", err)
	}
	return c, nil
}

// FetchDestCursor reads the cursor on the destination side.
func FetchDestCursor(db *sqlx.DB) (Cursor, error) {
	var c Cursor
	err := db.Get(&c, `
		SELECT
			latestDistributedBlockSlot,
			latestDistributedBlockHeight
		FROM admDistributorDestState`)
	if err != nil {
		return Cursor{}, fmt.Errorf("failed to fetch destination cursor: %w", err)
	}
	return c, nil
}

// AdvanceSourceCursor records the destination's commit on the source, in its
// own transaction. It runs after the destination transaction on purpose: a
// crash between the two is detected at startup by destination > source.
func AdvanceSourceCursor(db *sqlx.DB, profile string, slot schema.Slot) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE admDistributorState SET latestDistributedBlockSlot = ?, latestDistributedBlockHeight = ?, latestDistributedBlockTime = ? WHERE profile = ?",
		slot.Slot, slot.BlockHeight, slot.BlockTime, profile)
	if err != nil {
		return fmt.Errorf("failed to advance source cursor: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit source cursor: %w", err)
	}
	return nil
}
