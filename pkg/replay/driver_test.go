package replay

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

func newDriver(t *testing.T, current schema.Slot, initialSlot uint64) (*Driver, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sdb := sqlx.NewDb(db, "sqlmock")
	engine := NewEngine(current, []byte{1}, accounts.NewMemoryStore(), &fakeProgram{})
	return NewDriver(sdb, txreader.New(sdb), engine, initialSlot), mock
}

func expectEmptyInstructionFetch(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT \\* FROM vwJsonIxsProgramDeploy").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}))
}

func TestReplaySlotSavesCheckpointAtDayBoundary(t *testing.T) {
	// slot 100 is the last slot of 2023-12-31; slot 101 opens 2024-01-01
	driver, mock := newDriver(t,
		schema.Slot{Slot: 100, BlockHeight: 10, BlockTime: 1704067199}, 50)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO states").
		WithArgs(uint32(20231231), uint64(100), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE admReplayerState SET latestReplayedDate").
		WithArgs(uint32(20231231)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectEmptyInstructionFetch(mock)

	err := driver.replaySlot(schema.Slot{Slot: 101, BlockHeight: 11, BlockTime: 1704067200})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, uint64(101), driver.engine.Slot().Slot)
}

func TestReplaySlotNoCheckpointWithinSameDay(t *testing.T) {
	driver, mock := newDriver(t,
		schema.Slot{Slot: 100, BlockHeight: 10, BlockTime: 1704067200}, 50)

	expectEmptyInstructionFetch(mock)

	err := driver.replaySlot(schema.Slot{Slot: 101, BlockHeight: 11, BlockTime: 1704067201})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaySlotNoCheckpointWhileBootstrapping(t *testing.T) {
	// current slot equals the checkpoint slot: the day boundary right after
	// bootstrap belongs to the already-persisted checkpoint
	driver, mock := newDriver(t,
		schema.Slot{Slot: 100, BlockHeight: 10, BlockTime: 1704067199}, 100)

	expectEmptyInstructionFetch(mock)

	err := driver.replaySlot(schema.Slot{Slot: 101, BlockHeight: 11, BlockTime: 1704067200})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaySlotRejectsNonSequentialHeight(t *testing.T) {
	driver, _ := newDriver(t,
		schema.Slot{Slot: 100, BlockHeight: 10, BlockTime: 1704067200}, 50)

	err := driver.replaySlot(schema.Slot{Slot: 101, BlockHeight: 12, BlockTime: 1704067201})
	assert.Error(t, err)
}

func TestReplaySlotRejectsDateGap(t *testing.T) {
	driver, _ := newDriver(t,
		schema.Slot{Slot: 100, BlockHeight: 10, BlockTime: 1704067199}, 50)

	// jumps from 2023-12-31 straight to 2024-01-02
	err := driver.replaySlot(schema.Slot{Slot: 101, BlockHeight: 11, BlockTime: 1704153600})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date gap")
}
