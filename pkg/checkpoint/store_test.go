package checkpoint

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestFetchLatestReplayedDate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT latestReplayedDate FROM admReplayerState").
		WillReturnRows(sqlmock.NewRows([]string{"latestReplayedDate"}).AddRow(20231231))

	date, err := FetchLatestReplayedDate(db)
	require.NoError(t, err)
	assert.Equal(t, uint32(20231231), date)
}

func TestFetchState(t *testing.T) {
	db, mock := newMockDB(t)

	programCompressed, err := CompressProgramData([]byte{1, 2, 3})
	require.NoError(t, err)

	src := accounts.NewMemoryStore()
	require.NoError(t, src.Upsert("POOL", []byte{9}))
	accountCompressed, err := CompressAccounts(src)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT(?s).*FROM(?s).*states LEFT OUTER JOIN slots").
		WillReturnRows(sqlmock.NewRows([]string{
			"date", "slot", "blockHeight", "blockTime",
			"programCompressedData", "accountCompressedData",
		}).AddRow(20231231, 100, 10, 1704067199, programCompressed, accountCompressed))

	store := accounts.NewMemoryStore()
	state, err := FetchState(db, 20231231, store)
	require.NoError(t, err)
	assert.Equal(t, uint32(20231231), state.Date)
	assert.Equal(t, uint64(100), state.Slot.Slot)
	assert.Equal(t, uint64(10), state.Slot.BlockHeight)
	assert.Equal(t, []byte{1, 2, 3}, state.ProgramData)

	data, ok, err := store.Get("POOL")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{9}, data)
}

func TestAdvanceCommitsBlobAndCursorTogether(t *testing.T) {
	db, mock := newMockDB(t)

	store := accounts.NewMemoryStore()
	require.NoError(t, store.Upsert("POOL", []byte{9}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO states").
		WithArgs(uint32(20231231), uint64(100), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE admReplayerState SET latestReplayedDate").
		WithArgs(uint32(20231231)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, Advance(db, 20231231, 100, []byte{1}, store))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceRollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO states").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := Advance(db, 20231231, 100, []byte{1}, accounts.NewMemoryStore())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
