package distribute

import (
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func cursorRows(slot, height uint64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"latestDistributedBlockSlot", "latestDistributedBlockHeight"}).
		AddRow(slot, height)
}

func slotRows(slot, height uint64, blockTime int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"slot", "blockHeight", "blockTime"}).
		AddRow(slot, height, blockTime)
}

func TestNewWorkerCursorsEqual(t *testing.T) {
	source, sourceMock := newMockDB(t)
	dest, destMock := newMockDB(t)

	sourceMock.ExpectQuery("SELECT(?s).*FROM(?s).*admDistributorState").
		WithArgs("alpha").
		WillReturnRows(cursorRows(1000, 100))
	destMock.ExpectQuery("SELECT(?s).*FROM admDistributorDestState").
		WillReturnRows(cursorRows(1000, 100))
	sourceMock.ExpectQuery("SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot =").
		WithArgs(uint64(1000)).
		WillReturnRows(slotRows(1000, 100, 1704067200))

	w, err := NewWorker(source, dest, txreader.New(source), "alpha", DefaultKeepBlockHeight)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), w.Cursor().Slot)
}

func TestNewWorkerFastForwardsSourceCursor(t *testing.T) {
	source, sourceMock := newMockDB(t)
	dest, destMock := newMockDB(t)

	// prior crash between destination commit and source commit
	sourceMock.ExpectQuery("SELECT(?s).*FROM(?s).*admDistributorState").
		WithArgs("alpha").
		WillReturnRows(cursorRows(1000, 100))
	destMock.ExpectQuery("SELECT(?s).*FROM admDistributorDestState").
		WillReturnRows(cursorRows(1005, 105))
	sourceMock.ExpectQuery("SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot =").
		WithArgs(uint64(1005)).
		WillReturnRows(slotRows(1005, 105, 1704067205))
	sourceMock.ExpectBegin()
	sourceMock.ExpectExec("UPDATE admDistributorState SET latestDistributedBlockSlot").
		WithArgs(uint64(1005), uint64(105), int64(1704067205), "alpha").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sourceMock.ExpectCommit()

	w, err := NewWorker(source, dest, txreader.New(source), "alpha", DefaultKeepBlockHeight)
	require.NoError(t, err)
	assert.Equal(t, uint64(1005), w.Cursor().Slot)
	assert.NoError(t, sourceMock.ExpectationsWereMet())
}

func TestNewWorkerRejectsTrailingDestination(t *testing.T) {
	source, sourceMock := newMockDB(t)
	dest, destMock := newMockDB(t)

	sourceMock.ExpectQuery("SELECT(?s).*FROM(?s).*admDistributorState").
		WillReturnRows(cursorRows(1000, 100))
	destMock.ExpectQuery("SELECT(?s).*FROM admDistributorDestState").
		WillReturnRows(cursorRows(999, 99))

	_, err := NewWorker(source, dest, txreader.New(source), "alpha", DefaultKeepBlockHeight)
	assert.Error(t, err)
}

func TestNewWorkerRejectsDestinationTooFarAhead(t *testing.T) {
	source, sourceMock := newMockDB(t)
	dest, destMock := newMockDB(t)

	sourceMock.ExpectQuery("SELECT(?s).*FROM(?s).*admDistributorState").
		WillReturnRows(cursorRows(1000, 100))
	destMock.ExpectQuery("SELECT(?s).*FROM admDistributorDestState").
		WillReturnRows(cursorRows(2000, 100+uint64(FetchChunkSize)+1))

	_, err := NewWorker(source, dest, txreader.New(source), "alpha", DefaultKeepBlockHeight)
	assert.Error(t, err)
}

func TestCodecRoundTripAndVerification(t *testing.T) {
	c, err := newCodec()
	require.NoError(t, err)

	jsonl := []byte(`{"slot":100,"block_height":10,"block_time":1704067200,"transactions":[]}`)
	compressed, err := c.compress(jsonl)
	require.NoError(t, err)
	assert.NotEqual(t, jsonl, compressed)

	decoded, err := c.decoder.DecodeAll(compressed, nil)
	require.NoError(t, err)
	assert.Equal(t, jsonl, decoded)
}

func TestAdvanceDestStateCommitsBatchRetentionAndCursor(t *testing.T) {
	dest, destMock := newMockDB(t)
	c, err := newCodec()
	require.NoError(t, err)

	batch := []SlotData{
		{Slot: schema.Slot{Slot: 1021, BlockHeight: 21, BlockTime: 1}, JSONL: []byte(`{"slot":1021}`)},
		{Slot: schema.Slot{Slot: 1025, BlockHeight: 25, BlockTime: 5}, JSONL: []byte(`{"slot":1025}`)},
	}

	destMock.ExpectBegin()
	destMock.ExpectExec("INSERT INTO transactions \\(slot, blockHeight, blockTime, data\\)").
		WillReturnResult(sqlmock.NewResult(0, 2))
	// keep_block_height 10, last height 25: prune everything below 15
	destMock.ExpectExec("DELETE FROM transactions WHERE blockHeight <").
		WithArgs(uint64(15)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	destMock.ExpectExec("UPDATE admDistributorDestState SET latestDistributedBlockSlot").
		WithArgs(uint64(1025), uint64(25), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	destMock.ExpectCommit()

	raw, compressed, err := AdvanceDestState(dest, c, batch, 10)
	require.NoError(t, err)
	assert.Positive(t, raw)
	assert.Positive(t, compressed)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

func TestAdvanceDestStateSaturatesRetentionThreshold(t *testing.T) {
	dest, destMock := newMockDB(t)
	c, err := newCodec()
	require.NoError(t, err)

	batch := []SlotData{
		{Slot: schema.Slot{Slot: 5, BlockHeight: 5, BlockTime: 1}, JSONL: []byte(`{}`)},
	}

	destMock.ExpectBegin()
	destMock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// height 5 with keep 648000 saturates to 0 instead of wrapping
	destMock.ExpectExec("DELETE FROM transactions WHERE blockHeight <").
		WithArgs(uint64(0)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	destMock.ExpectExec("UPDATE admDistributorDestState").
		WillReturnResult(sqlmock.NewResult(0, 1))
	destMock.ExpectCommit()

	_, _, err = AdvanceDestState(dest, c, batch, DefaultKeepBlockHeight)
	require.NoError(t, err)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

func TestAdvanceDestStateRollsBackOnInsertFailure(t *testing.T) {
	dest, destMock := newMockDB(t)
	c, err := newCodec()
	require.NoError(t, err)

	destMock.ExpectBegin()
	destMock.ExpectExec("INSERT INTO transactions").WillReturnError(assert.AnError)
	destMock.ExpectRollback()

	_, _, err = AdvanceDestState(dest, c,
		[]SlotData{{Slot: schema.Slot{Slot: 1, BlockHeight: 1}, JSONL: []byte(`{}`)}}, 10)
	assert.Error(t, err)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

func TestDistributeRejectsSparseHeights(t *testing.T) {
	source, sourceMock := newMockDB(t)
	dest, destMock := newMockDB(t)

	// reader range scans come back empty; the records still carry the
	// slot metadata of the input range
	sourceMock.ExpectQuery("SELECT txid, signature").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "signature", "payer"}))
	sourceMock.ExpectQuery("SELECT txid, toPubkeyBase58").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "account", "pre", "post"}))
	sourceMock.ExpectQuery("SELECT \\* FROM vwJsonIxsProgramDeploy").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}))

	c, err := newCodec()
	require.NoError(t, err)
	w := &Worker{
		source: source,
		dest:   dest,
		reader: txreader.New(source),
		codec:  c,
		logger: zerolog.New(io.Discard),
	}

	// height jumps by 2 over 2 slots
	err = w.distribute([]schema.Slot{
		{Slot: 1001, BlockHeight: 101},
		{Slot: 1002, BlockHeight: 103},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not dense")

	// nothing reached the destination
	assert.NoError(t, destMock.ExpectationsWereMet())
}
