package txreader

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/schema"
)

func newMockReader(t *testing.T) (*Reader, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func expectRangeScans(mock sqlmock.Sqlmock, txs, balances, instructions *sqlmock.Rows) {
	mock.ExpectQuery("SELECT txid, signature, toPubkeyBase58\\(payer\\) as payer FROM txs").
		WillReturnRows(txs)
	mock.ExpectQuery("SELECT txid, toPubkeyBase58\\(account\\) as account, pre, post FROM balances").
		WillReturnRows(balances)
	mock.ExpectQuery("SELECT \\* FROM vwJsonIxsProgramDeploy").
		WillReturnRows(instructions)
}

func TestFetchTransactionsSingleSlot(t *testing.T) {
	reader, mock := newMockReader(t)

	txid := uint64(schema.NewTxid(100, 0))
	expectRangeScans(mock,
		sqlmock.NewRows([]string{"txid", "signature", "payer"}).
			AddRow(txid, "sigA", "P1"),
		sqlmock.NewRows([]string{"txid", "account", "pre", "post"}),
		sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}).
			AddRow(txid, 0, "swap", []byte(`{"dataAToB":true}`)),
	)

	records, err := reader.FetchTransactions([]schema.Slot{
		{Slot: 100, BlockHeight: 10, BlockTime: 1704067200},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, uint64(100), record.Slot)
	assert.Equal(t, uint64(10), record.BlockHeight)
	assert.Equal(t, int64(1704067200), record.BlockTime)
	require.Len(t, record.Transactions, 1)
	assert.Equal(t, uint32(0), record.Transactions[0].Index)
	assert.Equal(t, "sigA", record.Transactions[0].Signature)
	assert.Equal(t, "P1", record.Transactions[0].Payer)
	assert.Empty(t, record.Transactions[0].Balances)
	require.Len(t, record.Transactions[0].Instructions, 1)
	assert.Equal(t, "swap", record.Transactions[0].Instructions[0].Name)

	out, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"slot":100`)
	assert.Contains(t, string(out), `"block_height":10`)
	assert.Contains(t, string(out), `"signature":"sigA"`)
}

func TestFetchTransactionsSortsClientSide(t *testing.T) {
	reader, mock := newMockReader(t)

	tx0 := uint64(schema.NewTxid(100, 0))
	tx1 := uint64(schema.NewTxid(100, 1))
	// rows arrive unsorted, as the server gives no ordering guarantee
	expectRangeScans(mock,
		sqlmock.NewRows([]string{"txid", "signature", "payer"}).
			AddRow(tx1, "sigB", "P2").
			AddRow(tx0, "sigA", "P1"),
		sqlmock.NewRows([]string{"txid", "account", "pre", "post"}).
			AddRow(tx0, "ZZZ", 5, 6).
			AddRow(tx0, "AAA", 1, 2),
		sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}).
			AddRow(tx1, 1, "collectFees", []byte(`{}`)).
			AddRow(tx1, 0, "updateFeesAndRewards", []byte(`{}`)),
	)

	records, err := reader.FetchTransactions([]schema.Slot{{Slot: 100, BlockHeight: 10}})
	require.NoError(t, err)
	require.Len(t, records, 1)

	txs := records[0].Transactions
	require.Len(t, txs, 2)
	assert.Equal(t, uint32(0), txs[0].Index)
	assert.Equal(t, uint32(1), txs[1].Index)

	// balances sorted by account within the transaction
	require.Len(t, txs[0].Balances, 2)
	assert.Equal(t, "AAA", txs[0].Balances[0].Account)
	assert.Equal(t, "ZZZ", txs[0].Balances[1].Account)

	// instructions sorted by order
	require.Len(t, txs[1].Instructions, 2)
	assert.Equal(t, "updateFeesAndRewards", txs[1].Instructions[0].Name)
	assert.Equal(t, "collectFees", txs[1].Instructions[1].Name)
}

func TestFetchTransactionsEmptySlots(t *testing.T) {
	reader, mock := newMockReader(t)

	expectRangeScans(mock,
		sqlmock.NewRows([]string{"txid", "signature", "payer"}),
		sqlmock.NewRows([]string{"txid", "account", "pre", "post"}),
		sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}),
	)

	records, err := reader.FetchTransactions([]schema.Slot{
		{Slot: 100, BlockHeight: 10},
		{Slot: 101, BlockHeight: 11},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Transactions)
	assert.Empty(t, records[1].Transactions)
	assert.NotNil(t, records[0].Transactions)
}

func TestFetchTransactionsEmptyRange(t *testing.T) {
	reader, _ := newMockReader(t)
	_, err := reader.FetchTransactions(nil)
	assert.Error(t, err)
}

func TestFetchTransactionsSplitsBySlot(t *testing.T) {
	reader, mock := newMockReader(t)

	txSlot100 := uint64(schema.NewTxid(100, 0))
	txSlot102 := uint64(schema.NewTxid(102, 0))
	expectRangeScans(mock,
		sqlmock.NewRows([]string{"txid", "signature", "payer"}).
			AddRow(txSlot100, "sigA", "P1").
			AddRow(txSlot102, "sigC", "P3"),
		sqlmock.NewRows([]string{"txid", "account", "pre", "post"}),
		sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}),
	)

	records, err := reader.FetchTransactions([]schema.Slot{
		{Slot: 100}, {Slot: 101}, {Slot: 102},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Len(t, records[0].Transactions, 1)
	assert.Empty(t, records[1].Transactions)
	assert.Len(t, records[2].Transactions, 1)
}

func TestFetchNextSlotInfos(t *testing.T) {
	reader, mock := newMockReader(t)

	mock.ExpectQuery("SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot >=").
		WillReturnRows(sqlmock.NewRows([]string{"slot", "blockHeight", "blockTime"}).
			AddRow(100, 10, 1704067200).
			AddRow(101, 11, 1704067201))

	slots, err := reader.FetchNextSlotInfos(100, 128)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, uint64(100), slots[0].Slot)
	assert.Equal(t, uint64(11), slots[1].BlockHeight)
}

func TestFetchNextSlotInfosMissingStartSlot(t *testing.T) {
	reader, mock := newMockReader(t)

	mock.ExpectQuery("SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot >=").
		WillReturnRows(sqlmock.NewRows([]string{"slot", "blockHeight", "blockTime"}))

	_, err := reader.FetchNextSlotInfos(100, 128)
	assert.Error(t, err)
}

func TestFetchInstructionsInSlotDecodes(t *testing.T) {
	reader, mock := newMockReader(t)

	txid := uint64(schema.NewTxid(100, 0))
	mock.ExpectQuery("SELECT \\* FROM vwJsonIxsProgramDeploy").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}).
			AddRow(txid, 1, "collectFees", []byte(`{}`)).
			AddRow(txid, 0, "swap", []byte(`{"keyWhirlpool":"POOL"}`)))

	rows, err := reader.FetchInstructionsInSlot(100)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "swap", rows[0].Name)
	assert.Equal(t, uint8(0), rows[0].Order)
	assert.Equal(t, "collectFees", rows[1].Name)
}

func TestFetchInstructionsInSlotUnknownNameFails(t *testing.T) {
	reader, mock := newMockReader(t)

	txid := uint64(schema.NewTxid(100, 0))
	mock.ExpectQuery("SELECT \\* FROM vwJsonIxsProgramDeploy").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}).
			AddRow(txid, 0, "mystery", []byte(`{}`)))

	_, err := reader.FetchInstructionsInSlot(100)
	assert.Error(t, err)
}
