package stream

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sdb := sqlx.NewDb(db, "sqlmock")
	s := &Server{
		db:     sdb,
		reader: txreader.New(sdb),
		logger: zerolog.New(io.Discard),
	}
	return s, mock
}

// sseEvents splits a text/event-stream body into its data payloads.
func sseEvents(body string) []string {
	var events []string
	for _, block := range strings.Split(body, "\n\n") {
		if strings.HasPrefix(block, "data: ") {
			events = append(events, strings.TrimPrefix(block, "data: "))
		}
	}
	return events
}

func expectSlotFetch(mock sqlmock.Sqlmock, slots ...[3]int64) {
	rows := sqlmock.NewRows([]string{"slot", "blockHeight", "blockTime"})
	for _, s := range slots {
		rows.AddRow(s[0], s[1], s[2])
	}
	mock.ExpectQuery("SELECT slot, blockHeight, blockTime FROM vwSlotsUntilCheckpoint WHERE slot >=").
		WillReturnRows(rows)
}

func expectEmptyRangeScans(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT txid, signature").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "signature", "payer"}))
	mock.ExpectQuery("SELECT txid, toPubkeyBase58").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "account", "pre", "post"}))
	mock.ExpectQuery("SELECT \\* FROM vwJsonIxsProgramDeploy").
		WillReturnRows(sqlmock.NewRows([]string{"txid", "ord", "name", "payload"}))
}

func TestStreamDeliversSlotsInOrderThenHeartbeat(t *testing.T) {
	oldWait, oldLimit := noMoreSlotWait, noMoreSlotWaitLimit
	noMoreSlotWait, noMoreSlotWaitLimit = 5*time.Millisecond, 20*time.Millisecond
	defer func() { noMoreSlotWait, noMoreSlotWaitLimit = oldWait, oldLimit }()

	s, mock := newTestServer(t)

	// first fetch: slots 50..52; 50 is the client's slot and is popped
	expectSlotFetch(mock, [3]int64{50, 5, 1704067200}, [3]int64{51, 6, 1704067201}, [3]int64{52, 7, 1704067202})
	expectEmptyRangeScans(mock)
	// subsequent fetches find nothing new until the heartbeat fires
	for i := 0; i < 100; i++ {
		expectSlotFetch(mock, [3]int64{52, 7, 1704067202})
	}

	req := httptest.NewRequest("GET", "/stream?slot=50&limit=3", nil)
	rec := httptest.NewRecorder()
	s.handleStream(rec, req)

	res := rec.Result()
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	events := sseEvents(rec.Body.String())
	require.Len(t, events, 3)

	var first schema.WhirlpoolTransaction
	require.NoError(t, json.Unmarshal([]byte(events[0]), &first))
	assert.Equal(t, uint64(51), first.Slot)

	var second schema.WhirlpoolTransaction
	require.NoError(t, json.Unmarshal([]byte(events[1]), &second))
	assert.Equal(t, uint64(52), second.Slot)

	// the third event is an empty heartbeat
	assert.Equal(t, "", events[2])
}

func TestStreamLimitCountsHeartbeats(t *testing.T) {
	oldWait, oldLimit := noMoreSlotWait, noMoreSlotWaitLimit
	noMoreSlotWait, noMoreSlotWaitLimit = 5*time.Millisecond, 20*time.Millisecond
	defer func() { noMoreSlotWait, noMoreSlotWaitLimit = oldWait, oldLimit }()

	s, mock := newTestServer(t)

	// the store never advances past slot 50: only heartbeats flow
	for i := 0; i < 200; i++ {
		expectSlotFetch(mock, [3]int64{50, 5, 1704067200})
	}

	req := httptest.NewRequest("GET", "/stream?slot=50&limit=3", nil)
	rec := httptest.NewRecorder()
	s.handleStream(rec, req)

	events := sseEvents(rec.Body.String())
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, "", e)
	}
}

func TestStreamRejectsBadParams(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/stream?slot=banana", nil)
	rec := httptest.NewRecorder()
	s.handleStream(rec, req)
	assert.Equal(t, 400, rec.Code)
}

func TestStateServesGzipBlob(t *testing.T) {
	s, mock := newTestServer(t)

	programCompressed, err := checkpoint.CompressProgramData([]byte{1, 2, 3})
	require.NoError(t, err)
	src := accounts.NewMemoryStore()
	require.NoError(t, src.Upsert("POOL", []byte{9}))
	accountCompressed, err := checkpoint.CompressAccounts(src)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT(?s).*FROM(?s).*states LEFT OUTER JOIN slots").
		WillReturnRows(sqlmock.NewRows([]string{
			"date", "slot", "blockHeight", "blockTime",
			"programCompressedData", "accountCompressedData",
		}).AddRow(20231231, 100, 10, 1704067199, programCompressed, accountCompressed))
	mock.ExpectQuery("SELECT(?s).*toPubkeyBase58\\(mints.mint\\)").
		WillReturnRows(sqlmock.NewRows([]string{"mint", "decimals"}).AddRow("MINT", 6))

	req := httptest.NewRequest("GET", "/state?yyyymmdd=20231231", nil)
	rec := httptest.NewRecorder()
	s.handleState(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/gzip", rec.Header().Get("Content-Type"))

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	var state schema.WhirlpoolState
	require.NoError(t, json.NewDecoder(gz).Decode(&state))
	assert.Equal(t, uint64(100), state.Slot)
	assert.Equal(t, []byte{1, 2, 3}, []byte(state.ProgramData))
	require.Len(t, state.Accounts, 1)
	assert.Equal(t, "POOL", state.Accounts[0].Pubkey)
	require.Len(t, state.Decimals, 1)
	assert.Equal(t, uint8(6), state.Decimals[0].Decimals)
}

func TestStateResolvesLatestDate(t *testing.T) {
	s, mock := newTestServer(t)

	mock.ExpectQuery("SELECT max\\(date\\) FROM states").
		WillReturnRows(sqlmock.NewRows([]string{"max(date)"}).AddRow(20240101))
	// the state row itself is missing: 404, but the latest date was resolved
	mock.ExpectQuery("SELECT(?s).*FROM(?s).*states LEFT OUTER JOIN slots").
		WillReturnError(assert.AnError)

	req := httptest.NewRequest("GET", "/state", nil)
	rec := httptest.NewRecorder()
	s.handleState(rec, req)
	assert.Equal(t, 404, rec.Code)
}
