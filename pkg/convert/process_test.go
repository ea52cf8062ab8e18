package convert

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/event"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// noopProgram applies nothing; instruction-only events still derive.
type noopProgram struct{}

func (noopProgram) Deploy([]byte) error { return nil }

func (noopProgram) Execute(whirlpool.DecodedInstruction, *replay.WritableAccountSnapshot) ([]replay.AccountWrite, error) {
	return nil, nil
}

func writeStateFile(t *testing.T, path string, state *schema.WhirlpoolState) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	require.NoError(t, json.NewEncoder(gz).Encode(state))
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func writeTokenFile(t *testing.T, path string, token schema.WhirlpoolToken) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	require.NoError(t, json.NewEncoder(gz).Encode(token))
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func writeTransactionFile(t *testing.T, path string, records []schema.WhirlpoolTransaction) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	for _, r := range records {
		line, err := json.Marshal(r)
		require.NoError(t, err)
		_, err = gz.Write(append(line, '\n'))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func readEventRecords(t *testing.T, path string) []event.Record {
	t.Helper()
	var records []event.Record
	require.NoError(t, scanJSONLines(path, func(line []byte) error {
		var r event.Record
		if err := json.Unmarshal(line, &r); err != nil {
			return err
		}
		records = append(records, r)
		return nil
	}))
	return records
}

func TestProcessEventDerivesInstructionEvents(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "previous-state.tmp")
	tokenPath := filepath.Join(dir, "token.tmp")
	txPath := filepath.Join(dir, "transaction.tmp")
	eventPath := filepath.Join(dir, "event.tmp")

	writeStateFile(t, statePath, &schema.WhirlpoolState{
		Slot: 99, BlockHeight: 9, BlockTime: 1704067100,
		Accounts:    []schema.WhirlpoolStateAccount{},
		Decimals:    []schema.TokenDecimals{},
		ProgramData: schema.Bytes{1},
	})
	writeTokenFile(t, tokenPath, schema.WhirlpoolToken{Decimals: []schema.TokenDecimals{
		{Mint: "MINT", Decimals: 6},
	}})

	payload, err := json.Marshal(map[string]interface{}{
		"dataStartTickIndex": -128,
		"keyWhirlpool":       "POOL",
		"keyTickArray":       "TA",
	})
	require.NoError(t, err)
	writeTransactionFile(t, txPath, []schema.WhirlpoolTransaction{
		{
			Slot: 100, BlockHeight: 10, BlockTime: 1704067200,
			Transactions: []schema.Transaction{{
				Index:     0,
				Signature: "sigA",
				Payer:     "P1",
				Instructions: []schema.TransactionInstruction{
					{Name: "initializeTickArray", Payload: payload},
				},
			}},
		},
	})

	require.NoError(t, ProcessEvent(statePath, tokenPath, txPath, eventPath, noopProgram{}))

	records := readEventRecords(t, eventPath)
	require.Len(t, records, 1)
	assert.Equal(t, uint64(100), records[0].Slot)
	assert.Equal(t, "sigA", records[0].Signature)
	require.NotNil(t, records[0].Event.TickArrayInitialized)
	assert.Equal(t, int32(-128), records[0].Event.TickArrayInitialized.StartTickIndex)
}

func TestProcessEventIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "previous-state.tmp")
	tokenPath := filepath.Join(dir, "token.tmp")
	txPath := filepath.Join(dir, "transaction.tmp")

	writeStateFile(t, statePath, &schema.WhirlpoolState{
		Slot: 99, Accounts: []schema.WhirlpoolStateAccount{}, ProgramData: schema.Bytes{},
	})
	writeTokenFile(t, tokenPath, schema.WhirlpoolToken{})
	writeTransactionFile(t, txPath, []schema.WhirlpoolTransaction{
		{Slot: 100, BlockHeight: 10, BlockTime: 1704067200},
	})

	out1 := filepath.Join(dir, "event1.tmp")
	out2 := filepath.Join(dir, "event2.tmp")
	require.NoError(t, ProcessEvent(statePath, tokenPath, txPath, out1, noopProgram{}))
	require.NoError(t, ProcessEvent(statePath, tokenPath, txPath, out2, noopProgram{}))

	b1, err := os.ReadFile(out1)
	require.NoError(t, err)
	b2, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func tradedRecord(pool string, blockTime int64, oldPrice, newPrice string, inAmount, outAmount uint64) event.Record {
	return event.Record{
		Slot: 100, BlockHeight: 10, BlockTime: blockTime, Signature: "sig",
		Event: event.Event{Traded: &event.TradedEventPayload{
			Origin:          event.TradedOriginSwap,
			TradeDirection:  event.TradeDirectionAtoB,
			Whirlpool:       pool,
			OldDecimalPrice: event.DecimalPrice(oldPrice),
			NewDecimalPrice: event.DecimalPrice(newPrice),
			TransferIn:      event.TransferInfo{Mint: "MA", Amount: whirlpool.U64(inAmount), Decimals: 6},
			TransferOut:     event.TransferInfo{Mint: "MB", Amount: whirlpool.U64(outAmount), Decimals: 6},
		}},
	}
}

func TestProcessOHLCVAggregatesTrades(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "previous-state.tmp")
	tokenPath := filepath.Join(dir, "token.tmp")
	eventPath := filepath.Join(dir, "event.tmp")
	dailyPath := filepath.Join(dir, "daily.tmp")
	minutelyPath := filepath.Join(dir, "minutely.tmp")

	writeStateFile(t, statePath, &schema.WhirlpoolState{})
	writeTokenFile(t, tokenPath, schema.WhirlpoolToken{Decimals: []schema.TokenDecimals{
		{Mint: "MA", Decimals: 6}, {Mint: "MB", Decimals: 6},
	}})

	// two trades in the same minute, one in the next
	f, err := os.Create(eventPath)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	for _, r := range []event.Record{
		tradedRecord("POOL", 1704067200, "1.0", "1.5", 100, 150),
		tradedRecord("POOL", 1704067210, "1.5", "0.8", 50, 40),
		tradedRecord("POOL", 1704067260, "0.8", "2.0", 10, 20),
	} {
		line, err := json.Marshal(r)
		require.NoError(t, err)
		_, err = gz.Write(append(line, '\n'))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	require.NoError(t, ProcessOHLCV(statePath, tokenPath, eventPath, dailyPath, minutelyPath))

	var minutely []OHLCVRecord
	require.NoError(t, scanJSONLines(minutelyPath, func(line []byte) error {
		var r OHLCVRecord
		if err := json.Unmarshal(line, &r); err != nil {
			return err
		}
		minutely = append(minutely, r)
		return nil
	}))
	require.Len(t, minutely, 2)

	first := minutely[0]
	assert.Equal(t, int64(1704067200), first.Timestamp)
	assert.Equal(t, event.DecimalPrice("1.0"), first.Open)
	assert.Equal(t, event.DecimalPrice("1.5"), first.High)
	assert.Equal(t, event.DecimalPrice("0.8"), first.Low)
	assert.Equal(t, event.DecimalPrice("0.8"), first.Close)
	assert.Equal(t, "150", first.VolumeA)
	assert.Equal(t, "190", first.VolumeB)
	assert.Equal(t, uint64(2), first.TradeCount)

	var daily []OHLCVRecord
	require.NoError(t, scanJSONLines(dailyPath, func(line []byte) error {
		var r OHLCVRecord
		if err := json.Unmarshal(line, &r); err != nil {
			return err
		}
		daily = append(daily, r)
		return nil
	}))
	require.Len(t, daily, 1)
	assert.Equal(t, event.DecimalPrice("2.0"), daily[0].High)
	assert.Equal(t, uint64(3), daily[0].TradeCount)
}

func TestProcessOHLCVRejectsUnknownMint(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "previous-state.tmp")
	tokenPath := filepath.Join(dir, "token.tmp")
	eventPath := filepath.Join(dir, "event.tmp")

	writeStateFile(t, statePath, &schema.WhirlpoolState{})
	writeTokenFile(t, tokenPath, schema.WhirlpoolToken{})

	f, err := os.Create(eventPath)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	line, err := json.Marshal(tradedRecord("POOL", 1704067200, "1.0", "1.5", 1, 1))
	require.NoError(t, err)
	_, err = gz.Write(append(line, '\n'))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	err = ProcessOHLCV(statePath, tokenPath, eventPath,
		filepath.Join(dir, "d.tmp"), filepath.Join(dir, "m.tmp"))
	assert.Error(t, err)
}
