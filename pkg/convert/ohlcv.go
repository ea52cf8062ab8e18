package convert

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"

	"github.com/everlastingsong/sedimentology/pkg/event"
)

// OHLCVRecord is one line of the whirlpool-ohlcv jsonl artifacts: the candle
// of one pool in one time bucket. Volumes are raw token amounts serialized
// as decimal strings.
type OHLCVRecord struct {
	Whirlpool string `json:"w"`
	Timestamp int64  `json:"t"`

	Open  event.DecimalPrice `json:"o"`
	High  event.DecimalPrice `json:"h"`
	Low   event.DecimalPrice `json:"l"`
	Close event.DecimalPrice `json:"c"`

	VolumeA string `json:"va"`
	VolumeB string `json:"vb"`

	TradeCount uint64 `json:"n"`
}

type candle struct {
	whirlpool string
	timestamp int64

	open, high, low, close event.DecimalPrice
	highRat, lowRat        *big.Rat

	volumeA, volumeB *big.Int
	trades           uint64
}

const (
	bucketMinutely = 60
	bucketDaily    = 86400
)

// ProcessOHLCV aggregates the day's Traded events into daily and minutely
// candles per pool. Output rows are sorted by (timestamp, whirlpool), which
// keeps re-derivation byte-identical.
func ProcessOHLCV(previousStatePath, tokenPath, eventPath, dailyPath, minutelyPath string) error {
	// the decimals map guards against mismatched input files: every traded
	// mint must be known to the day's token artifact
	decimals, err := LoadTokenFile(tokenPath)
	if err != nil {
		return err
	}

	daily := make(map[string]*candle)
	minutely := make(map[string]*candle)

	err = scanJSONLines(eventPath, func(line []byte) error {
		var record event.Record
		if err := json.Unmarshal(line, &record); err != nil {
			return fmt.Errorf("failed to parse event line: %w", err)
		}
		traded := record.Event.Traded
		if traded == nil {
			return nil
		}

		if _, ok := decimals[traded.TransferIn.Mint]; !ok {
			return fmt.Errorf("traded mint %s missing from token file", traded.TransferIn.Mint)
		}
		if _, ok := decimals[traded.TransferOut.Mint]; !ok {
			return fmt.Errorf("traded mint %s missing from token file", traded.TransferOut.Mint)
		}

		if err := accumulate(daily, traded, record.BlockTime, bucketDaily); err != nil {
			return err
		}
		return accumulate(minutely, traded, record.BlockTime, bucketMinutely)
	})
	if err != nil {
		return err
	}

	if err := writeCandles(dailyPath, daily); err != nil {
		return err
	}
	return writeCandles(minutelyPath, minutely)
}

func accumulate(candles map[string]*candle, traded *event.TradedEventPayload, blockTime int64, bucketSeconds int64) error {
	bucket := blockTime - blockTime%bucketSeconds
	key := fmt.Sprintf("%d/%s", bucket, traded.Whirlpool)

	price := traded.NewDecimalPrice
	priceRat, ok := new(big.Rat).SetString(string(price))
	if !ok {
		return fmt.Errorf("invalid decimal price %q", price)
	}

	amountA, amountB := tradedVolumes(traded)

	c, exists := candles[key]
	if !exists {
		c = &candle{
			whirlpool: traded.Whirlpool,
			timestamp: bucket,
			open:      traded.OldDecimalPrice,
			high:      price,
			low:       price,
			highRat:   priceRat,
			lowRat:    priceRat,
			volumeA:   new(big.Int),
			volumeB:   new(big.Int),
		}
		candles[key] = c
	}

	if priceRat.Cmp(c.highRat) > 0 {
		c.high = price
		c.highRat = priceRat
	}
	if priceRat.Cmp(c.lowRat) < 0 {
		c.low = price
		c.lowRat = priceRat
	}
	c.close = price
	c.volumeA.Add(c.volumeA, new(big.Int).SetUint64(amountA))
	c.volumeB.Add(c.volumeB, new(big.Int).SetUint64(amountB))
	c.trades++
	return nil
}

// tradedVolumes splits a trade's transfers into token A and token B amounts.
func tradedVolumes(traded *event.TradedEventPayload) (amountA, amountB uint64) {
	if traded.TradeDirection == event.TradeDirectionAtoB {
		return uint64(traded.TransferIn.Amount), uint64(traded.TransferOut.Amount)
	}
	return uint64(traded.TransferOut.Amount), uint64(traded.TransferIn.Amount)
}

func writeCandles(path string, candles map[string]*candle) error {
	ordered := make([]*candle, 0, len(candles))
	for _, c := range candles {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].timestamp != ordered[j].timestamp {
			return ordered[i].timestamp < ordered[j].timestamp
		}
		return ordered[i].whirlpool < ordered[j].whirlpool
	})

	out, err := newJSONLWriter(path)
	if err != nil {
		return err
	}
	for _, c := range ordered {
		record := OHLCVRecord{
			Whirlpool:  c.whirlpool,
			Timestamp:  c.timestamp,
			Open:       c.open,
			High:       c.high,
			Low:        c.low,
			Close:      c.close,
			VolumeA:    c.volumeA.String(),
			VolumeB:    c.volumeB.String(),
			TradeCount: c.trades,
		}
		if err := out.WriteLine(record); err != nil {
			out.Close()
			return err
		}
	}
	return out.Close()
}
