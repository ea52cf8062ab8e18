package event

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

func TestPriceFromSqrtPriceUnity(t *testing.T) {
	// sqrt_price = 2^64 encodes price 1.0
	sqrtPrice, err := whirlpool.NewU128("18446744073709551616")
	require.NoError(t, err)

	price := PriceFromSqrtPrice(sqrtPrice, 6, 6)
	assert.Equal(t, DecimalPrice("1.000000000000"), price)
}

func TestPriceFromSqrtPriceDecimalsDelta(t *testing.T) {
	sqrtPrice, err := whirlpool.NewU128("18446744073709551616") // raw price 1.0
	require.NoError(t, err)

	// SOL(9) vs USDC(6): decimal price = 1.0 * 10^(9-6) = 1000
	price := PriceFromSqrtPrice(sqrtPrice, 9, 6)
	assert.True(t, strings.HasPrefix(string(price), "1000.0"), price)

	// inverted delta scales down
	price = PriceFromSqrtPrice(sqrtPrice, 6, 9)
	assert.True(t, strings.HasPrefix(string(price), "0.001"), price)
}

func TestPriceFromSqrtPriceDeterminism(t *testing.T) {
	sqrtPrice, err := whirlpool.NewU128("79226673515401279992447579055")
	require.NoError(t, err)

	first := PriceFromSqrtPrice(sqrtPrice, 9, 6)
	second := PriceFromSqrtPrice(sqrtPrice, 9, 6)
	assert.Equal(t, first, second)
}

func TestPriceFromTickIndex(t *testing.T) {
	// tick 0 is price 1.0
	assert.Equal(t, DecimalPrice("1.000000000000"), PriceFromTickIndex(0, 6, 6))

	// 1.0001^1
	assert.Equal(t, DecimalPrice("1.000100000000"), PriceFromTickIndex(1, 6, 6))

	// negative tick is the reciprocal
	up := PriceFromTickIndex(100, 6, 6)
	down := PriceFromTickIndex(-100, 6, 6)
	assert.True(t, strings.HasPrefix(string(up), "1.01"), up)
	assert.True(t, strings.HasPrefix(string(down), "0.99"), down)
}

func TestEventUnionMarshalsExternallyTagged(t *testing.T) {
	e := Event{PoolMigrated: &PoolMigratedEventPayload{
		Origin:    PoolMigratedOriginMigrateRepurposeRewardAuthoritySpace,
		Whirlpool: "POOL",
	}}

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"PoolMigrated":{"o":"mrras","w":"POOL"}}`, string(out))
}

func TestRecordMarshalsShortKeys(t *testing.T) {
	r := Record{
		Slot:        100,
		BlockHeight: 10,
		BlockTime:   1704067200,
		Signature:   "sigA",
		Event: Event{ProgramDeployed: &ProgramDeployedEventPayload{
			Origin:          ProgramDeployedOriginProgramDeploy,
			ProgramDataSize: 42,
		}},
	}

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"s":100`)
	assert.Contains(t, string(out), `"bt":1704067200`)
	assert.Contains(t, string(out), `"ProgramDeployed"`)
}
