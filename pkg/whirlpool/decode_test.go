package whirlpool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONSwap(t *testing.T) {
	payload := `{
		"dataAmount": "1000000",
		"dataOtherAmountThreshold": "0",
		"dataSqrtPriceLimit": "79226673515401279992447579055",
		"dataAmountSpecifiedIsInput": true,
		"dataAToB": true,
		"keyTokenAuthority": "AUTH",
		"keyWhirlpool": "POOL",
		"keyTokenVaultA": "VA",
		"keyTokenVaultB": "VB",
		"keyTickArray0": "TA0",
		"keyTickArray1": "TA1",
		"keyTickArray2": "TA2",
		"keyOracle": "ORACLE",
		"transferAmount0": "1000000",
		"transferAmount1": "997"
	}`

	ix, err := FromJSON("swap", []byte(payload))
	require.NoError(t, err)

	swap, ok := ix.(*SwapInstruction)
	require.True(t, ok)
	assert.Equal(t, U64(1000000), swap.DataAmount)
	assert.True(t, swap.DataAToB)
	assert.Equal(t, "79226673515401279992447579055", swap.DataSqrtPriceLimit.String())
	assert.Equal(t, "POOL", swap.KeyWhirlpool)
	assert.Equal(t, []string{"POOL", "VA", "VB", "TA0", "TA1", "TA2", "ORACLE"},
		swap.WritableAccounts())
}

func TestFromJSONUnknownName(t *testing.T) {
	_, err := FromJSON("notAnInstruction", []byte("{}"))
	assert.Error(t, err)
}

func TestFromJSONInvalidPayload(t *testing.T) {
	_, err := FromJSON("swap", []byte(`{"dataAmount": "not-a-number"}`))
	assert.Error(t, err)
}

func TestEveryVariantDecodesAndReportsItsName(t *testing.T) {
	for _, name := range KnownNames() {
		ix, err := FromJSON(name, []byte("{}"))
		require.NoError(t, err, name)
		assert.Equal(t, name, ix.Name())
	}
}

func TestU64RoundTrip(t *testing.T) {
	out, err := json.Marshal(U64(18446744073709551615))
	require.NoError(t, err)
	assert.Equal(t, `"18446744073709551615"`, string(out))

	var u U64
	require.NoError(t, json.Unmarshal(out, &u))
	assert.Equal(t, U64(18446744073709551615), u)

	// bare numbers from older rows are tolerated
	require.NoError(t, json.Unmarshal([]byte("42"), &u))
	assert.Equal(t, U64(42), u)
}

func TestU128RoundTrip(t *testing.T) {
	u, err := NewU128("340282366920938463463374607431768211455") // 2^128-1
	require.NoError(t, err)

	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"340282366920938463463374607431768211455"`, string(out))

	var back U128
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, u.String(), back.String())
}

func TestU128RejectsOverflow(t *testing.T) {
	_, err := NewU128("340282366920938463463374607431768211456") // 2^128
	assert.Error(t, err)
	_, err = NewU128("-1")
	assert.Error(t, err)
}

func TestWritableAccountsIncludeRemainingAccounts(t *testing.T) {
	ix := SwapV2Instruction{
		KeyWhirlpool:          "POOL",
		KeyTokenVaultA:        "VA",
		KeyTokenVaultB:        "VB",
		KeyTickArray0:         "TA0",
		KeyTickArray1:         "TA1",
		KeyTickArray2:         "TA2",
		KeyOracle:             "ORACLE",
		RemainingAccountsKeys: []string{"SUPP1", "SUPP2"},
	}
	assert.Contains(t, ix.WritableAccounts(), "SUPP1")
	assert.Contains(t, ix.WritableAccounts(), "SUPP2")
}
