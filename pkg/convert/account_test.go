package convert

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWhirlpoolAccount assembles a minimal pool account image.
func buildWhirlpoolAccount(t *testing.T, tickSpacing, feeTierIndexSeed, feeRate, protocolFeeRate uint16, sqrtPrice uint64, tickCurrentIndex int32, mintA, mintB byte) []byte {
	t.Helper()
	data := make([]byte, 653)
	binary.LittleEndian.PutUint16(data[offWhirlpoolTickSpacing:], tickSpacing)
	binary.LittleEndian.PutUint16(data[offWhirlpoolFeeTierIndex:], feeTierIndexSeed)
	binary.LittleEndian.PutUint16(data[offWhirlpoolFeeRate:], feeRate)
	binary.LittleEndian.PutUint16(data[offWhirlpoolProtocolFee:], protocolFeeRate)
	binary.LittleEndian.PutUint64(data[offWhirlpoolSqrtPrice:], sqrtPrice)
	binary.LittleEndian.PutUint32(data[offWhirlpoolTickCurrent:], uint32(tickCurrentIndex))
	data[offWhirlpoolTokenMintA] = mintA
	data[offWhirlpoolTokenMintB] = mintB
	return data
}

func TestParseWhirlpool(t *testing.T) {
	data := buildWhirlpoolAccount(t, 64, 64, 3000, 300, 1<<40, -1234, 1, 2)

	pool, err := ParseWhirlpool(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(64), pool.TickSpacing)
	assert.Equal(t, uint16(3000), pool.FeeRate)
	assert.Equal(t, uint16(300), pool.ProtocolFeeRate)
	assert.Equal(t, int32(-1234), pool.TickCurrentIndex)
	assert.False(t, pool.IsInitializedWithAdaptiveFeeTier())
	assert.NotEqual(t, pool.TokenMintA, pool.TokenMintB)
}

func TestParseWhirlpoolAdaptiveSeed(t *testing.T) {
	data := buildWhirlpoolAccount(t, 64, 1064, 3000, 300, 1<<40, 0, 1, 2)
	pool, err := ParseWhirlpool(data)
	require.NoError(t, err)
	assert.True(t, pool.IsInitializedWithAdaptiveFeeTier())
}

func TestParseWhirlpoolTooShort(t *testing.T) {
	_, err := ParseWhirlpool(make([]byte, 10))
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	data := make([]byte, 216)
	data[offPositionWhirlpool] = 9
	data[offPositionMint] = 7
	tickLower := int32(-128)
	binary.LittleEndian.PutUint32(data[offPositionTickLower:], uint32(tickLower))
	binary.LittleEndian.PutUint32(data[offPositionTickUpper:], 128)

	position, err := ParsePosition(data)
	require.NoError(t, err)
	assert.Equal(t, int32(-128), position.TickLowerIndex)
	assert.Equal(t, int32(128), position.TickUpperIndex)
	assert.NotEmpty(t, position.Whirlpool)
}

func TestBase58Encode(t *testing.T) {
	// 32 zero bytes is the system program address
	zeros := make([]byte, 32)
	assert.Equal(t, "11111111111111111111111111111111", base58Encode(zeros))
}

func TestReadU128(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint64(data[0:8], 5)
	binary.LittleEndian.PutUint64(data[8:16], 1)
	u := readU128(data)
	// 1<<64 + 5
	assert.Equal(t, "18446744073709551621", u.String())
}
