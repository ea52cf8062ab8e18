package convert

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// Known token program addresses. Any other owner on a transfer path is a
// data-integrity failure.
const (
	TokenProgramAddress     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	Token2022ProgramAddress = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

// WhirlpoolAccount is the subset of the pool account layout the event
// derivation reads.
type WhirlpoolAccount struct {
	WhirlpoolsConfig string
	TickSpacing      uint16
	FeeTierIndexSeed uint16
	FeeRate          uint16
	ProtocolFeeRate  uint16
	Liquidity        whirlpool.U128
	SqrtPrice        whirlpool.U128
	TickCurrentIndex int32
	TokenMintA       string
	TokenMintB       string

	// RewardMints are the configured reward slots; uninitialized slots hold
	// the zero address.
	RewardMints [3]string
}

// Anchor account layout offsets of the Whirlpool account.
const (
	whirlpoolMinLen          = 261
	offWhirlpoolConfig       = 8
	offWhirlpoolTickSpacing  = 41
	offWhirlpoolFeeTierIndex = 43
	offWhirlpoolFeeRate      = 45
	offWhirlpoolProtocolFee  = 47
	offWhirlpoolLiquidity    = 49
	offWhirlpoolSqrtPrice    = 65
	offWhirlpoolTickCurrent  = 81
	offWhirlpoolTokenMintA   = 101
	offWhirlpoolTokenMintB   = 181
	offWhirlpoolRewardInfos  = 269
	whirlpoolRewardInfoLen   = 128
)

// ParseWhirlpool extracts the derivation-relevant fields from a pool
// account's raw bytes.
func ParseWhirlpool(data []byte) (*WhirlpoolAccount, error) {
	if len(data) < whirlpoolMinLen {
		return nil, fmt.Errorf("whirlpool account too short: %d bytes", len(data))
	}
	var rewardMints [3]string
	for i := 0; i < 3; i++ {
		off := offWhirlpoolRewardInfos + i*whirlpoolRewardInfoLen
		if len(data) >= off+32 {
			rewardMints[i] = encodePubkey(data[off : off+32])
		}
	}
	return &WhirlpoolAccount{
		WhirlpoolsConfig: encodePubkey(data[offWhirlpoolConfig : offWhirlpoolConfig+32]),
		TickSpacing:      binary.LittleEndian.Uint16(data[offWhirlpoolTickSpacing:]),
		FeeTierIndexSeed: binary.LittleEndian.Uint16(data[offWhirlpoolFeeTierIndex:]),
		FeeRate:          binary.LittleEndian.Uint16(data[offWhirlpoolFeeRate:]),
		ProtocolFeeRate:  binary.LittleEndian.Uint16(data[offWhirlpoolProtocolFee:]),
		Liquidity:        readU128(data[offWhirlpoolLiquidity:]),
		SqrtPrice:        readU128(data[offWhirlpoolSqrtPrice:]),
		TickCurrentIndex: int32(binary.LittleEndian.Uint32(data[offWhirlpoolTickCurrent:])),
		TokenMintA:       encodePubkey(data[offWhirlpoolTokenMintA : offWhirlpoolTokenMintA+32]),
		TokenMintB:       encodePubkey(data[offWhirlpoolTokenMintB : offWhirlpoolTokenMintB+32]),
		RewardMints:      rewardMints,
	}, nil
}

// IsInitializedWithAdaptiveFeeTier reports whether the pool was created from
// an adaptive fee tier: such pools seed the tick-spacing field with the fee
// tier index instead.
func (a *WhirlpoolAccount) IsInitializedWithAdaptiveFeeTier() bool {
	return a.FeeTierIndexSeed != a.TickSpacing
}

// ConfigAccount is the subset of the WhirlpoolsConfig account layout the
// event derivation reads.
type ConfigAccount struct {
	DefaultProtocolFeeRate uint16
}

// ParseConfig extracts the derivation-relevant fields from the config
// account's raw bytes.
func ParseConfig(data []byte) (*ConfigAccount, error) {
	if len(data) < 106 {
		return nil, fmt.Errorf("config account too short: %d bytes", len(data))
	}
	return &ConfigAccount{
		DefaultProtocolFeeRate: binary.LittleEndian.Uint16(data[104:]),
	}, nil
}

// FeeTierAccount is the subset of the fee tier account layout the event
// derivation reads.
type FeeTierAccount struct {
	TickSpacing    uint16
	DefaultFeeRate uint16
}

// ParseFeeTier extracts the derivation-relevant fields from a fee tier
// account's raw bytes.
func ParseFeeTier(data []byte) (*FeeTierAccount, error) {
	if len(data) < 44 {
		return nil, fmt.Errorf("fee tier account too short: %d bytes", len(data))
	}
	return &FeeTierAccount{
		TickSpacing:    binary.LittleEndian.Uint16(data[40:]),
		DefaultFeeRate: binary.LittleEndian.Uint16(data[42:]),
	}, nil
}

// AdaptiveFeeTierAccount is the subset of the adaptive fee tier account
// layout the event derivation reads.
type AdaptiveFeeTierAccount struct {
	FeeTierIndex            uint16
	TickSpacing             uint16
	InitializePoolAuthority string
	DelegatedFeeAuthority   string
	DefaultBaseFeeRate      uint16

	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	AdaptiveFeeControlFactor uint32
	MaxVolatilityAccumulator uint32
	TickGroupSize            uint16
	MajorSwapThresholdTicks  uint16
}

// ParseAdaptiveFeeTier extracts the derivation-relevant fields from an
// adaptive fee tier account's raw bytes.
func ParseAdaptiveFeeTier(data []byte) (*AdaptiveFeeTierAccount, error) {
	if len(data) < 130 {
		return nil, fmt.Errorf("adaptive fee tier account too short: %d bytes", len(data))
	}
	return &AdaptiveFeeTierAccount{
		FeeTierIndex:             binary.LittleEndian.Uint16(data[40:]),
		TickSpacing:              binary.LittleEndian.Uint16(data[42:]),
		InitializePoolAuthority:  encodePubkey(data[44:76]),
		DelegatedFeeAuthority:    encodePubkey(data[76:108]),
		DefaultBaseFeeRate:       binary.LittleEndian.Uint16(data[108:]),
		FilterPeriod:             binary.LittleEndian.Uint16(data[110:]),
		DecayPeriod:              binary.LittleEndian.Uint16(data[112:]),
		ReductionFactor:          binary.LittleEndian.Uint16(data[114:]),
		AdaptiveFeeControlFactor: binary.LittleEndian.Uint32(data[116:]),
		MaxVolatilityAccumulator: binary.LittleEndian.Uint32(data[120:]),
		TickGroupSize:            binary.LittleEndian.Uint16(data[124:]),
		MajorSwapThresholdTicks:  binary.LittleEndian.Uint16(data[126:]),
	}, nil
}

// TokenBadgeAccount is the token badge account's attribute block.
type TokenBadgeAccount struct {
	RequireNonTransferablePosition bool
}

// ParseTokenBadge extracts the attribute flags from a token badge account.
func ParseTokenBadge(data []byte) (*TokenBadgeAccount, error) {
	if len(data) < 73 {
		return nil, fmt.Errorf("token badge account too short: %d bytes", len(data))
	}
	return &TokenBadgeAccount{
		RequireNonTransferablePosition: data[72] != 0,
	}, nil
}

// PositionAccount is the subset of the position account layout the event
// derivation reads.
type PositionAccount struct {
	Whirlpool      string
	PositionMint   string
	Liquidity      whirlpool.U128
	TickLowerIndex int32
	TickUpperIndex int32
}

const (
	positionMinLen       = 96
	offPositionWhirlpool = 8
	offPositionMint      = 40
	offPositionLiquidity = 72
	offPositionTickLower = 88
	offPositionTickUpper = 92
)

// ParsePosition extracts the derivation-relevant fields from a position
// account's raw bytes.
func ParsePosition(data []byte) (*PositionAccount, error) {
	if len(data) < positionMinLen {
		return nil, fmt.Errorf("position account too short: %d bytes", len(data))
	}
	return &PositionAccount{
		Whirlpool:      encodePubkey(data[offPositionWhirlpool : offPositionWhirlpool+32]),
		PositionMint:   encodePubkey(data[offPositionMint : offPositionMint+32]),
		Liquidity:      readU128(data[offPositionLiquidity:]),
		TickLowerIndex: int32(binary.LittleEndian.Uint32(data[offPositionTickLower:])),
		TickUpperIndex: int32(binary.LittleEndian.Uint32(data[offPositionTickUpper:])),
	}, nil
}

// OracleAccount is the adaptive fee state the Traded event snapshots.
type OracleAccount struct {
	AdaptiveFeeVariables AdaptiveFeeVariablesRaw
}

// AdaptiveFeeVariablesRaw mirrors the on-chain oracle variables block.
type AdaptiveFeeVariablesRaw struct {
	LastReferenceUpdateTimestamp uint64
	LastMajorSwapTimestamp       uint64
	VolatilityReference          uint32
	TickGroupIndexReference      int32
	VolatilityAccumulator        uint32
}

const (
	oracleMinLen      = 120
	offOracleVariables = 100
)

// ParseOracle extracts the adaptive fee variables from an oracle account.
func ParseOracle(data []byte) (*OracleAccount, error) {
	if len(data) < oracleMinLen {
		return nil, fmt.Errorf("oracle account too short: %d bytes", len(data))
	}
	v := data[offOracleVariables:]
	return &OracleAccount{
		AdaptiveFeeVariables: AdaptiveFeeVariablesRaw{
			LastReferenceUpdateTimestamp: binary.LittleEndian.Uint64(v[0:]),
			LastMajorSwapTimestamp:       binary.LittleEndian.Uint64(v[8:]),
			VolatilityReference:          binary.LittleEndian.Uint32(v[16:]),
			TickGroupIndexReference:      int32(binary.LittleEndian.Uint32(v[20:])),
			VolatilityAccumulator:        binary.LittleEndian.Uint32(v[24:]),
		},
	}, nil
}

func readU128(data []byte) whirlpool.U128 {
	lo := binary.LittleEndian.Uint64(data[0:8])
	hi := binary.LittleEndian.Uint64(data[8:16])
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	u, err := whirlpool.NewU128(v.String())
	if err != nil {
		// 128 bits read from 16 bytes always fit
		panic(err)
	}
	return u
}

// encodePubkey renders 32 raw bytes in base58.
func encodePubkey(raw []byte) string {
	return base58Encode(raw)
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func base58Encode(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(input)
	radix := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, radix, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, base58Alphabet[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
