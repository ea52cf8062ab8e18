package event

import "github.com/everlastingsong/sedimentology/pkg/whirlpool"

// PubkeyString is a base58 account address.
type PubkeyString = string

// Decimals is a token's decimal count.
type Decimals = uint8

// TokenProgram identifies which token program owns a mint.
type TokenProgram string

const (
	TokenProgramToken     TokenProgram = "t"
	TokenProgramToken2022 TokenProgram = "t2"
)

// TransferInfo describes one token movement attached to an event.
type TransferInfo struct {
	Mint     PubkeyString  `json:"m"`
	Amount   whirlpool.U64 `json:"a"`
	Decimals Decimals      `json:"d"`

	// TransferFee extension parameters, present only for mints that carry one.
	TransferFeeBps *uint16        `json:"tfb,omitempty"`
	TransferFeeMax *whirlpool.U64 `json:"tfm,omitempty"`
}

// AdaptiveFeeConstants are the static parameters of an adaptive fee tier.
type AdaptiveFeeConstants struct {
	FilterPeriod             uint16 `json:"fp"`
	DecayPeriod              uint16 `json:"dp"`
	ReductionFactor          uint16 `json:"rf"`
	AdaptiveFeeControlFactor uint32 `json:"afcf"`
	MaxVolatilityAccumulator uint32 `json:"mva"`
	TickGroupSize            uint16 `json:"tgs"`
	MajorSwapThresholdTicks  uint16 `json:"mstt"`
}

// AdaptiveFeeVariables are the oracle's rolling volatility state.
type AdaptiveFeeVariables struct {
	LastReferenceUpdateTimestamp whirlpool.U64 `json:"lrut"`
	LastMajorSwapTimestamp       whirlpool.U64 `json:"lmst"`
	VolatilityReference          uint32        `json:"vr"`
	TickGroupIndexReference      int32         `json:"tgir"`
	VolatilityAccumulator        uint32        `json:"va"`
}

// PositionType distinguishes standalone and bundled positions.
type PositionType string

const (
	PositionTypePosition        PositionType = "p"
	PositionTypeBundledPosition PositionType = "bp"
)

// PositionLockType is the lock flavor of a locked position.
type PositionLockType struct {
	Name string `json:"n"`
}

// LockTypePermanent is the only lock flavor the program currently issues.
var LockTypePermanent = PositionLockType{Name: "p"}

// TradeDirection is the side of a swap.
type TradeDirection string

const (
	TradeDirectionAtoB TradeDirection = "ab"
	TradeDirectionBtoA TradeDirection = "ba"
)

// TradeMode is the amount-specification mode of a swap.
type TradeMode string

const (
	TradeModeExactInput  TradeMode = "ei"
	TradeModeExactOutput TradeMode = "eo"
)
