package event

import "github.com/everlastingsong/sedimentology/pkg/whirlpool"

// TradedEventPayload records one swap against one pool. A two-hop swap
// yields two Traded events, one per pool.
type TradedEventPayload struct {
	Origin TradedEventOrigin `json:"o"`

	TradeDirection TradeDirection `json:"td"`
	TradeMode      TradeMode      `json:"tm"`

	TokenAuthority PubkeyString `json:"ta"`
	Whirlpool      PubkeyString `json:"w"`

	OldSqrtPrice whirlpool.U128 `json:"osp"`
	NewSqrtPrice whirlpool.U128 `json:"nsp"`

	OldCurrentTickIndex int32 `json:"octi"`
	NewCurrentTickIndex int32 `json:"ncti"`

	OldDecimalPrice DecimalPrice `json:"odp"`
	NewDecimalPrice DecimalPrice `json:"ndp"`

	FeeRate         uint16 `json:"fr"`
	ProtocolFeeRate uint16 `json:"pfr"`

	TransferIn  TransferInfo `json:"ti"`
	TransferOut TransferInfo `json:"to"`

	// Adaptive-fee pools only
	OldAdaptiveFeeVariables *AdaptiveFeeVariables `json:"oafv,omitempty"`
	NewAdaptiveFeeVariables *AdaptiveFeeVariables `json:"nafv,omitempty"`
}

type TradedEventOrigin string

const (
	TradedOriginSwap            TradedEventOrigin = "s"
	TradedOriginSwapV2          TradedEventOrigin = "sv2"
	TradedOriginTwoHopSwapOne   TradedEventOrigin = "thsone"
	TradedOriginTwoHopSwapTwo   TradedEventOrigin = "thstwo"
	TradedOriginTwoHopSwapV2One TradedEventOrigin = "thsv2one"
	TradedOriginTwoHopSwapV2Two TradedEventOrigin = "thsv2two"
)

// LiquidityDepositedEventPayload records tokens entering a position.
type LiquidityDepositedEventPayload struct {
	Origin LiquidityDepositedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	PositionAuthority PubkeyString `json:"pa"`

	LowerTickIndex int32 `json:"lti"`
	UpperTickIndex int32 `json:"uti"`

	LowerDecimalPrice DecimalPrice `json:"ldp"`
	UpperDecimalPrice DecimalPrice `json:"udp"`

	DeltaLiquidity whirlpool.U128 `json:"dl"`

	TransferA TransferInfo `json:"ta"`
	TransferB TransferInfo `json:"tb"`
}

type LiquidityDepositedEventOrigin string

const (
	LiquidityDepositedOriginIncreaseLiquidity   LiquidityDepositedEventOrigin = "il"
	LiquidityDepositedOriginIncreaseLiquidityV2 LiquidityDepositedEventOrigin = "ilv2"
)

// LiquidityWithdrawnEventPayload records tokens leaving a position.
type LiquidityWithdrawnEventPayload struct {
	Origin LiquidityWithdrawnEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	PositionAuthority PubkeyString `json:"pa"`

	LowerTickIndex int32 `json:"lti"`
	UpperTickIndex int32 `json:"uti"`

	LowerDecimalPrice DecimalPrice `json:"ldp"`
	UpperDecimalPrice DecimalPrice `json:"udp"`

	DeltaLiquidity whirlpool.U128 `json:"dl"`

	TransferA TransferInfo `json:"ta"`
	TransferB TransferInfo `json:"tb"`
}

type LiquidityWithdrawnEventOrigin string

const (
	LiquidityWithdrawnOriginDecreaseLiquidity   LiquidityWithdrawnEventOrigin = "dl"
	LiquidityWithdrawnOriginDecreaseLiquidityV2 LiquidityWithdrawnEventOrigin = "dlv2"
)

// LiquidityPatchedEventPayload records an admin liquidity correction.
type LiquidityPatchedEventPayload struct {
	Origin LiquidityPatchedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`

	DeltaLiquidity whirlpool.U128 `json:"dl"`
}

type LiquidityPatchedEventOrigin string

const (
	LiquidityPatchedOriginAdminIncreaseLiquidity LiquidityPatchedEventOrigin = "ail"
)

// PositionFeesHarvestedEventPayload records a fee collection.
type PositionFeesHarvestedEventPayload struct {
	Origin PositionFeesHarvestedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	PositionAuthority PubkeyString `json:"pa"`

	TransferA TransferInfo `json:"ta"`
	TransferB TransferInfo `json:"tb"`
}

type PositionFeesHarvestedEventOrigin string

const (
	PositionFeesHarvestedOriginCollectFees   PositionFeesHarvestedEventOrigin = "cf"
	PositionFeesHarvestedOriginCollectFeesV2 PositionFeesHarvestedEventOrigin = "cfv2"
)

// PositionRewardHarvestedEventPayload records a reward collection.
type PositionRewardHarvestedEventPayload struct {
	Origin PositionRewardHarvestedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	PositionAuthority PubkeyString `json:"pa"`

	RewardIndex uint8 `json:"ri"`

	Transfer TransferInfo `json:"t"`
}

type PositionRewardHarvestedEventOrigin string

const (
	PositionRewardHarvestedOriginCollectReward   PositionRewardHarvestedEventOrigin = "cr"
	PositionRewardHarvestedOriginCollectRewardV2 PositionRewardHarvestedEventOrigin = "crv2"
)

// PositionHarvestUpdatedEventPayload records a fee/reward growth refresh.
type PositionHarvestUpdatedEventPayload struct {
	Origin PositionHarvestUpdatedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`
}

type PositionHarvestUpdatedEventOrigin string

const (
	PositionHarvestUpdatedOriginUpdateFeesAndRewards PositionHarvestUpdatedEventOrigin = "ufar"
)

// ProtocolFeesCollectedEventPayload records a protocol fee collection.
type ProtocolFeesCollectedEventPayload struct {
	Origin ProtocolFeesCollectedEventOrigin `json:"o"`

	Config    PubkeyString `json:"c"`
	Whirlpool PubkeyString `json:"w"`

	CollectProtocolFeesAuthority PubkeyString `json:"cpfa"`

	TransferA TransferInfo `json:"ta"`
	TransferB TransferInfo `json:"tb"`
}

type ProtocolFeesCollectedEventOrigin string

const (
	ProtocolFeesCollectedOriginCollectProtocolFees   ProtocolFeesCollectedEventOrigin = "cpf"
	ProtocolFeesCollectedOriginCollectProtocolFeesV2 ProtocolFeesCollectedEventOrigin = "cpfv2"
)
