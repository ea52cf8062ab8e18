package event

import "github.com/everlastingsong/sedimentology/pkg/whirlpool"

// PoolInitializedEventPayload records a new pool.
type PoolInitializedEventPayload struct {
	Origin PoolInitializedEventOrigin `json:"o"`

	TickSpacing  uint16         `json:"ts"`
	SqrtPrice    whirlpool.U128 `json:"sp"`
	DecimalPrice DecimalPrice   `json:"dp"`

	Config     PubkeyString `json:"c"`
	TokenMintA PubkeyString `json:"tma"`
	TokenMintB PubkeyString `json:"tmb"`
	Funder     PubkeyString `json:"f"`
	Whirlpool  PubkeyString `json:"w"`
	FeeTier    PubkeyString `json:"ft"`

	TokenProgramA TokenProgram `json:"tpa"`
	TokenProgramB TokenProgram `json:"tpb"`

	TokenDecimalsA Decimals `json:"tda"`
	TokenDecimalsB Decimals `json:"tdb"`

	CurrentTickIndex int32  `json:"cti"`
	FeeRate          uint16 `json:"fr"`
	ProtocolFeeRate  uint16 `json:"pfr"`

	// Adaptive-fee pools only
	FeeTierIndex         *uint16               `json:"fti,omitempty"`
	TradeEnableTimestamp *whirlpool.U64        `json:"tet,omitempty"`
	AdaptiveFeeConstants *AdaptiveFeeConstants `json:"afc,omitempty"`
}

type PoolInitializedEventOrigin string

const (
	PoolInitializedOriginInitializePool                PoolInitializedEventOrigin = "ip"
	PoolInitializedOriginInitializePoolV2              PoolInitializedEventOrigin = "ipv2"
	PoolInitializedOriginInitializePoolWithAdaptiveFee PoolInitializedEventOrigin = "ipwaf"
)

// PoolFeeRateUpdatedEventPayload records a pool fee rate change.
type PoolFeeRateUpdatedEventPayload struct {
	Origin PoolFeeRateUpdatedEventOrigin `json:"o"`

	Config    PubkeyString `json:"c"`
	Whirlpool PubkeyString `json:"w"`

	OldFeeRate uint16 `json:"ofr"`
	NewFeeRate uint16 `json:"nfr"`
}

type PoolFeeRateUpdatedEventOrigin string

const (
	PoolFeeRateUpdatedOriginSetFeeRate PoolFeeRateUpdatedEventOrigin = "sfr"
)

// PoolProtocolFeeRateUpdatedEventPayload records a protocol fee rate change.
type PoolProtocolFeeRateUpdatedEventPayload struct {
	Origin PoolProtocolFeeRateUpdatedEventOrigin `json:"o"`

	Config    PubkeyString `json:"c"`
	Whirlpool PubkeyString `json:"w"`

	OldProtocolFeeRate uint16 `json:"opfr"`
	NewProtocolFeeRate uint16 `json:"npfr"`
}

type PoolProtocolFeeRateUpdatedEventOrigin string

const (
	PoolProtocolFeeRateUpdatedOriginSetProtocolFeeRate PoolProtocolFeeRateUpdatedEventOrigin = "spfr"
)

// PoolMigratedEventPayload records an account-layout migration of a pool.
type PoolMigratedEventPayload struct {
	Origin PoolMigratedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
}

type PoolMigratedEventOrigin string

const (
	PoolMigratedOriginMigrateRepurposeRewardAuthoritySpace PoolMigratedEventOrigin = "mrras"
)

// TickArrayInitializedEventPayload records a new tick array.
type TickArrayInitializedEventPayload struct {
	Origin TickArrayInitializedEventOrigin `json:"o"`

	Whirlpool      PubkeyString `json:"w"`
	TickArray      PubkeyString `json:"ta"`
	StartTickIndex int32        `json:"sti"`
}

type TickArrayInitializedEventOrigin string

const (
	TickArrayInitializedOriginInitializeTickArray TickArrayInitializedEventOrigin = "ita"
)

// RewardInitializedEventPayload records a configured reward slot.
type RewardInitializedEventPayload struct {
	Origin RewardInitializedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`

	RewardIndex uint8        `json:"ri"`
	RewardMint  PubkeyString `json:"rm"`

	RewardTokenProgram TokenProgram `json:"rtp"`

	RewardDecimal Decimals `json:"rd"`
}

type RewardInitializedEventOrigin string

const (
	RewardInitializedOriginInitializeReward   RewardInitializedEventOrigin = "ir"
	RewardInitializedOriginInitializeRewardV2 RewardInitializedEventOrigin = "irv2"
)

// RewardEmissionsUpdatedEventPayload records an emission rate change.
type RewardEmissionsUpdatedEventPayload struct {
	Origin RewardEmissionsUpdatedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`

	RewardIndex           uint8          `json:"ri"`
	EmissionsPerSecondX64 whirlpool.U128 `json:"eps"`
}

type RewardEmissionsUpdatedEventOrigin string

const (
	RewardEmissionsUpdatedOriginSetRewardEmissions   RewardEmissionsUpdatedEventOrigin = "sre"
	RewardEmissionsUpdatedOriginSetRewardEmissionsV2 RewardEmissionsUpdatedEventOrigin = "srev2"
)

// RewardAuthorityUpdatedEventPayload records a reward authority rotation.
type RewardAuthorityUpdatedEventPayload struct {
	Origin RewardAuthorityUpdatedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`

	RewardIndex uint8 `json:"ri"`

	NewRewardAuthority PubkeyString `json:"nra"`
}

type RewardAuthorityUpdatedEventOrigin string

const (
	RewardAuthorityUpdatedOriginSetRewardAuthority                 RewardAuthorityUpdatedEventOrigin = "sra"
	RewardAuthorityUpdatedOriginSetRewardAuthorityBySuperAuthority RewardAuthorityUpdatedEventOrigin = "srabsa"
)
