package event

// Event is the tagged union over every derived event category. Exactly one
// field is non-nil; the JSON rendering is externally tagged, e.g.
// {"Traded":{"o":"s",...}}.
type Event struct {
	Traded                     *TradedEventPayload                     `json:"Traded,omitempty"`
	LiquidityDeposited         *LiquidityDepositedEventPayload         `json:"LiquidityDeposited,omitempty"`
	LiquidityWithdrawn         *LiquidityWithdrawnEventPayload         `json:"LiquidityWithdrawn,omitempty"`
	LiquidityPatched           *LiquidityPatchedEventPayload           `json:"LiquidityPatched,omitempty"`
	PoolInitialized            *PoolInitializedEventPayload            `json:"PoolInitialized,omitempty"`
	PoolFeeRateUpdated         *PoolFeeRateUpdatedEventPayload         `json:"PoolFeeRateUpdated,omitempty"`
	PoolProtocolFeeRateUpdated *PoolProtocolFeeRateUpdatedEventPayload `json:"PoolProtocolFeeRateUpdated,omitempty"`
	PoolMigrated               *PoolMigratedEventPayload               `json:"PoolMigrated,omitempty"`
	PositionOpened             *PositionOpenedEventPayload             `json:"PositionOpened,omitempty"`
	PositionClosed             *PositionClosedEventPayload             `json:"PositionClosed,omitempty"`
	PositionRangeReset         *PositionRangeResetEventPayload         `json:"PositionRangeReset,omitempty"`
	PositionLocked             *PositionLockedEventPayload             `json:"PositionLocked,omitempty"`
	PositionLockedTransferred  *PositionLockedTransferredEventPayload  `json:"PositionLockedTransferred,omitempty"`
	PositionBundleInitialized  *PositionBundleInitializedEventPayload  `json:"PositionBundleInitialized,omitempty"`
	PositionBundleDeleted      *PositionBundleDeletedEventPayload      `json:"PositionBundleDeleted,omitempty"`
	PositionFeesHarvested      *PositionFeesHarvestedEventPayload      `json:"PositionFeesHarvested,omitempty"`
	PositionRewardHarvested    *PositionRewardHarvestedEventPayload    `json:"PositionRewardHarvested,omitempty"`
	PositionHarvestUpdated     *PositionHarvestUpdatedEventPayload     `json:"PositionHarvestUpdated,omitempty"`
	ProtocolFeesCollected      *ProtocolFeesCollectedEventPayload      `json:"ProtocolFeesCollected,omitempty"`
	RewardInitialized          *RewardInitializedEventPayload          `json:"RewardInitialized,omitempty"`
	RewardEmissionsUpdated     *RewardEmissionsUpdatedEventPayload     `json:"RewardEmissionsUpdated,omitempty"`
	RewardAuthorityUpdated     *RewardAuthorityUpdatedEventPayload     `json:"RewardAuthorityUpdated,omitempty"`
	ConfigInitialized          *ConfigInitializedEventPayload          `json:"ConfigInitialized,omitempty"`
	ConfigUpdated              *ConfigUpdatedEventPayload              `json:"ConfigUpdated,omitempty"`
	ConfigExtensionInitialized *ConfigExtensionInitializedEventPayload `json:"ConfigExtensionInitialized,omitempty"`
	ConfigExtensionUpdated     *ConfigExtensionUpdatedEventPayload     `json:"ConfigExtensionUpdated,omitempty"`
	FeeTierInitialized         *FeeTierInitializedEventPayload         `json:"FeeTierInitialized,omitempty"`
	FeeTierUpdated             *FeeTierUpdatedEventPayload             `json:"FeeTierUpdated,omitempty"`
	AdaptiveFeeTierInitialized *AdaptiveFeeTierInitializedEventPayload `json:"AdaptiveFeeTierInitialized,omitempty"`
	AdaptiveFeeTierUpdated     *AdaptiveFeeTierUpdatedEventPayload     `json:"AdaptiveFeeTierUpdated,omitempty"`
	TickArrayInitialized       *TickArrayInitializedEventPayload       `json:"TickArrayInitialized,omitempty"`
	TokenBadgeInitialized      *TokenBadgeInitializedEventPayload      `json:"TokenBadgeInitialized,omitempty"`
	TokenBadgeDeleted          *TokenBadgeDeletedEventPayload          `json:"TokenBadgeDeleted,omitempty"`
	TokenBadgeUpdated          *TokenBadgeUpdatedEventPayload          `json:"TokenBadgeUpdated,omitempty"`
	ProgramDeployed            *ProgramDeployedEventPayload            `json:"ProgramDeployed,omitempty"`
}

// Record is one line of the whirlpool-event jsonl artifact: the event plus
// the slot context it was derived from.
type Record struct {
	Slot        uint64 `json:"s"`
	BlockHeight uint64 `json:"h"`
	BlockTime   int64  `json:"bt"`
	Signature   string `json:"sig"`
	Event       Event  `json:"e"`
}
