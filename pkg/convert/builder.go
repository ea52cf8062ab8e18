package convert

import (
	"fmt"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/event"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// Builder derives events from one replayed instruction, reading pre-images
// from the writable snapshot and post-images from the account store. It is a
// pure function of its inputs; the two views are never written.
type Builder struct {
	decimals map[string]uint8
	accounts accounts.Store
}

// NewBuilder creates a builder over the post-state store and the token
// decimals map of the day being derived.
func NewBuilder(decimals map[string]uint8, store accounts.Store) *Builder {
	return &Builder{decimals: decimals, accounts: store}
}

// Build derives the events of one instruction. The dispatch is exhaustive
// over the closed instruction set; an unhandled variant is a bug, not a
// skippable case.
func (b *Builder) Build(ix whirlpool.DecodedInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	switch v := ix.(type) {
	case *whirlpool.ProgramDeployInstruction:
		return b.programDeployed(v)
	case *whirlpool.SwapInstruction:
		return b.swap(v, snapshot)
	case *whirlpool.SwapV2Instruction:
		return b.swapV2(v, snapshot)
	case *whirlpool.TwoHopSwapInstruction:
		return b.twoHopSwap(v, snapshot)
	case *whirlpool.TwoHopSwapV2Instruction:
		return b.twoHopSwapV2(v, snapshot)
	case *whirlpool.IncreaseLiquidityInstruction:
		return b.liquidityDeposited(event.LiquidityDepositedOriginIncreaseLiquidity,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority, v.DataLiquidityAmount,
			v.TransferAmount0, v.TransferAmount1, nil, nil)
	case *whirlpool.IncreaseLiquidityV2Instruction:
		return b.liquidityDeposited(event.LiquidityDepositedOriginIncreaseLiquidityV2,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority, v.DataLiquidityAmount,
			0, 0, &v.Transfer0, &v.Transfer1)
	case *whirlpool.DecreaseLiquidityInstruction:
		return b.liquidityWithdrawn(event.LiquidityWithdrawnOriginDecreaseLiquidity,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority, v.DataLiquidityAmount,
			v.TransferAmount0, v.TransferAmount1, nil, nil)
	case *whirlpool.DecreaseLiquidityV2Instruction:
		return b.liquidityWithdrawn(event.LiquidityWithdrawnOriginDecreaseLiquidityV2,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority, v.DataLiquidityAmount,
			0, 0, &v.Transfer0, &v.Transfer1)
	case *whirlpool.AdminIncreaseLiquidityInstruction:
		return []event.Event{{LiquidityPatched: &event.LiquidityPatchedEventPayload{
			Origin:         event.LiquidityPatchedOriginAdminIncreaseLiquidity,
			Whirlpool:      v.KeyWhirlpool,
			DeltaLiquidity: v.DataLiquidity,
		}}}, nil
	case *whirlpool.UpdateFeesAndRewardsInstruction:
		return []event.Event{{PositionHarvestUpdated: &event.PositionHarvestUpdatedEventPayload{
			Origin:    event.PositionHarvestUpdatedOriginUpdateFeesAndRewards,
			Whirlpool: v.KeyWhirlpool,
			Position:  v.KeyPosition,
		}}}, nil
	case *whirlpool.CollectFeesInstruction:
		return b.positionFeesHarvested(event.PositionFeesHarvestedOriginCollectFees,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority,
			v.TransferAmount0, v.TransferAmount1, nil, nil)
	case *whirlpool.CollectFeesV2Instruction:
		return b.positionFeesHarvested(event.PositionFeesHarvestedOriginCollectFeesV2,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority,
			0, 0, &v.Transfer0, &v.Transfer1)
	case *whirlpool.CollectRewardInstruction:
		return b.positionRewardHarvested(event.PositionRewardHarvestedOriginCollectReward,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority, v.DataRewardIndex,
			"", v.TransferAmount0, nil)
	case *whirlpool.CollectRewardV2Instruction:
		return b.positionRewardHarvested(event.PositionRewardHarvestedOriginCollectRewardV2,
			v.KeyWhirlpool, v.KeyPosition, v.KeyPositionAuthority, v.DataRewardIndex,
			v.KeyRewardMint, 0, &v.Transfer0)
	case *whirlpool.CollectProtocolFeesInstruction:
		return b.protocolFeesCollected(event.ProtocolFeesCollectedOriginCollectProtocolFees,
			v.KeyWhirlpoolsConfig, v.KeyWhirlpool, v.KeyCollectProtocolFeesAuthority,
			snapshot, v.TransferAmount0, v.TransferAmount1, nil, nil)
	case *whirlpool.CollectProtocolFeesV2Instruction:
		return b.protocolFeesCollected(event.ProtocolFeesCollectedOriginCollectProtocolFeesV2,
			v.KeyWhirlpoolsConfig, v.KeyWhirlpool, v.KeyCollectProtocolFeesAuthority,
			snapshot, 0, 0, &v.Transfer0, &v.Transfer1)
	case *whirlpool.OpenPositionInstruction:
		return b.positionOpened(event.PositionOpenedOriginOpenPosition,
			v.KeyWhirlpool, v.KeyPosition, v.KeyOwner, &v.KeyPositionMint, nil, nil, nil)
	case *whirlpool.OpenPositionWithMetadataInstruction:
		return b.positionOpened(event.PositionOpenedOriginOpenPositionWithMetadata,
			v.KeyWhirlpool, v.KeyPosition, v.KeyOwner, &v.KeyPositionMint, nil, nil, nil)
	case *whirlpool.OpenPositionWithTokenExtensionsInstruction:
		return b.positionOpened(event.PositionOpenedOriginOpenPositionWithTokenExtensions,
			v.KeyWhirlpool, v.KeyPosition, v.KeyOwner, &v.KeyPositionMint, nil, nil, nil)
	case *whirlpool.OpenBundledPositionInstruction:
		bundleIndex := v.DataBundleIndex
		return b.positionOpened(event.PositionOpenedOriginOpenBundledPosition,
			v.KeyWhirlpool, v.KeyBundledPosition, v.KeyPositionBundleAuthority,
			nil, &v.KeyPositionBundle, nil, &bundleIndex)
	case *whirlpool.ClosePositionInstruction:
		return b.positionClosed(event.PositionClosedOriginClosePosition,
			v.KeyPosition, v.KeyPositionAuthority, snapshot, &v.KeyPositionMint, nil, nil)
	case *whirlpool.ClosePositionWithTokenExtensionsInstruction:
		return b.positionClosed(event.PositionClosedOriginClosePositionWithTokenExtensions,
			v.KeyPosition, v.KeyPositionAuthority, snapshot, &v.KeyPositionMint, nil, nil)
	case *whirlpool.CloseBundledPositionInstruction:
		bundleIndex := v.DataBundleIndex
		return b.positionClosed(event.PositionClosedOriginCloseBundledPosition,
			v.KeyBundledPosition, v.KeyPositionBundleAuthority, snapshot,
			nil, &v.KeyPositionBundle, &bundleIndex)
	case *whirlpool.InitializePositionBundleInstruction:
		return []event.Event{{PositionBundleInitialized: &event.PositionBundleInitializedEventPayload{
			Origin:              event.PositionBundleInitializedOriginInitializePositionBundle,
			PositionBundle:      v.KeyPositionBundle,
			PositionBundleMint:  v.KeyPositionBundleMint,
			PositionBundleOwner: v.KeyPositionBundleOwner,
		}}}, nil
	case *whirlpool.InitializePositionBundleWithMetadataInstruction:
		return []event.Event{{PositionBundleInitialized: &event.PositionBundleInitializedEventPayload{
			Origin:              event.PositionBundleInitializedOriginInitializePositionBundleWithMetadata,
			PositionBundle:      v.KeyPositionBundle,
			PositionBundleMint:  v.KeyPositionBundleMint,
			PositionBundleOwner: v.KeyPositionBundleOwner,
		}}}, nil
	case *whirlpool.DeletePositionBundleInstruction:
		return []event.Event{{PositionBundleDeleted: &event.PositionBundleDeletedEventPayload{
			Origin:              event.PositionBundleDeletedOriginDeletePositionBundle,
			PositionBundle:      v.KeyPositionBundle,
			PositionBundleMint:  v.KeyPositionBundleMint,
			PositionBundleOwner: v.KeyPositionBundleOwner,
		}}}, nil
	case *whirlpool.LockPositionInstruction:
		return b.positionLocked(v)
	case *whirlpool.TransferLockedPositionInstruction:
		return b.positionLockedTransferred(v)
	case *whirlpool.ResetPositionRangeInstruction:
		return b.positionRangeReset(v, snapshot)
	case *whirlpool.InitializePoolInstruction:
		return b.poolInitialized(event.PoolInitializedOriginInitializePool,
			v.KeyWhirlpool, v.KeyWhirlpoolsConfig, v.KeyTokenMintA, v.KeyTokenMintB,
			v.KeyFunder, v.KeyFeeTier, v.DataTickSpacing, v.DataInitialSqrtPrice,
			v.DecimalsTokenMintA, v.DecimalsTokenMintB,
			TokenProgramAddress, TokenProgramAddress, nil, nil)
	case *whirlpool.InitializePoolV2Instruction:
		return b.poolInitialized(event.PoolInitializedOriginInitializePoolV2,
			v.KeyWhirlpool, v.KeyWhirlpoolsConfig, v.KeyTokenMintA, v.KeyTokenMintB,
			v.KeyFunder, v.KeyFeeTier, v.DataTickSpacing, v.DataInitialSqrtPrice,
			v.DecimalsTokenMintA, v.DecimalsTokenMintB,
			v.KeyTokenProgramA, v.KeyTokenProgramB, nil, nil)
	case *whirlpool.InitializePoolWithAdaptiveFeeInstruction:
		tradeEnable := v.DataTradeEnableTimestamp
		return b.poolInitialized(event.PoolInitializedOriginInitializePoolWithAdaptiveFee,
			v.KeyWhirlpool, v.KeyWhirlpoolsConfig, v.KeyTokenMintA, v.KeyTokenMintB,
			v.KeyFunder, v.KeyAdaptiveFeeTier, 0, v.DataInitialSqrtPrice,
			v.DecimalsTokenMintA, v.DecimalsTokenMintB,
			v.KeyTokenProgramA, v.KeyTokenProgramB, &v.KeyAdaptiveFeeTier, &tradeEnable)
	case *whirlpool.InitializeTickArrayInstruction:
		return []event.Event{{TickArrayInitialized: &event.TickArrayInitializedEventPayload{
			Origin:         event.TickArrayInitializedOriginInitializeTickArray,
			Whirlpool:      v.KeyWhirlpool,
			TickArray:      v.KeyTickArray,
			StartTickIndex: v.DataStartTickIndex,
		}}}, nil
	case *whirlpool.InitializeRewardInstruction:
		return b.rewardInitialized(event.RewardInitializedOriginInitializeReward,
			v.KeyWhirlpool, v.DataRewardIndex, v.KeyRewardMint, TokenProgramAddress)
	case *whirlpool.InitializeRewardV2Instruction:
		return b.rewardInitialized(event.RewardInitializedOriginInitializeRewardV2,
			v.KeyWhirlpool, v.DataRewardIndex, v.KeyRewardMint, v.KeyRewardTokenProgram)
	case *whirlpool.SetRewardEmissionsInstruction:
		return []event.Event{{RewardEmissionsUpdated: &event.RewardEmissionsUpdatedEventPayload{
			Origin:                event.RewardEmissionsUpdatedOriginSetRewardEmissions,
			Whirlpool:             v.KeyWhirlpool,
			RewardIndex:           v.DataRewardIndex,
			EmissionsPerSecondX64: v.DataEmissionsPerSecondX64,
		}}}, nil
	case *whirlpool.SetRewardEmissionsV2Instruction:
		return []event.Event{{RewardEmissionsUpdated: &event.RewardEmissionsUpdatedEventPayload{
			Origin:                event.RewardEmissionsUpdatedOriginSetRewardEmissionsV2,
			Whirlpool:             v.KeyWhirlpool,
			RewardIndex:           v.DataRewardIndex,
			EmissionsPerSecondX64: v.DataEmissionsPerSecondX64,
		}}}, nil
	case *whirlpool.SetRewardAuthorityInstruction:
		return []event.Event{{RewardAuthorityUpdated: &event.RewardAuthorityUpdatedEventPayload{
			Origin:             event.RewardAuthorityUpdatedOriginSetRewardAuthority,
			Whirlpool:          v.KeyWhirlpool,
			RewardIndex:        v.DataRewardIndex,
			NewRewardAuthority: v.KeyNewRewardAuthority,
		}}}, nil
	case *whirlpool.SetRewardAuthorityBySuperAuthorityInstruction:
		return []event.Event{{RewardAuthorityUpdated: &event.RewardAuthorityUpdatedEventPayload{
			Origin:             event.RewardAuthorityUpdatedOriginSetRewardAuthorityBySuperAuthority,
			Whirlpool:          v.KeyWhirlpool,
			RewardIndex:        v.DataRewardIndex,
			NewRewardAuthority: v.KeyNewRewardAuthority,
		}}}, nil
	case *whirlpool.MigrateRepurposeRewardAuthoritySpaceInstruction:
		return []event.Event{{PoolMigrated: &event.PoolMigratedEventPayload{
			Origin:    event.PoolMigratedOriginMigrateRepurposeRewardAuthoritySpace,
			Whirlpool: v.KeyWhirlpool,
		}}}, nil
	case *whirlpool.SetFeeRateInstruction:
		return b.poolFeeRateUpdated(v, snapshot)
	case *whirlpool.SetProtocolFeeRateInstruction:
		return b.poolProtocolFeeRateUpdated(v, snapshot)
	case *whirlpool.InitializeConfigInstruction:
		return []event.Event{{ConfigInitialized: &event.ConfigInitializedEventPayload{
			Origin:                        event.ConfigInitializedOriginInitializeConfig,
			Config:                        v.KeyWhirlpoolsConfig,
			DefaultProtocolFeeRate:        v.DataDefaultProtocolFeeRate,
			FeeAuthority:                  v.DataFeeAuthority,
			CollectProtocolFeesAuthority:  v.DataCollectProtocolFeesAuthority,
			RewardEmissionsSuperAuthority: v.DataRewardEmissionsSuperAuthority,
		}}}, nil
	case *whirlpool.SetDefaultProtocolFeeRateInstruction:
		return b.configDefaultProtocolFeeRateUpdated(v, snapshot)
	case *whirlpool.SetFeeAuthorityInstruction:
		newAuthority := v.KeyNewFeeAuthority
		return []event.Event{{ConfigUpdated: &event.ConfigUpdatedEventPayload{
			Origin:          event.ConfigUpdatedOriginSetFeeAuthority,
			Config:          v.KeyWhirlpoolsConfig,
			NewFeeAuthority: &newAuthority,
		}}}, nil
	case *whirlpool.SetCollectProtocolFeesAuthorityInstruction:
		newAuthority := v.KeyNewCollectProtocolFeesAuthority
		return []event.Event{{ConfigUpdated: &event.ConfigUpdatedEventPayload{
			Origin:                          event.ConfigUpdatedOriginSetCollectProtocolFeesAuthority,
			Config:                          v.KeyWhirlpoolsConfig,
			NewCollectProtocolFeesAuthority: &newAuthority,
		}}}, nil
	case *whirlpool.SetRewardEmissionsSuperAuthorityInstruction:
		newAuthority := v.KeyNewRewardEmissionsSuperAuthority
		return []event.Event{{ConfigUpdated: &event.ConfigUpdatedEventPayload{
			Origin:                           event.ConfigUpdatedOriginSetRewardEmissionsSuperAuthority,
			Config:                           v.KeyWhirlpoolsConfig,
			NewRewardEmissionsSuperAuthority: &newAuthority,
		}}}, nil
	case *whirlpool.InitializeConfigExtensionInstruction:
		return []event.Event{{ConfigExtensionInitialized: &event.ConfigExtensionInitializedEventPayload{
			Origin:          event.ConfigExtensionInitializedOriginInitializeConfigExtension,
			Config:          v.KeyWhirlpoolsConfig,
			ConfigExtension: v.KeyWhirlpoolsConfigExtension,
		}}}, nil
	case *whirlpool.SetConfigExtensionAuthorityInstruction:
		newAuthority := v.KeyNewConfigExtensionAuthority
		return []event.Event{{ConfigExtensionUpdated: &event.ConfigExtensionUpdatedEventPayload{
			Origin:                      event.ConfigExtensionUpdatedOriginSetConfigExtensionAuthority,
			Config:                      v.KeyWhirlpoolsConfig,
			ConfigExtension:             v.KeyWhirlpoolsConfigExtension,
			NewConfigExtensionAuthority: &newAuthority,
		}}}, nil
	case *whirlpool.SetTokenBadgeAuthorityInstruction:
		newAuthority := v.KeyNewTokenBadgeAuthority
		return []event.Event{{ConfigExtensionUpdated: &event.ConfigExtensionUpdatedEventPayload{
			Origin:                 event.ConfigExtensionUpdatedOriginSetTokenBadgeAuthority,
			Config:                 v.KeyWhirlpoolsConfig,
			ConfigExtension:        v.KeyWhirlpoolsConfigExtension,
			NewTokenBadgeAuthority: &newAuthority,
		}}}, nil
	case *whirlpool.InitializeFeeTierInstruction:
		return []event.Event{{FeeTierInitialized: &event.FeeTierInitializedEventPayload{
			Origin:         event.FeeTierInitializedOriginInitializeFeeTier,
			Config:         v.KeyWhirlpoolsConfig,
			FeeTier:        v.KeyFeeTier,
			TickSpacing:    v.DataTickSpacing,
			DefaultFeeRate: v.DataDefaultFeeRate,
		}}}, nil
	case *whirlpool.SetDefaultFeeRateInstruction:
		return b.feeTierUpdated(v, snapshot)
	case *whirlpool.InitializeAdaptiveFeeTierInstruction:
		return []event.Event{{AdaptiveFeeTierInitialized: &event.AdaptiveFeeTierInitializedEventPayload{
			Origin:                  event.AdaptiveFeeTierInitializedOriginInitializeAdaptiveFeeTier,
			Config:                  v.KeyWhirlpoolsConfig,
			AdaptiveFeeTier:         v.KeyAdaptiveFeeTier,
			FeeTierIndex:            v.DataFeeTierIndex,
			TickSpacing:             v.DataTickSpacing,
			InitializePoolAuthority: v.DataInitializePoolAuthority,
			DelegatedFeeAuthority:   v.DataDelegatedFeeAuthority,
			DefaultBaseFeeRate:      v.DataDefaultBaseFeeRate,
			AdaptiveFeeConstants: event.AdaptiveFeeConstants{
				FilterPeriod:             v.DataFilterPeriod,
				DecayPeriod:              v.DataDecayPeriod,
				ReductionFactor:          v.DataReductionFactor,
				AdaptiveFeeControlFactor: v.DataAdaptiveFeeControlFactor,
				MaxVolatilityAccumulator: v.DataMaxVolatilityAccumulator,
				TickGroupSize:            v.DataTickGroupSize,
				MajorSwapThresholdTicks:  v.DataMajorSwapThresholdTicks,
			},
		}}}, nil
	case *whirlpool.SetInitializePoolAuthorityInstruction:
		return b.adaptiveFeeTierUpdated(event.AdaptiveFeeTierUpdatedOriginSetInitializePoolAuthority,
			v.KeyWhirlpoolsConfig, v.KeyAdaptiveFeeTier, snapshot)
	case *whirlpool.SetDelegatedFeeAuthorityInstruction:
		return b.adaptiveFeeTierUpdated(event.AdaptiveFeeTierUpdatedOriginSetDelegatedFeeAuthority,
			v.KeyWhirlpoolsConfig, v.KeyAdaptiveFeeTier, snapshot)
	case *whirlpool.SetDefaultBaseFeeRateInstruction:
		return b.adaptiveFeeTierUpdated(event.AdaptiveFeeTierUpdatedOriginSetDefaultBaseFeeRate,
			v.KeyWhirlpoolsConfig, v.KeyAdaptiveFeeTier, snapshot)
	case *whirlpool.SetPresetAdaptiveFeeConstantsInstruction:
		return b.adaptiveFeeTierUpdated(event.AdaptiveFeeTierUpdatedOriginSetPresetAdaptiveFeeConstants,
			v.KeyWhirlpoolsConfig, v.KeyAdaptiveFeeTier, snapshot)
	case *whirlpool.InitializeTokenBadgeInstruction:
		return []event.Event{{TokenBadgeInitialized: &event.TokenBadgeInitializedEventPayload{
			Origin:     event.TokenBadgeInitializedOriginInitializeTokenBadge,
			Config:     v.KeyWhirlpoolsConfig,
			TokenMint:  v.KeyTokenMint,
			TokenBadge: v.KeyTokenBadge,
		}}}, nil
	case *whirlpool.DeleteTokenBadgeInstruction:
		return []event.Event{{TokenBadgeDeleted: &event.TokenBadgeDeletedEventPayload{
			Origin:     event.TokenBadgeDeletedOriginDeleteTokenBadge,
			Config:     v.KeyWhirlpoolsConfig,
			TokenMint:  v.KeyTokenMint,
			TokenBadge: v.KeyTokenBadge,
		}}}, nil
	case *whirlpool.SetTokenBadgeAttributeInstruction:
		return b.tokenBadgeUpdated(v, snapshot)
	default:
		return nil, fmt.Errorf("unhandled instruction variant: %s", ix.Name())
	}
}
