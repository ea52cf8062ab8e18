package convert

import (
	"github.com/everlastingsong/sedimentology/pkg/event"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

func (b *Builder) programDeployed(ix *whirlpool.ProgramDeployInstruction) ([]event.Event, error) {
	return []event.Event{{ProgramDeployed: &event.ProgramDeployedEventPayload{
		Origin:          event.ProgramDeployedOriginProgramDeploy,
		ProgramDataSize: uint64(len(ix.ProgramData)),
	}}}, nil
}

// traded builds one Traded event for one pool of a (possibly two-hop) swap.
func (b *Builder) traded(
	origin event.TradedEventOrigin,
	aToB, amountSpecifiedIsInput bool,
	tokenAuthority, poolKey, oracleKey string,
	snapshot *replay.WritableAccountSnapshot,
	inV1, outV1 whirlpool.U64,
	inV2, outV2 *whirlpool.TransferAmountWithTransferFeeConfig,
) (event.Event, error) {
	oldPool, err := oldWhirlpool(snapshot, poolKey)
	if err != nil {
		return event.Event{}, err
	}
	newPool, err := b.newWhirlpool(poolKey)
	if err != nil {
		return event.Event{}, err
	}

	decimalsA, decimalsB, err := b.poolDecimals(oldPool)
	if err != nil {
		return event.Event{}, err
	}

	mintIn, mintOut := oldPool.TokenMintA, oldPool.TokenMintB
	if !aToB {
		mintIn, mintOut = mintOut, mintIn
	}

	transferIn, err := b.transfer(inV1, inV2, mintIn)
	if err != nil {
		return event.Event{}, err
	}
	transferOut, err := b.transfer(outV1, outV2, mintOut)
	if err != nil {
		return event.Event{}, err
	}

	oldVars, newVars, err := b.oracleVariables(newPool, oracleKey, snapshot)
	if err != nil {
		return event.Event{}, err
	}

	direction := event.TradeDirectionAtoB
	if !aToB {
		direction = event.TradeDirectionBtoA
	}
	mode := event.TradeModeExactOutput
	if amountSpecifiedIsInput {
		mode = event.TradeModeExactInput
	}

	return event.Event{Traded: &event.TradedEventPayload{
		Origin:              origin,
		TradeDirection:      direction,
		TradeMode:           mode,
		TokenAuthority:      tokenAuthority,
		Whirlpool:           poolKey,
		OldSqrtPrice:        oldPool.SqrtPrice,
		NewSqrtPrice:        newPool.SqrtPrice,
		OldCurrentTickIndex: oldPool.TickCurrentIndex,
		NewCurrentTickIndex: newPool.TickCurrentIndex,
		OldDecimalPrice:     event.PriceFromSqrtPrice(oldPool.SqrtPrice, decimalsA, decimalsB),
		NewDecimalPrice:     event.PriceFromSqrtPrice(newPool.SqrtPrice, decimalsA, decimalsB),
		FeeRate:                 oldPool.FeeRate,
		ProtocolFeeRate:         oldPool.ProtocolFeeRate,
		TransferIn:              transferIn,
		TransferOut:             transferOut,
		OldAdaptiveFeeVariables: oldVars,
		NewAdaptiveFeeVariables: newVars,
	}}, nil
}

func (b *Builder) swap(ix *whirlpool.SwapInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	e, err := b.traded(event.TradedOriginSwap, ix.DataAToB, ix.DataAmountSpecifiedIsInput,
		ix.KeyTokenAuthority, ix.KeyWhirlpool, ix.KeyOracle, snapshot,
		ix.TransferAmount0, ix.TransferAmount1, nil, nil)
	if err != nil {
		return nil, err
	}
	return []event.Event{e}, nil
}

func (b *Builder) swapV2(ix *whirlpool.SwapV2Instruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	e, err := b.traded(event.TradedOriginSwapV2, ix.DataAToB, ix.DataAmountSpecifiedIsInput,
		ix.KeyTokenAuthority, ix.KeyWhirlpool, ix.KeyOracle, snapshot,
		0, 0, &ix.Transfer0, &ix.Transfer1)
	if err != nil {
		return nil, err
	}
	return []event.Event{e}, nil
}

func (b *Builder) twoHopSwap(ix *whirlpool.TwoHopSwapInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	one, err := b.traded(event.TradedOriginTwoHopSwapOne, ix.DataAToBOne, ix.DataAmountSpecifiedIsInput,
		ix.KeyTokenAuthority, ix.KeyWhirlpoolOne, ix.KeyOracleOne, snapshot,
		ix.TransferAmount0, ix.TransferAmount1, nil, nil)
	if err != nil {
		return nil, err
	}
	two, err := b.traded(event.TradedOriginTwoHopSwapTwo, ix.DataAToBTwo, ix.DataAmountSpecifiedIsInput,
		ix.KeyTokenAuthority, ix.KeyWhirlpoolTwo, ix.KeyOracleTwo, snapshot,
		ix.TransferAmount2, ix.TransferAmount3, nil, nil)
	if err != nil {
		return nil, err
	}
	return []event.Event{one, two}, nil
}

func (b *Builder) twoHopSwapV2(ix *whirlpool.TwoHopSwapV2Instruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	// transfer1 is the intermediate hop: output of pool one, input of pool two
	one, err := b.traded(event.TradedOriginTwoHopSwapV2One, ix.DataAToBOne, ix.DataAmountSpecifiedIsInput,
		ix.KeyTokenAuthority, ix.KeyWhirlpoolOne, ix.KeyOracleOne, snapshot,
		0, 0, &ix.Transfer0, &ix.Transfer1)
	if err != nil {
		return nil, err
	}
	two, err := b.traded(event.TradedOriginTwoHopSwapV2Two, ix.DataAToBTwo, ix.DataAmountSpecifiedIsInput,
		ix.KeyTokenAuthority, ix.KeyWhirlpoolTwo, ix.KeyOracleTwo, snapshot,
		0, 0, &ix.Transfer1, &ix.Transfer2)
	if err != nil {
		return nil, err
	}
	return []event.Event{one, two}, nil
}

// positionRange loads a position's tick range and renders its prices against
// the pool's decimals.
func (b *Builder) positionRange(position *PositionAccount, poolKey string) (lower, upper event.DecimalPrice, err error) {
	pool, err := b.newWhirlpool(poolKey)
	if err != nil {
		return "", "", err
	}
	decimalsA, decimalsB, err := b.poolDecimals(pool)
	if err != nil {
		return "", "", err
	}
	lower = event.PriceFromTickIndex(position.TickLowerIndex, decimalsA, decimalsB)
	upper = event.PriceFromTickIndex(position.TickUpperIndex, decimalsA, decimalsB)
	return lower, upper, nil
}

func (b *Builder) liquidityDeposited(
	origin event.LiquidityDepositedEventOrigin,
	poolKey, positionKey, authority string,
	delta whirlpool.U128,
	amountA, amountB whirlpool.U64,
	transferA, transferB *whirlpool.TransferAmountWithTransferFeeConfig,
) ([]event.Event, error) {
	position, err := b.newPosition(positionKey)
	if err != nil {
		return nil, err
	}
	lower, upper, err := b.positionRange(position, poolKey)
	if err != nil {
		return nil, err
	}
	pool, err := b.newWhirlpool(poolKey)
	if err != nil {
		return nil, err
	}
	ta, err := b.transfer(amountA, transferA, pool.TokenMintA)
	if err != nil {
		return nil, err
	}
	tb, err := b.transfer(amountB, transferB, pool.TokenMintB)
	if err != nil {
		return nil, err
	}
	return []event.Event{{LiquidityDeposited: &event.LiquidityDepositedEventPayload{
		Origin:            origin,
		Whirlpool:         poolKey,
		Position:          positionKey,
		PositionAuthority: authority,
		LowerTickIndex:    position.TickLowerIndex,
		UpperTickIndex:    position.TickUpperIndex,
		LowerDecimalPrice: lower,
		UpperDecimalPrice: upper,
		DeltaLiquidity:    delta,
		TransferA:         ta,
		TransferB:         tb,
	}}}, nil
}

func (b *Builder) liquidityWithdrawn(
	origin event.LiquidityWithdrawnEventOrigin,
	poolKey, positionKey, authority string,
	delta whirlpool.U128,
	amountA, amountB whirlpool.U64,
	transferA, transferB *whirlpool.TransferAmountWithTransferFeeConfig,
) ([]event.Event, error) {
	position, err := b.newPosition(positionKey)
	if err != nil {
		return nil, err
	}
	lower, upper, err := b.positionRange(position, poolKey)
	if err != nil {
		return nil, err
	}
	pool, err := b.newWhirlpool(poolKey)
	if err != nil {
		return nil, err
	}
	ta, err := b.transfer(amountA, transferA, pool.TokenMintA)
	if err != nil {
		return nil, err
	}
	tb, err := b.transfer(amountB, transferB, pool.TokenMintB)
	if err != nil {
		return nil, err
	}
	return []event.Event{{LiquidityWithdrawn: &event.LiquidityWithdrawnEventPayload{
		Origin:            origin,
		Whirlpool:         poolKey,
		Position:          positionKey,
		PositionAuthority: authority,
		LowerTickIndex:    position.TickLowerIndex,
		UpperTickIndex:    position.TickUpperIndex,
		LowerDecimalPrice: lower,
		UpperDecimalPrice: upper,
		DeltaLiquidity:    delta,
		TransferA:         ta,
		TransferB:         tb,
	}}}, nil
}

func (b *Builder) positionFeesHarvested(
	origin event.PositionFeesHarvestedEventOrigin,
	poolKey, positionKey, authority string,
	amountA, amountB whirlpool.U64,
	transferA, transferB *whirlpool.TransferAmountWithTransferFeeConfig,
) ([]event.Event, error) {
	pool, err := b.newWhirlpool(poolKey)
	if err != nil {
		return nil, err
	}
	ta, err := b.transfer(amountA, transferA, pool.TokenMintA)
	if err != nil {
		return nil, err
	}
	tb, err := b.transfer(amountB, transferB, pool.TokenMintB)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PositionFeesHarvested: &event.PositionFeesHarvestedEventPayload{
		Origin:            origin,
		Whirlpool:         poolKey,
		Position:          positionKey,
		PositionAuthority: authority,
		TransferA:         ta,
		TransferB:         tb,
	}}}, nil
}

func (b *Builder) positionRewardHarvested(
	origin event.PositionRewardHarvestedEventOrigin,
	poolKey, positionKey, authority string,
	rewardIndex uint8,
	rewardMint string,
	amount whirlpool.U64,
	transfer *whirlpool.TransferAmountWithTransferFeeConfig,
) ([]event.Event, error) {
	if rewardMint == "" {
		// v1 carries no reward mint key: read it from the pool's reward slot
		pool, err := b.newWhirlpool(poolKey)
		if err != nil {
			return nil, err
		}
		rewardMint = pool.RewardMints[rewardIndex]
	}
	t, err := b.transfer(amount, transfer, rewardMint)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PositionRewardHarvested: &event.PositionRewardHarvestedEventPayload{
		Origin:            origin,
		Whirlpool:         poolKey,
		Position:          positionKey,
		PositionAuthority: authority,
		RewardIndex:       rewardIndex,
		Transfer:          t,
	}}}, nil
}

func (b *Builder) protocolFeesCollected(
	origin event.ProtocolFeesCollectedEventOrigin,
	configKey, poolKey, authority string,
	snapshot *replay.WritableAccountSnapshot,
	amountA, amountB whirlpool.U64,
	transferA, transferB *whirlpool.TransferAmountWithTransferFeeConfig,
) ([]event.Event, error) {
	pool, err := oldWhirlpool(snapshot, poolKey)
	if err != nil {
		return nil, err
	}
	ta, err := b.transfer(amountA, transferA, pool.TokenMintA)
	if err != nil {
		return nil, err
	}
	tb, err := b.transfer(amountB, transferB, pool.TokenMintB)
	if err != nil {
		return nil, err
	}
	return []event.Event{{ProtocolFeesCollected: &event.ProtocolFeesCollectedEventPayload{
		Origin:                       origin,
		Config:                       configKey,
		Whirlpool:                    poolKey,
		CollectProtocolFeesAuthority: authority,
		TransferA:                    ta,
		TransferB:                    tb,
	}}}, nil
}

func (b *Builder) positionOpened(
	origin event.PositionOpenedEventOrigin,
	poolKey, positionKey, authority string,
	positionMint, positionBundle, positionBundleMint *string,
	positionBundleIndex *uint16,
) ([]event.Event, error) {
	position, err := b.newPosition(positionKey)
	if err != nil {
		return nil, err
	}
	lower, upper, err := b.positionRange(position, poolKey)
	if err != nil {
		return nil, err
	}

	positionType := event.PositionTypePosition
	if positionBundle != nil {
		positionType = event.PositionTypeBundledPosition
		mint := position.PositionMint
		positionBundleMint = &mint
	}

	return []event.Event{{PositionOpened: &event.PositionOpenedEventPayload{
		Origin:              origin,
		Whirlpool:           poolKey,
		Position:            positionKey,
		LowerTickIndex:      position.TickLowerIndex,
		UpperTickIndex:      position.TickUpperIndex,
		LowerDecimalPrice:   lower,
		UpperDecimalPrice:   upper,
		PositionAuthority:   authority,
		PositionType:        positionType,
		PositionMint:        positionMint,
		PositionBundle:      positionBundle,
		PositionBundleMint:  positionBundleMint,
		PositionBundleIndex: positionBundleIndex,
	}}}, nil
}

func (b *Builder) positionClosed(
	origin event.PositionClosedEventOrigin,
	positionKey, authority string,
	snapshot *replay.WritableAccountSnapshot,
	positionMint, positionBundle *string,
	positionBundleIndex *uint16,
) ([]event.Event, error) {
	// the position is gone from the post state; its pre-image has the range
	position, err := oldPosition(snapshot, positionKey)
	if err != nil {
		return nil, err
	}
	lower, upper, err := b.positionRange(position, position.Whirlpool)
	if err != nil {
		return nil, err
	}

	positionType := event.PositionTypePosition
	var positionBundleMint *string
	if positionBundle != nil {
		positionType = event.PositionTypeBundledPosition
		mint := position.PositionMint
		positionBundleMint = &mint
	}

	return []event.Event{{PositionClosed: &event.PositionClosedEventPayload{
		Origin:              origin,
		Whirlpool:           position.Whirlpool,
		Position:            positionKey,
		LowerTickIndex:      position.TickLowerIndex,
		UpperTickIndex:      position.TickUpperIndex,
		LowerDecimalPrice:   lower,
		UpperDecimalPrice:   upper,
		PositionAuthority:   authority,
		PositionType:        positionType,
		PositionMint:        positionMint,
		PositionBundle:      positionBundle,
		PositionBundleMint:  positionBundleMint,
		PositionBundleIndex: positionBundleIndex,
	}}}, nil
}

func (b *Builder) positionLocked(ix *whirlpool.LockPositionInstruction) ([]event.Event, error) {
	position, err := b.newPosition(ix.KeyPosition)
	if err != nil {
		return nil, err
	}
	lower, upper, err := b.positionRange(position, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PositionLocked: &event.PositionLockedEventPayload{
		Origin:            event.PositionLockedOriginLockPosition,
		Whirlpool:         ix.KeyWhirlpool,
		Position:          ix.KeyPosition,
		LockType:          event.LockTypePermanent,
		LockConfig:        ix.KeyLockConfig,
		LowerTickIndex:    position.TickLowerIndex,
		UpperTickIndex:    position.TickUpperIndex,
		LowerDecimalPrice: lower,
		UpperDecimalPrice: upper,
		LockedLiquidity:   position.Liquidity,
		PositionOwner:     ix.AuxKeyPositionOwner,
		PositionMint:      ix.KeyPositionMint,
	}}}, nil
}

func (b *Builder) positionLockedTransferred(ix *whirlpool.TransferLockedPositionInstruction) ([]event.Event, error) {
	position, err := b.newPosition(ix.KeyPosition)
	if err != nil {
		return nil, err
	}
	lower, upper, err := b.positionRange(position, position.Whirlpool)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PositionLockedTransferred: &event.PositionLockedTransferredEventPayload{
		Origin:            event.PositionLockedTransferredOriginTransferLockedPosition,
		Whirlpool:         position.Whirlpool,
		Position:          ix.KeyPosition,
		LockType:          event.LockTypePermanent,
		LockConfig:        ix.KeyLockConfig,
		LowerTickIndex:    position.TickLowerIndex,
		UpperTickIndex:    position.TickUpperIndex,
		LowerDecimalPrice: lower,
		UpperDecimalPrice: upper,
		LockedLiquidity:   position.Liquidity,
		OldPositionOwner:  ix.KeyPositionAuthority,
		NewPositionOwner:  ix.AuxKeyDestinationTokenAccountOwner,
		PositionMint:      ix.KeyPositionMint,
	}}}, nil
}

func (b *Builder) positionRangeReset(ix *whirlpool.ResetPositionRangeInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	before, err := oldPosition(snapshot, ix.KeyPosition)
	if err != nil {
		return nil, err
	}
	after, err := b.newPosition(ix.KeyPosition)
	if err != nil {
		return nil, err
	}
	oldLower, oldUpper, err := b.positionRange(before, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	newLower, newUpper, err := b.positionRange(after, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PositionRangeReset: &event.PositionRangeResetEventPayload{
		Origin:               event.PositionRangeResetOriginResetPositionRange,
		Whirlpool:            ix.KeyWhirlpool,
		Position:             ix.KeyPosition,
		OldLowerTickIndex:    before.TickLowerIndex,
		OldUpperTickIndex:    before.TickUpperIndex,
		OldLowerDecimalPrice: oldLower,
		OldUpperDecimalPrice: oldUpper,
		NewLowerTickIndex:    after.TickLowerIndex,
		NewUpperTickIndex:    after.TickUpperIndex,
		NewLowerDecimalPrice: newLower,
		NewUpperDecimalPrice: newUpper,
		PositionAuthority:    ix.KeyPositionAuthority,
	}}}, nil
}

func (b *Builder) poolInitialized(
	origin event.PoolInitializedEventOrigin,
	poolKey, configKey, mintA, mintB, funder, feeTierKey string,
	tickSpacing uint16,
	initialSqrtPrice whirlpool.U128,
	decimalsA, decimalsB uint8,
	tokenProgramA, tokenProgramB string,
	adaptiveFeeTierKey *string,
	tradeEnableTimestamp *whirlpool.U64,
) ([]event.Event, error) {
	pool, err := b.newWhirlpool(poolKey)
	if err != nil {
		return nil, err
	}
	tpa, err := tokenProgramOf(tokenProgramA)
	if err != nil {
		return nil, err
	}
	tpb, err := tokenProgramOf(tokenProgramB)
	if err != nil {
		return nil, err
	}

	payload := &event.PoolInitializedEventPayload{
		Origin:           origin,
		TickSpacing:      pool.TickSpacing,
		SqrtPrice:        initialSqrtPrice,
		DecimalPrice:     event.PriceFromSqrtPrice(initialSqrtPrice, decimalsA, decimalsB),
		Config:           configKey,
		TokenMintA:       mintA,
		TokenMintB:       mintB,
		Funder:           funder,
		Whirlpool:        poolKey,
		FeeTier:          feeTierKey,
		TokenProgramA:    tpa,
		TokenProgramB:    tpb,
		TokenDecimalsA:   decimalsA,
		TokenDecimalsB:   decimalsB,
		CurrentTickIndex: pool.TickCurrentIndex,
		FeeRate:          pool.FeeRate,
		ProtocolFeeRate:  pool.ProtocolFeeRate,
	}
	if tickSpacing != 0 {
		payload.TickSpacing = tickSpacing
	}

	if adaptiveFeeTierKey != nil {
		tierData, err := b.newAccount(*adaptiveFeeTierKey)
		if err != nil {
			return nil, err
		}
		tier, err := ParseAdaptiveFeeTier(tierData)
		if err != nil {
			return nil, err
		}
		feeTierIndex := tier.FeeTierIndex
		payload.FeeTierIndex = &feeTierIndex
		payload.TradeEnableTimestamp = tradeEnableTimestamp
		payload.AdaptiveFeeConstants = &event.AdaptiveFeeConstants{
			FilterPeriod:             tier.FilterPeriod,
			DecayPeriod:              tier.DecayPeriod,
			ReductionFactor:          tier.ReductionFactor,
			AdaptiveFeeControlFactor: tier.AdaptiveFeeControlFactor,
			MaxVolatilityAccumulator: tier.MaxVolatilityAccumulator,
			TickGroupSize:            tier.TickGroupSize,
			MajorSwapThresholdTicks:  tier.MajorSwapThresholdTicks,
		}
	}

	return []event.Event{{PoolInitialized: payload}}, nil
}

func (b *Builder) rewardInitialized(
	origin event.RewardInitializedEventOrigin,
	poolKey string, rewardIndex uint8, rewardMint, tokenProgram string,
) ([]event.Event, error) {
	program, err := tokenProgramOf(tokenProgram)
	if err != nil {
		return nil, err
	}
	decimals, err := b.decimalsOf(rewardMint)
	if err != nil {
		return nil, err
	}
	return []event.Event{{RewardInitialized: &event.RewardInitializedEventPayload{
		Origin:             origin,
		Whirlpool:          poolKey,
		RewardIndex:        rewardIndex,
		RewardMint:         rewardMint,
		RewardTokenProgram: program,
		RewardDecimal:      decimals,
	}}}, nil
}

func (b *Builder) poolFeeRateUpdated(ix *whirlpool.SetFeeRateInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	before, err := oldWhirlpool(snapshot, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PoolFeeRateUpdated: &event.PoolFeeRateUpdatedEventPayload{
		Origin:     event.PoolFeeRateUpdatedOriginSetFeeRate,
		Config:     ix.KeyWhirlpoolsConfig,
		Whirlpool:  ix.KeyWhirlpool,
		OldFeeRate: before.FeeRate,
		NewFeeRate: ix.DataFeeRate,
	}}}, nil
}

func (b *Builder) poolProtocolFeeRateUpdated(ix *whirlpool.SetProtocolFeeRateInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	before, err := oldWhirlpool(snapshot, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	return []event.Event{{PoolProtocolFeeRateUpdated: &event.PoolProtocolFeeRateUpdatedEventPayload{
		Origin:             event.PoolProtocolFeeRateUpdatedOriginSetProtocolFeeRate,
		Config:             ix.KeyWhirlpoolsConfig,
		Whirlpool:          ix.KeyWhirlpool,
		OldProtocolFeeRate: before.ProtocolFeeRate,
		NewProtocolFeeRate: ix.DataProtocolFeeRate,
	}}}, nil
}

func (b *Builder) configDefaultProtocolFeeRateUpdated(ix *whirlpool.SetDefaultProtocolFeeRateInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	data, err := oldAccount(snapshot, ix.KeyWhirlpoolsConfig)
	if err != nil {
		return nil, err
	}
	before, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	oldRate := before.DefaultProtocolFeeRate
	newRate := ix.DataDefaultProtocolFeeRate
	return []event.Event{{ConfigUpdated: &event.ConfigUpdatedEventPayload{
		Origin:                    event.ConfigUpdatedOriginSetDefaultProtocolFeeRate,
		Config:                    ix.KeyWhirlpoolsConfig,
		OldDefaultProtocolFeeRate: &oldRate,
		NewDefaultProtocolFeeRate: &newRate,
	}}}, nil
}

func (b *Builder) feeTierUpdated(ix *whirlpool.SetDefaultFeeRateInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	data, err := oldAccount(snapshot, ix.KeyFeeTier)
	if err != nil {
		return nil, err
	}
	before, err := ParseFeeTier(data)
	if err != nil {
		return nil, err
	}
	return []event.Event{{FeeTierUpdated: &event.FeeTierUpdatedEventPayload{
		Origin:            event.FeeTierUpdatedOriginSetDefaultFeeRate,
		Config:            ix.KeyWhirlpoolsConfig,
		FeeTier:           ix.KeyFeeTier,
		OldDefaultFeeRate: before.DefaultFeeRate,
		NewDefaultFeeRate: ix.DataDefaultFeeRate,
	}}}, nil
}

func (b *Builder) adaptiveFeeTierUpdated(
	origin event.AdaptiveFeeTierUpdatedEventOrigin,
	configKey, tierKey string,
	snapshot *replay.WritableAccountSnapshot,
) ([]event.Event, error) {
	oldData, err := oldAccount(snapshot, tierKey)
	if err != nil {
		return nil, err
	}
	before, err := ParseAdaptiveFeeTier(oldData)
	if err != nil {
		return nil, err
	}
	newData, err := b.newAccount(tierKey)
	if err != nil {
		return nil, err
	}
	after, err := ParseAdaptiveFeeTier(newData)
	if err != nil {
		return nil, err
	}

	constants := func(t *AdaptiveFeeTierAccount) event.AdaptiveFeeConstants {
		return event.AdaptiveFeeConstants{
			FilterPeriod:             t.FilterPeriod,
			DecayPeriod:              t.DecayPeriod,
			ReductionFactor:          t.ReductionFactor,
			AdaptiveFeeControlFactor: t.AdaptiveFeeControlFactor,
			MaxVolatilityAccumulator: t.MaxVolatilityAccumulator,
			TickGroupSize:            t.TickGroupSize,
			MajorSwapThresholdTicks:  t.MajorSwapThresholdTicks,
		}
	}

	return []event.Event{{AdaptiveFeeTierUpdated: &event.AdaptiveFeeTierUpdatedEventPayload{
		Origin:                     origin,
		Config:                     configKey,
		AdaptiveFeeTier:            tierKey,
		FeeTierIndex:               after.FeeTierIndex,
		TickSpacing:                after.TickSpacing,
		OldInitializePoolAuthority: before.InitializePoolAuthority,
		NewInitializePoolAuthority: after.InitializePoolAuthority,
		OldDelegatedFeeAuthority:   before.DelegatedFeeAuthority,
		NewDelegatedFeeAuthority:   after.DelegatedFeeAuthority,
		OldDefaultBaseFeeRate:      before.DefaultBaseFeeRate,
		NewDefaultBaseFeeRate:      after.DefaultBaseFeeRate,
		OldAdaptiveFeeConstants:    constants(before),
		NewAdaptiveFeeConstants:    constants(after),
	}}}, nil
}

func (b *Builder) tokenBadgeUpdated(ix *whirlpool.SetTokenBadgeAttributeInstruction, snapshot *replay.WritableAccountSnapshot) ([]event.Event, error) {
	data, err := oldAccount(snapshot, ix.KeyTokenBadge)
	if err != nil {
		return nil, err
	}
	before, err := ParseTokenBadge(data)
	if err != nil {
		return nil, err
	}
	return []event.Event{{TokenBadgeUpdated: &event.TokenBadgeUpdatedEventPayload{
		Origin:     event.TokenBadgeUpdatedOriginSetTokenBadgeAttribute,
		Config:     ix.KeyWhirlpoolsConfig,
		TokenMint:  ix.KeyTokenMint,
		TokenBadge: ix.KeyTokenBadge,
		OldAttributeRequireNonTransferablePosition: before.RequireNonTransferablePosition,
		NewAttributeRequireNonTransferablePosition: ix.DataAttributeRequireNonTransferablePosition,
	}}}, nil
}
