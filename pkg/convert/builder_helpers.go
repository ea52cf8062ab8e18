package convert

import (
	"fmt"

	"github.com/everlastingsong/sedimentology/pkg/event"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

func (b *Builder) decimalsOf(mint string) (uint8, error) {
	d, ok := b.decimals[mint]
	if !ok {
		return 0, fmt.Errorf("unknown token decimals for mint %s", mint)
	}
	return d, nil
}

func tokenProgramOf(address string) (event.TokenProgram, error) {
	switch address {
	case TokenProgramAddress:
		return event.TokenProgramToken, nil
	case Token2022ProgramAddress:
		return event.TokenProgramToken2022, nil
	default:
		return "", fmt.Errorf("unknown token program address: %s", address)
	}
}

func (b *Builder) newAccount(pubkey string) ([]byte, error) {
	data, ok, err := b.accounts.Get(pubkey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("account %s missing from post state", pubkey)
	}
	return data, nil
}

func oldAccount(snapshot *replay.WritableAccountSnapshot, pubkey string) ([]byte, error) {
	data, exists, err := snapshot.Get(pubkey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("account %s missing from pre state", pubkey)
	}
	return data, nil
}

func (b *Builder) newWhirlpool(pubkey string) (*WhirlpoolAccount, error) {
	data, err := b.newAccount(pubkey)
	if err != nil {
		return nil, err
	}
	return ParseWhirlpool(data)
}

func oldWhirlpool(snapshot *replay.WritableAccountSnapshot, pubkey string) (*WhirlpoolAccount, error) {
	data, err := oldAccount(snapshot, pubkey)
	if err != nil {
		return nil, err
	}
	return ParseWhirlpool(data)
}

func (b *Builder) newPosition(pubkey string) (*PositionAccount, error) {
	data, err := b.newAccount(pubkey)
	if err != nil {
		return nil, err
	}
	return ParsePosition(data)
}

func oldPosition(snapshot *replay.WritableAccountSnapshot, pubkey string) (*PositionAccount, error) {
	data, err := oldAccount(snapshot, pubkey)
	if err != nil {
		return nil, err
	}
	return ParsePosition(data)
}

// poolDecimals resolves both token decimals of a pool.
func (b *Builder) poolDecimals(pool *WhirlpoolAccount) (uint8, uint8, error) {
	decimalsA, err := b.decimalsOf(pool.TokenMintA)
	if err != nil {
		return 0, 0, err
	}
	decimalsB, err := b.decimalsOf(pool.TokenMintB)
	if err != nil {
		return 0, 0, err
	}
	return decimalsA, decimalsB, nil
}

// transferV1 builds a TransferInfo from a v1 transfer amount.
func (b *Builder) transferV1(amount whirlpool.U64, mint string) (event.TransferInfo, error) {
	decimals, err := b.decimalsOf(mint)
	if err != nil {
		return event.TransferInfo{}, err
	}
	return event.TransferInfo{Mint: mint, Amount: amount, Decimals: decimals}, nil
}

// transferV2 builds a TransferInfo from a v2 transfer with its optional
// TransferFee extension parameters.
func (b *Builder) transferV2(t *whirlpool.TransferAmountWithTransferFeeConfig, mint string) (event.TransferInfo, error) {
	info, err := b.transferV1(t.Amount, mint)
	if err != nil {
		return event.TransferInfo{}, err
	}
	if t.TransferFeeConfigOpt {
		bps := t.TransferFeeConfigBps
		max := t.TransferFeeConfigMax
		info.TransferFeeBps = &bps
		info.TransferFeeMax = &max
	}
	return info, nil
}

// transfer picks the v1 or v2 form, whichever the caller received.
func (b *Builder) transfer(v1 whirlpool.U64, v2 *whirlpool.TransferAmountWithTransferFeeConfig, mint string) (event.TransferInfo, error) {
	if v2 != nil {
		return b.transferV2(v2, mint)
	}
	return b.transferV1(v1, mint)
}

// adaptiveFeeVariables converts parsed oracle state into the event form.
func adaptiveFeeVariables(o *OracleAccount) *event.AdaptiveFeeVariables {
	return &event.AdaptiveFeeVariables{
		LastReferenceUpdateTimestamp: whirlpool.U64(o.AdaptiveFeeVariables.LastReferenceUpdateTimestamp),
		LastMajorSwapTimestamp:       whirlpool.U64(o.AdaptiveFeeVariables.LastMajorSwapTimestamp),
		VolatilityReference:          o.AdaptiveFeeVariables.VolatilityReference,
		TickGroupIndexReference:      o.AdaptiveFeeVariables.TickGroupIndexReference,
		VolatilityAccumulator:        o.AdaptiveFeeVariables.VolatilityAccumulator,
	}
}

// oracleVariables loads the old/new adaptive fee variables of a pool's
// oracle, or (nil, nil) for non-adaptive pools.
func (b *Builder) oracleVariables(pool *WhirlpoolAccount, oracleKey string, snapshot *replay.WritableAccountSnapshot) (*event.AdaptiveFeeVariables, *event.AdaptiveFeeVariables, error) {
	if !pool.IsInitializedWithAdaptiveFeeTier() {
		return nil, nil, nil
	}

	oldData, err := oldAccount(snapshot, oracleKey)
	if err != nil {
		return nil, nil, err
	}
	oldOracle, err := ParseOracle(oldData)
	if err != nil {
		return nil, nil, err
	}

	newData, err := b.newAccount(oracleKey)
	if err != nil {
		return nil, nil, err
	}
	newOracle, err := ParseOracle(newData)
	if err != nil {
		return nil, nil, err
	}

	return adaptiveFeeVariables(oldOracle), adaptiveFeeVariables(newOracle), nil
}
