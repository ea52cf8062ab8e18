package checkpoint

import (
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/schema"
)

// decimalsSQL resolves every mint observed in pool or reward initialization
// rows up to the checkpoint txid. Backfilling must be complete: parsing pool
// accounts for mint addresses is avoided on purpose, SQL over the typed
// instruction rows is simpler and the indexer guarantees the rows exist.
const decimalsSQL = `
	SELECT
		toPubkeyBase58(mints.mint) AS mint,
		resolveDecimals(mints.mint) AS decimals
	FROM (
		      SELECT keyTokenMintA mint FROM ixsInitializePool WHERE txid <= ?
		UNION SELECT keyTokenMintB mint FROM ixsInitializePool WHERE txid <= ?
		UNION SELECT keyTokenMintA mint FROM ixsInitializePoolV2 WHERE txid <= ?
		UNION SELECT keyTokenMintB mint FROM ixsInitializePoolV2 WHERE txid <= ?
		UNION SELECT keyTokenMintA mint FROM ixsInitializePoolWithAdaptiveFee WHERE txid <= ?
		UNION SELECT keyTokenMintB mint FROM ixsInitializePoolWithAdaptiveFee WHERE txid <= ?
		UNION SELECT keyRewardMint mint FROM ixsInitializeReward WHERE txid <= ?
		UNION SELECT keyRewardMint mint FROM ixsInitializeRewardV2 WHERE txid <= ?
	) mints`

// FetchTokenDecimals resolves the decimals map as of the checkpoint slot.
func FetchTokenDecimals(db *sqlx.DB, checkpointSlot uint64) ([]schema.TokenDecimals, error) {
	maxTxid := schema.MaxTxid(checkpointSlot)
	args := []interface{}{maxTxid, maxTxid, maxTxid, maxTxid, maxTxid, maxTxid, maxTxid, maxTxid}

	var decimals []schema.TokenDecimals
	if err := db.Select(&decimals, decimalsSQL, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch token decimals: %w", err)
	}
	sort.Slice(decimals, func(i, j int) bool { return decimals[i].Mint < decimals[j].Mint })
	return decimals, nil
}

// BuildWhirlpoolState reconstructs the full state artifact of one checkpoint
// date: accounts in ascending pubkey order, the decimals map, and the
// program binary.
func BuildWhirlpoolState(db *sqlx.DB, date uint32) (*schema.WhirlpoolState, error) {
	store := accounts.NewMemoryStore()
	defer store.Close()

	state, err := FetchState(db, date, store)
	if err != nil {
		return nil, err
	}

	var stateAccounts []schema.WhirlpoolStateAccount
	err = store.Traverse(func(pubkey string, data []byte) error {
		owned := make([]byte, len(data))
		copy(owned, data)
		stateAccounts = append(stateAccounts, schema.WhirlpoolStateAccount{
			Pubkey: pubkey,
			Data:   owned,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	decimals, err := FetchTokenDecimals(db, state.Slot.Slot)
	if err != nil {
		return nil, err
	}

	return &schema.WhirlpoolState{
		Slot:        state.Slot.Slot,
		BlockHeight: state.Slot.BlockHeight,
		BlockTime:   state.Slot.BlockTime,
		Accounts:    stateAccounts,
		Decimals:    decimals,
		ProgramData: state.ProgramData,
	}, nil
}
