package txreader

import "strings"

// instructionViews is the fan-in list of per-variant typed instruction views.
// Each view projects (txid, order, name, payload).
var instructionViews = []string{
	"vwJsonIxsProgramDeploy",
	"vwJsonIxsAdminIncreaseLiquidity",
	"vwJsonIxsCloseBundledPosition",
	"vwJsonIxsClosePosition",
	"vwJsonIxsClosePositionWithTokenExtensions",
	"vwJsonIxsCollectFees",
	"vwJsonIxsCollectFeesV2",
	"vwJsonIxsCollectProtocolFees",
	"vwJsonIxsCollectProtocolFeesV2",
	"vwJsonIxsCollectReward",
	"vwJsonIxsCollectRewardV2",
	"vwJsonIxsDecreaseLiquidity",
	"vwJsonIxsDecreaseLiquidityV2",
	"vwJsonIxsDeletePositionBundle",
	"vwJsonIxsDeleteTokenBadge",
	"vwJsonIxsIncreaseLiquidity",
	"vwJsonIxsIncreaseLiquidityV2",
	"vwJsonIxsInitializeAdaptiveFeeTier",
	"vwJsonIxsInitializeConfig",
	"vwJsonIxsInitializeConfigExtension",
	"vwJsonIxsInitializeFeeTier",
	"vwJsonIxsInitializePool",
	"vwJsonIxsInitializePoolV2",
	"vwJsonIxsInitializePoolWithAdaptiveFee",
	"vwJsonIxsInitializePositionBundle",
	"vwJsonIxsInitializePositionBundleWithMetadata",
	"vwJsonIxsInitializeReward",
	"vwJsonIxsInitializeRewardV2",
	"vwJsonIxsInitializeTickArray",
	"vwJsonIxsInitializeTokenBadge",
	"vwJsonIxsLockPosition",
	"vwJsonIxsMigrateRepurposeRewardAuthoritySpace",
	"vwJsonIxsOpenBundledPosition",
	"vwJsonIxsOpenPosition",
	"vwJsonIxsOpenPositionWithMetadata",
	"vwJsonIxsOpenPositionWithTokenExtensions",
	"vwJsonIxsResetPositionRange",
	"vwJsonIxsSetCollectProtocolFeesAuthority",
	"vwJsonIxsSetConfigExtensionAuthority",
	"vwJsonIxsSetDefaultBaseFeeRate",
	"vwJsonIxsSetDefaultFeeRate",
	"vwJsonIxsSetDefaultProtocolFeeRate",
	"vwJsonIxsSetDelegatedFeeAuthority",
	"vwJsonIxsSetFeeAuthority",
	"vwJsonIxsSetFeeRate",
	"vwJsonIxsSetInitializePoolAuthority",
	"vwJsonIxsSetPresetAdaptiveFeeConstants",
	"vwJsonIxsSetProtocolFeeRate",
	"vwJsonIxsSetRewardAuthority",
	"vwJsonIxsSetRewardAuthorityBySuperAuthority",
	"vwJsonIxsSetRewardEmissions",
	"vwJsonIxsSetRewardEmissionsV2",
	"vwJsonIxsSetRewardEmissionsSuperAuthority",
	"vwJsonIxsSetTokenBadgeAttribute",
	"vwJsonIxsSetTokenBadgeAuthority",
	"vwJsonIxsSwap",
	"vwJsonIxsSwapV2",
	"vwJsonIxsTwoHopSwap",
	"vwJsonIxsTwoHopSwapV2",
	"vwJsonIxsTransferLockedPosition",
	"vwJsonIxsUpdateFeesAndRewards",
}

// instructionUnionSQL assembles the instruction range scan. A SELECT over a
// single UNION ALL view of all variants produced a far slower plan, so each
// view is scanned with its own txid predicate and the union is merged
// client-side; there is deliberately no ORDER BY.
func instructionUnionSQL() string {
	var sb strings.Builder
	for i, view := range instructionViews {
		if i > 0 {
			sb.WriteString(" UNION ALL ")
		}
		sb.WriteString("SELECT * FROM ")
		sb.WriteString(view)
		sb.WriteString(" WHERE txid BETWEEN ? AND ?")
	}
	return sb.String()
}
