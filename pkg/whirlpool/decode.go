package whirlpool

import (
	"encoding/json"
	"fmt"
)

// decoders maps every wire name to a constructor of its payload struct.
// The set is closed: an unknown name is a data-integrity failure, never a
// fallthrough.
var decoders = map[string]func() DecodedInstruction{
	"programDeploy":                        func() DecodedInstruction { return &ProgramDeployInstruction{} },
	"swap":                                 func() DecodedInstruction { return &SwapInstruction{} },
	"swapV2":                               func() DecodedInstruction { return &SwapV2Instruction{} },
	"twoHopSwap":                           func() DecodedInstruction { return &TwoHopSwapInstruction{} },
	"twoHopSwapV2":                         func() DecodedInstruction { return &TwoHopSwapV2Instruction{} },
	"increaseLiquidity":                    func() DecodedInstruction { return &IncreaseLiquidityInstruction{} },
	"increaseLiquidityV2":                  func() DecodedInstruction { return &IncreaseLiquidityV2Instruction{} },
	"decreaseLiquidity":                    func() DecodedInstruction { return &DecreaseLiquidityInstruction{} },
	"decreaseLiquidityV2":                  func() DecodedInstruction { return &DecreaseLiquidityV2Instruction{} },
	"adminIncreaseLiquidity":               func() DecodedInstruction { return &AdminIncreaseLiquidityInstruction{} },
	"updateFeesAndRewards":                 func() DecodedInstruction { return &UpdateFeesAndRewardsInstruction{} },
	"collectFees":                          func() DecodedInstruction { return &CollectFeesInstruction{} },
	"collectFeesV2":                        func() DecodedInstruction { return &CollectFeesV2Instruction{} },
	"collectReward":                        func() DecodedInstruction { return &CollectRewardInstruction{} },
	"collectRewardV2":                      func() DecodedInstruction { return &CollectRewardV2Instruction{} },
	"collectProtocolFees":                  func() DecodedInstruction { return &CollectProtocolFeesInstruction{} },
	"collectProtocolFeesV2":                func() DecodedInstruction { return &CollectProtocolFeesV2Instruction{} },
	"openPosition":                         func() DecodedInstruction { return &OpenPositionInstruction{} },
	"openPositionWithMetadata":             func() DecodedInstruction { return &OpenPositionWithMetadataInstruction{} },
	"openPositionWithTokenExtensions":      func() DecodedInstruction { return &OpenPositionWithTokenExtensionsInstruction{} },
	"openBundledPosition":                  func() DecodedInstruction { return &OpenBundledPositionInstruction{} },
	"closePosition":                        func() DecodedInstruction { return &ClosePositionInstruction{} },
	"closePositionWithTokenExtensions":     func() DecodedInstruction { return &ClosePositionWithTokenExtensionsInstruction{} },
	"closeBundledPosition":                 func() DecodedInstruction { return &CloseBundledPositionInstruction{} },
	"initializePositionBundle":             func() DecodedInstruction { return &InitializePositionBundleInstruction{} },
	"initializePositionBundleWithMetadata": func() DecodedInstruction { return &InitializePositionBundleWithMetadataInstruction{} },
	"deletePositionBundle":                 func() DecodedInstruction { return &DeletePositionBundleInstruction{} },
	"lockPosition":                         func() DecodedInstruction { return &LockPositionInstruction{} },
	"transferLockedPosition":               func() DecodedInstruction { return &TransferLockedPositionInstruction{} },
	"resetPositionRange":                   func() DecodedInstruction { return &ResetPositionRangeInstruction{} },
	"initializePool":                       func() DecodedInstruction { return &InitializePoolInstruction{} },
	"initializePoolV2":                     func() DecodedInstruction { return &InitializePoolV2Instruction{} },
	"initializePoolWithAdaptiveFee":        func() DecodedInstruction { return &InitializePoolWithAdaptiveFeeInstruction{} },
	"initializeTickArray":                  func() DecodedInstruction { return &InitializeTickArrayInstruction{} },
	"initializeReward":                     func() DecodedInstruction { return &InitializeRewardInstruction{} },
	"initializeRewardV2":                   func() DecodedInstruction { return &InitializeRewardV2Instruction{} },
	"setRewardEmissions":                   func() DecodedInstruction { return &SetRewardEmissionsInstruction{} },
	"setRewardEmissionsV2":                 func() DecodedInstruction { return &SetRewardEmissionsV2Instruction{} },
	"migrateRepurposeRewardAuthoritySpace": func() DecodedInstruction { return &MigrateRepurposeRewardAuthoritySpaceInstruction{} },
	"initializeConfig":                     func() DecodedInstruction { return &InitializeConfigInstruction{} },
	"initializeConfigExtension":            func() DecodedInstruction { return &InitializeConfigExtensionInstruction{} },
	"initializeFeeTier":                    func() DecodedInstruction { return &InitializeFeeTierInstruction{} },
	"initializeAdaptiveFeeTier":            func() DecodedInstruction { return &InitializeAdaptiveFeeTierInstruction{} },
	"initializeTokenBadge":                 func() DecodedInstruction { return &InitializeTokenBadgeInstruction{} },
	"deleteTokenBadge":                     func() DecodedInstruction { return &DeleteTokenBadgeInstruction{} },
	"setTokenBadgeAttribute":               func() DecodedInstruction { return &SetTokenBadgeAttributeInstruction{} },
	"setDefaultFeeRate":                    func() DecodedInstruction { return &SetDefaultFeeRateInstruction{} },
	"setDefaultProtocolFeeRate":            func() DecodedInstruction { return &SetDefaultProtocolFeeRateInstruction{} },
	"setFeeRate":                           func() DecodedInstruction { return &SetFeeRateInstruction{} },
	"setProtocolFeeRate":                   func() DecodedInstruction { return &SetProtocolFeeRateInstruction{} },
	"setFeeAuthority":                      func() DecodedInstruction { return &SetFeeAuthorityInstruction{} },
	"setCollectProtocolFeesAuthority":      func() DecodedInstruction { return &SetCollectProtocolFeesAuthorityInstruction{} },
	"setRewardAuthority":                   func() DecodedInstruction { return &SetRewardAuthorityInstruction{} },
	"setRewardAuthorityBySuperAuthority":   func() DecodedInstruction { return &SetRewardAuthorityBySuperAuthorityInstruction{} },
	"setRewardEmissionsSuperAuthority":     func() DecodedInstruction { return &SetRewardEmissionsSuperAuthorityInstruction{} },
	"setConfigExtensionAuthority":          func() DecodedInstruction { return &SetConfigExtensionAuthorityInstruction{} },
	"setTokenBadgeAuthority":               func() DecodedInstruction { return &SetTokenBadgeAuthorityInstruction{} },
	"setInitializePoolAuthority":           func() DecodedInstruction { return &SetInitializePoolAuthorityInstruction{} },
	"setDelegatedFeeAuthority":             func() DecodedInstruction { return &SetDelegatedFeeAuthorityInstruction{} },
	"setDefaultBaseFeeRate":                func() DecodedInstruction { return &SetDefaultBaseFeeRateInstruction{} },
	"setPresetAdaptiveFeeConstants":        func() DecodedInstruction { return &SetPresetAdaptiveFeeConstantsInstruction{} },
}

// FromJSON decodes one typed instruction row into its variant.
func FromJSON(name string, payload []byte) (DecodedInstruction, error) {
	ctor, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown instruction name: %s", name)
	}
	ix := ctor()
	if err := json.Unmarshal(payload, ix); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", name, err)
	}
	return ix, nil
}

// KnownNames returns the full closed set of wire names.
func KnownNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	return names
}
