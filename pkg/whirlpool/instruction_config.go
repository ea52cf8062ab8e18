package whirlpool

// InitializeConfigInstruction creates the top-level config account.
type InitializeConfigInstruction struct {
	DataDefaultProtocolFeeRate        uint16 `json:"dataDefaultProtocolFeeRate"`
	DataFeeAuthority                  string `json:"dataFeeAuthority"`
	DataCollectProtocolFeesAuthority  string `json:"dataCollectProtocolFeesAuthority"`
	DataRewardEmissionsSuperAuthority string `json:"dataRewardEmissionsSuperAuthority"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyFunder           string `json:"keyFunder"`
	KeySystemProgram    string `json:"keySystemProgram"`
}

func (InitializeConfigInstruction) Name() string { return "initializeConfig" }

func (ix InitializeConfigInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfig}
}

// InitializeConfigExtensionInstruction creates the config extension account.
type InitializeConfigExtensionInstruction struct {
	KeyWhirlpoolsConfig          string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpoolsConfigExtension string `json:"keyWhirlpoolsConfigExtension"`
	KeyFunder                    string `json:"keyFunder"`
	KeyFeeAuthority              string `json:"keyFeeAuthority"`
	KeySystemProgram             string `json:"keySystemProgram"`
}

func (InitializeConfigExtensionInstruction) Name() string { return "initializeConfigExtension" }

func (ix InitializeConfigExtensionInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfigExtension}
}

// InitializeFeeTierInstruction creates a fee tier for one tick spacing.
type InitializeFeeTierInstruction struct {
	DataTickSpacing    uint16 `json:"dataTickSpacing"`
	DataDefaultFeeRate uint16 `json:"dataDefaultFeeRate"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyFeeTier          string `json:"keyFeeTier"`
	KeyFunder           string `json:"keyFunder"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
	KeySystemProgram    string `json:"keySystemProgram"`
}

func (InitializeFeeTierInstruction) Name() string { return "initializeFeeTier" }

func (ix InitializeFeeTierInstruction) WritableAccounts() []string {
	return []string{ix.KeyFeeTier}
}

// InitializeAdaptiveFeeTierInstruction creates an adaptive fee tier.
type InitializeAdaptiveFeeTierInstruction struct {
	DataFeeTierIndex             uint16 `json:"dataFeeTierIndex"`
	DataTickSpacing              uint16 `json:"dataTickSpacing"`
	DataInitializePoolAuthority  string `json:"dataInitializePoolAuthority"`
	DataDelegatedFeeAuthority    string `json:"dataDelegatedFeeAuthority"`
	DataDefaultBaseFeeRate       uint16 `json:"dataDefaultBaseFeeRate"`
	DataFilterPeriod             uint16 `json:"dataFilterPeriod"`
	DataDecayPeriod              uint16 `json:"dataDecayPeriod"`
	DataReductionFactor          uint16 `json:"dataReductionFactor"`
	DataAdaptiveFeeControlFactor uint32 `json:"dataAdaptiveFeeControlFactor"`
	DataMaxVolatilityAccumulator uint32 `json:"dataMaxVolatilityAccumulator"`
	DataTickGroupSize            uint16 `json:"dataTickGroupSize"`
	DataMajorSwapThresholdTicks  uint16 `json:"dataMajorSwapThresholdTicks"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyAdaptiveFeeTier  string `json:"keyAdaptiveFeeTier"`
	KeyFunder           string `json:"keyFunder"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
	KeySystemProgram    string `json:"keySystemProgram"`
}

func (InitializeAdaptiveFeeTierInstruction) Name() string { return "initializeAdaptiveFeeTier" }

func (ix InitializeAdaptiveFeeTierInstruction) WritableAccounts() []string {
	return []string{ix.KeyAdaptiveFeeTier}
}

// InitializeTokenBadgeInstruction whitelists a token-extensions mint.
type InitializeTokenBadgeInstruction struct {
	KeyWhirlpoolsConfig          string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpoolsConfigExtension string `json:"keyWhirlpoolsConfigExtension"`
	KeyTokenBadgeAuthority       string `json:"keyTokenBadgeAuthority"`
	KeyTokenMint                 string `json:"keyTokenMint"`
	KeyTokenBadge                string `json:"keyTokenBadge"`
	KeyFunder                    string `json:"keyFunder"`
	KeySystemProgram             string `json:"keySystemProgram"`
}

func (InitializeTokenBadgeInstruction) Name() string { return "initializeTokenBadge" }

func (ix InitializeTokenBadgeInstruction) WritableAccounts() []string {
	return []string{ix.KeyTokenBadge}
}

// DeleteTokenBadgeInstruction removes a token badge.
type DeleteTokenBadgeInstruction struct {
	KeyWhirlpoolsConfig          string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpoolsConfigExtension string `json:"keyWhirlpoolsConfigExtension"`
	KeyTokenBadgeAuthority       string `json:"keyTokenBadgeAuthority"`
	KeyTokenMint                 string `json:"keyTokenMint"`
	KeyTokenBadge                string `json:"keyTokenBadge"`
	KeyReceiver                  string `json:"keyReceiver"`
}

func (DeleteTokenBadgeInstruction) Name() string { return "deleteTokenBadge" }

func (ix DeleteTokenBadgeInstruction) WritableAccounts() []string {
	return []string{ix.KeyTokenBadge}
}

// SetTokenBadgeAttributeInstruction flips an attribute on a token badge.
type SetTokenBadgeAttributeInstruction struct {
	DataAttributeRequireNonTransferablePosition bool `json:"dataAttributeRequireNonTransferablePosition"`

	KeyWhirlpoolsConfig          string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpoolsConfigExtension string `json:"keyWhirlpoolsConfigExtension"`
	KeyTokenBadgeAuthority       string `json:"keyTokenBadgeAuthority"`
	KeyTokenMint                 string `json:"keyTokenMint"`
	KeyTokenBadge                string `json:"keyTokenBadge"`
}

func (SetTokenBadgeAttributeInstruction) Name() string { return "setTokenBadgeAttribute" }

func (ix SetTokenBadgeAttributeInstruction) WritableAccounts() []string {
	return []string{ix.KeyTokenBadge}
}

// SetDefaultFeeRateInstruction updates a fee tier's default rate.
type SetDefaultFeeRateInstruction struct {
	DataDefaultFeeRate uint16 `json:"dataDefaultFeeRate"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyFeeTier          string `json:"keyFeeTier"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
}

func (SetDefaultFeeRateInstruction) Name() string { return "setDefaultFeeRate" }

func (ix SetDefaultFeeRateInstruction) WritableAccounts() []string {
	return []string{ix.KeyFeeTier}
}

// SetDefaultProtocolFeeRateInstruction updates the config's default rate.
type SetDefaultProtocolFeeRateInstruction struct {
	DataDefaultProtocolFeeRate uint16 `json:"dataDefaultProtocolFeeRate"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
}

func (SetDefaultProtocolFeeRateInstruction) Name() string { return "setDefaultProtocolFeeRate" }

func (ix SetDefaultProtocolFeeRateInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfig}
}

// SetFeeRateInstruction updates one pool's fee rate.
type SetFeeRateInstruction struct {
	DataFeeRate uint16 `json:"dataFeeRate"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool        string `json:"keyWhirlpool"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
}

func (SetFeeRateInstruction) Name() string { return "setFeeRate" }

func (ix SetFeeRateInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool}
}

// SetProtocolFeeRateInstruction updates one pool's protocol fee rate.
type SetProtocolFeeRateInstruction struct {
	DataProtocolFeeRate uint16 `json:"dataProtocolFeeRate"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool        string `json:"keyWhirlpool"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
}

func (SetProtocolFeeRateInstruction) Name() string { return "setProtocolFeeRate" }

func (ix SetProtocolFeeRateInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool}
}

// SetFeeAuthorityInstruction rotates the config's fee authority.
type SetFeeAuthorityInstruction struct {
	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
	KeyNewFeeAuthority  string `json:"keyNewFeeAuthority"`
}

func (SetFeeAuthorityInstruction) Name() string { return "setFeeAuthority" }

func (ix SetFeeAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfig}
}

// SetCollectProtocolFeesAuthorityInstruction rotates the collection authority.
type SetCollectProtocolFeesAuthorityInstruction struct {
	KeyWhirlpoolsConfig                string `json:"keyWhirlpoolsConfig"`
	KeyCollectProtocolFeesAuthority    string `json:"keyCollectProtocolFeesAuthority"`
	KeyNewCollectProtocolFeesAuthority string `json:"keyNewCollectProtocolFeesAuthority"`
}

func (SetCollectProtocolFeesAuthorityInstruction) Name() string {
	return "setCollectProtocolFeesAuthority"
}

func (ix SetCollectProtocolFeesAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfig}
}

// SetRewardAuthorityInstruction rotates one reward slot's authority.
type SetRewardAuthorityInstruction struct {
	DataRewardIndex uint8 `json:"dataRewardIndex"`

	KeyWhirlpool          string `json:"keyWhirlpool"`
	KeyRewardAuthority    string `json:"keyRewardAuthority"`
	KeyNewRewardAuthority string `json:"keyNewRewardAuthority"`
}

func (SetRewardAuthorityInstruction) Name() string { return "setRewardAuthority" }

func (ix SetRewardAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool}
}

// SetRewardAuthorityBySuperAuthorityInstruction rotates via the super authority.
type SetRewardAuthorityBySuperAuthorityInstruction struct {
	DataRewardIndex uint8 `json:"dataRewardIndex"`

	KeyWhirlpoolsConfig              string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool                     string `json:"keyWhirlpool"`
	KeyRewardEmissionsSuperAuthority string `json:"keyRewardEmissionsSuperAuthority"`
	KeyNewRewardAuthority            string `json:"keyNewRewardAuthority"`
}

func (SetRewardAuthorityBySuperAuthorityInstruction) Name() string {
	return "setRewardAuthorityBySuperAuthority"
}

func (ix SetRewardAuthorityBySuperAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool}
}

// SetRewardEmissionsSuperAuthorityInstruction rotates the super authority.
type SetRewardEmissionsSuperAuthorityInstruction struct {
	KeyWhirlpoolsConfig                 string `json:"keyWhirlpoolsConfig"`
	KeyRewardEmissionsSuperAuthority    string `json:"keyRewardEmissionsSuperAuthority"`
	KeyNewRewardEmissionsSuperAuthority string `json:"keyNewRewardEmissionsSuperAuthority"`
}

func (SetRewardEmissionsSuperAuthorityInstruction) Name() string {
	return "setRewardEmissionsSuperAuthority"
}

func (ix SetRewardEmissionsSuperAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfig}
}

// SetConfigExtensionAuthorityInstruction rotates the extension authority.
type SetConfigExtensionAuthorityInstruction struct {
	KeyWhirlpoolsConfig            string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpoolsConfigExtension   string `json:"keyWhirlpoolsConfigExtension"`
	KeyConfigExtensionAuthority    string `json:"keyConfigExtensionAuthority"`
	KeyNewConfigExtensionAuthority string `json:"keyNewConfigExtensionAuthority"`
}

func (SetConfigExtensionAuthorityInstruction) Name() string { return "setConfigExtensionAuthority" }

func (ix SetConfigExtensionAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfigExtension}
}

// SetTokenBadgeAuthorityInstruction rotates the token badge authority.
type SetTokenBadgeAuthorityInstruction struct {
	KeyWhirlpoolsConfig          string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpoolsConfigExtension string `json:"keyWhirlpoolsConfigExtension"`
	KeyConfigExtensionAuthority  string `json:"keyConfigExtensionAuthority"`
	KeyNewTokenBadgeAuthority    string `json:"keyNewTokenBadgeAuthority"`
}

func (SetTokenBadgeAuthorityInstruction) Name() string { return "setTokenBadgeAuthority" }

func (ix SetTokenBadgeAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpoolsConfigExtension}
}

// SetInitializePoolAuthorityInstruction rotates an adaptive fee tier's
// pool-initialization authority.
type SetInitializePoolAuthorityInstruction struct {
	KeyWhirlpoolsConfig           string `json:"keyWhirlpoolsConfig"`
	KeyAdaptiveFeeTier            string `json:"keyAdaptiveFeeTier"`
	KeyFeeAuthority               string `json:"keyFeeAuthority"`
	KeyNewInitializePoolAuthority string `json:"keyNewInitializePoolAuthority"`
}

func (SetInitializePoolAuthorityInstruction) Name() string { return "setInitializePoolAuthority" }

func (ix SetInitializePoolAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyAdaptiveFeeTier}
}

// SetDelegatedFeeAuthorityInstruction rotates an adaptive fee tier's
// delegated fee authority.
type SetDelegatedFeeAuthorityInstruction struct {
	KeyWhirlpoolsConfig         string `json:"keyWhirlpoolsConfig"`
	KeyAdaptiveFeeTier          string `json:"keyAdaptiveFeeTier"`
	KeyFeeAuthority             string `json:"keyFeeAuthority"`
	KeyNewDelegatedFeeAuthority string `json:"keyNewDelegatedFeeAuthority"`
}

func (SetDelegatedFeeAuthorityInstruction) Name() string { return "setDelegatedFeeAuthority" }

func (ix SetDelegatedFeeAuthorityInstruction) WritableAccounts() []string {
	return []string{ix.KeyAdaptiveFeeTier}
}

// SetDefaultBaseFeeRateInstruction updates an adaptive fee tier's base rate.
type SetDefaultBaseFeeRateInstruction struct {
	DataDefaultBaseFeeRate uint16 `json:"dataDefaultBaseFeeRate"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyAdaptiveFeeTier  string `json:"keyAdaptiveFeeTier"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
}

func (SetDefaultBaseFeeRateInstruction) Name() string { return "setDefaultBaseFeeRate" }

func (ix SetDefaultBaseFeeRateInstruction) WritableAccounts() []string {
	return []string{ix.KeyAdaptiveFeeTier}
}

// SetPresetAdaptiveFeeConstantsInstruction replaces an adaptive fee tier's
// constants.
type SetPresetAdaptiveFeeConstantsInstruction struct {
	DataFilterPeriod             uint16 `json:"dataFilterPeriod"`
	DataDecayPeriod              uint16 `json:"dataDecayPeriod"`
	DataReductionFactor          uint16 `json:"dataReductionFactor"`
	DataAdaptiveFeeControlFactor uint32 `json:"dataAdaptiveFeeControlFactor"`
	DataMaxVolatilityAccumulator uint32 `json:"dataMaxVolatilityAccumulator"`
	DataTickGroupSize            uint16 `json:"dataTickGroupSize"`
	DataMajorSwapThresholdTicks  uint16 `json:"dataMajorSwapThresholdTicks"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyAdaptiveFeeTier  string `json:"keyAdaptiveFeeTier"`
	KeyFeeAuthority     string `json:"keyFeeAuthority"`
}

func (SetPresetAdaptiveFeeConstantsInstruction) Name() string {
	return "setPresetAdaptiveFeeConstants"
}

func (ix SetPresetAdaptiveFeeConstantsInstruction) WritableAccounts() []string {
	return []string{ix.KeyAdaptiveFeeTier}
}
