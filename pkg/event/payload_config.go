package event

// ConfigInitializedEventPayload records the top-level config creation.
type ConfigInitializedEventPayload struct {
	Origin ConfigInitializedEventOrigin `json:"o"`

	Config PubkeyString `json:"c"`

	DefaultProtocolFeeRate        uint16       `json:"dpfr"`
	FeeAuthority                  PubkeyString `json:"fa"`
	CollectProtocolFeesAuthority  PubkeyString `json:"cpfa"`
	RewardEmissionsSuperAuthority PubkeyString `json:"resa"`
}

type ConfigInitializedEventOrigin string

const (
	ConfigInitializedOriginInitializeConfig ConfigInitializedEventOrigin = "ic"
)

// ConfigUpdatedEventPayload records any mutation of the top-level config.
type ConfigUpdatedEventPayload struct {
	Origin ConfigUpdatedEventOrigin `json:"o"`

	Config PubkeyString `json:"c"`

	OldDefaultProtocolFeeRate *uint16 `json:"odpfr,omitempty"`
	NewDefaultProtocolFeeRate *uint16 `json:"ndpfr,omitempty"`

	NewFeeAuthority                  *PubkeyString `json:"nfa,omitempty"`
	NewCollectProtocolFeesAuthority  *PubkeyString `json:"ncpfa,omitempty"`
	NewRewardEmissionsSuperAuthority *PubkeyString `json:"nresa,omitempty"`
}

type ConfigUpdatedEventOrigin string

const (
	ConfigUpdatedOriginSetDefaultProtocolFeeRate        ConfigUpdatedEventOrigin = "sdpfr"
	ConfigUpdatedOriginSetFeeAuthority                  ConfigUpdatedEventOrigin = "sfa"
	ConfigUpdatedOriginSetCollectProtocolFeesAuthority  ConfigUpdatedEventOrigin = "scpfa"
	ConfigUpdatedOriginSetRewardEmissionsSuperAuthority ConfigUpdatedEventOrigin = "sresa"
)

// ConfigExtensionInitializedEventPayload records the extension creation.
type ConfigExtensionInitializedEventPayload struct {
	Origin ConfigExtensionInitializedEventOrigin `json:"o"`

	Config          PubkeyString `json:"c"`
	ConfigExtension PubkeyString `json:"ce"`
}

type ConfigExtensionInitializedEventOrigin string

const (
	ConfigExtensionInitializedOriginInitializeConfigExtension ConfigExtensionInitializedEventOrigin = "ice"
)

// ConfigExtensionUpdatedEventPayload records extension authority rotations.
type ConfigExtensionUpdatedEventPayload struct {
	Origin ConfigExtensionUpdatedEventOrigin `json:"o"`

	Config          PubkeyString `json:"c"`
	ConfigExtension PubkeyString `json:"ce"`

	NewConfigExtensionAuthority *PubkeyString `json:"ncea,omitempty"`
	NewTokenBadgeAuthority      *PubkeyString `json:"ntba,omitempty"`
}

type ConfigExtensionUpdatedEventOrigin string

const (
	ConfigExtensionUpdatedOriginSetConfigExtensionAuthority ConfigExtensionUpdatedEventOrigin = "scea"
	ConfigExtensionUpdatedOriginSetTokenBadgeAuthority      ConfigExtensionUpdatedEventOrigin = "stba"
)

// FeeTierInitializedEventPayload records a new fee tier.
type FeeTierInitializedEventPayload struct {
	Origin FeeTierInitializedEventOrigin `json:"o"`

	Config  PubkeyString `json:"c"`
	FeeTier PubkeyString `json:"ft"`

	TickSpacing    uint16 `json:"ts"`
	DefaultFeeRate uint16 `json:"dfr"`
}

type FeeTierInitializedEventOrigin string

const (
	FeeTierInitializedOriginInitializeFeeTier FeeTierInitializedEventOrigin = "ift"
)

// FeeTierUpdatedEventPayload records a fee tier default rate change.
type FeeTierUpdatedEventPayload struct {
	Origin FeeTierUpdatedEventOrigin `json:"o"`

	Config  PubkeyString `json:"c"`
	FeeTier PubkeyString `json:"ft"`

	OldDefaultFeeRate uint16 `json:"odfr"`
	NewDefaultFeeRate uint16 `json:"ndfr"`
}

type FeeTierUpdatedEventOrigin string

const (
	FeeTierUpdatedOriginSetDefaultFeeRate FeeTierUpdatedEventOrigin = "sdfr"
)

// AdaptiveFeeTierInitializedEventPayload records a new adaptive fee tier.
type AdaptiveFeeTierInitializedEventPayload struct {
	Origin AdaptiveFeeTierInitializedEventOrigin `json:"o"`

	Config          PubkeyString `json:"c"`
	AdaptiveFeeTier PubkeyString `json:"aft"`

	FeeTierIndex uint16 `json:"fti"`
	TickSpacing  uint16 `json:"ts"`

	InitializePoolAuthority PubkeyString `json:"ipa"`
	DelegatedFeeAuthority   PubkeyString `json:"dfa"`

	DefaultBaseFeeRate uint16 `json:"dbfr"`

	AdaptiveFeeConstants AdaptiveFeeConstants `json:"afc"`
}

type AdaptiveFeeTierInitializedEventOrigin string

const (
	AdaptiveFeeTierInitializedOriginInitializeAdaptiveFeeTier AdaptiveFeeTierInitializedEventOrigin = "iaft"
)

// AdaptiveFeeTierUpdatedEventPayload records adaptive fee tier mutations.
type AdaptiveFeeTierUpdatedEventPayload struct {
	Origin AdaptiveFeeTierUpdatedEventOrigin `json:"o"`

	Config          PubkeyString `json:"c"`
	AdaptiveFeeTier PubkeyString `json:"aft"`

	FeeTierIndex uint16 `json:"fti"`
	TickSpacing  uint16 `json:"ts"`

	OldInitializePoolAuthority PubkeyString `json:"oipa"`
	NewInitializePoolAuthority PubkeyString `json:"nipa"`

	OldDelegatedFeeAuthority PubkeyString `json:"odfa"`
	NewDelegatedFeeAuthority PubkeyString `json:"ndfa"`

	OldDefaultBaseFeeRate uint16 `json:"odbfr"`
	NewDefaultBaseFeeRate uint16 `json:"ndbfr"`

	OldAdaptiveFeeConstants AdaptiveFeeConstants `json:"oafc"`
	NewAdaptiveFeeConstants AdaptiveFeeConstants `json:"nafc"`
}

type AdaptiveFeeTierUpdatedEventOrigin string

const (
	AdaptiveFeeTierUpdatedOriginSetInitializePoolAuthority    AdaptiveFeeTierUpdatedEventOrigin = "sipa"
	AdaptiveFeeTierUpdatedOriginSetDelegatedFeeAuthority      AdaptiveFeeTierUpdatedEventOrigin = "sdfa"
	AdaptiveFeeTierUpdatedOriginSetDefaultBaseFeeRate         AdaptiveFeeTierUpdatedEventOrigin = "sdbfr"
	AdaptiveFeeTierUpdatedOriginSetPresetAdaptiveFeeConstants AdaptiveFeeTierUpdatedEventOrigin = "spafc"
)

// TokenBadgeInitializedEventPayload records a new token badge.
type TokenBadgeInitializedEventPayload struct {
	Origin TokenBadgeInitializedEventOrigin `json:"o"`

	Config     PubkeyString `json:"c"`
	TokenMint  PubkeyString `json:"tm"`
	TokenBadge PubkeyString `json:"tb"`
}

type TokenBadgeInitializedEventOrigin string

const (
	TokenBadgeInitializedOriginInitializeTokenBadge TokenBadgeInitializedEventOrigin = "itb"
)

// TokenBadgeDeletedEventPayload records a removed token badge.
type TokenBadgeDeletedEventPayload struct {
	Origin TokenBadgeDeletedEventOrigin `json:"o"`

	Config     PubkeyString `json:"c"`
	TokenMint  PubkeyString `json:"tm"`
	TokenBadge PubkeyString `json:"tb"`
}

type TokenBadgeDeletedEventOrigin string

const (
	TokenBadgeDeletedOriginDeleteTokenBadge TokenBadgeDeletedEventOrigin = "dtb"
)

// TokenBadgeUpdatedEventPayload records a token badge attribute flip.
type TokenBadgeUpdatedEventPayload struct {
	Origin TokenBadgeUpdatedEventOrigin `json:"o"`

	Config     PubkeyString `json:"c"`
	TokenMint  PubkeyString `json:"tm"`
	TokenBadge PubkeyString `json:"tb"`

	OldAttributeRequireNonTransferablePosition bool `json:"oarntp"`
	NewAttributeRequireNonTransferablePosition bool `json:"narntp"`
}

type TokenBadgeUpdatedEventOrigin string

const (
	TokenBadgeUpdatedOriginSetTokenBadgeAttribute TokenBadgeUpdatedEventOrigin = "stba"
)

// ProgramDeployedEventPayload records a program upgrade.
type ProgramDeployedEventPayload struct {
	Origin ProgramDeployedEventOrigin `json:"o"`

	ProgramDataSize uint64 `json:"pds"`
}

type ProgramDeployedEventOrigin string

const (
	ProgramDeployedOriginProgramDeploy ProgramDeployedEventOrigin = "pd"
)
