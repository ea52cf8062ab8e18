package whirlpool

// OpenPositionInstruction mints a position NFT and creates the position.
type OpenPositionInstruction struct {
	DataTickLowerIndex int32 `json:"dataTickLowerIndex"`
	DataTickUpperIndex int32 `json:"dataTickUpperIndex"`

	KeyFunder                 string `json:"keyFunder"`
	KeyOwner                  string `json:"keyOwner"`
	KeyPosition               string `json:"keyPosition"`
	KeyPositionMint           string `json:"keyPositionMint"`
	KeyPositionTokenAccount   string `json:"keyPositionTokenAccount"`
	KeyWhirlpool              string `json:"keyWhirlpool"`
	KeyTokenProgram           string `json:"keyTokenProgram"`
	KeySystemProgram          string `json:"keySystemProgram"`
	KeyRent                   string `json:"keyRent"`
	KeyAssociatedTokenProgram string `json:"keyAssociatedTokenProgram"`
}

func (OpenPositionInstruction) Name() string { return "openPosition" }

func (ix OpenPositionInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyPositionMint, ix.KeyPositionTokenAccount}
}

// OpenPositionWithMetadataInstruction also creates the Metaplex metadata.
type OpenPositionWithMetadataInstruction struct {
	DataTickLowerIndex int32 `json:"dataTickLowerIndex"`
	DataTickUpperIndex int32 `json:"dataTickUpperIndex"`

	KeyFunder                  string `json:"keyFunder"`
	KeyOwner                   string `json:"keyOwner"`
	KeyPosition                string `json:"keyPosition"`
	KeyPositionMint            string `json:"keyPositionMint"`
	KeyPositionMetadataAccount string `json:"keyPositionMetadataAccount"`
	KeyPositionTokenAccount    string `json:"keyPositionTokenAccount"`
	KeyWhirlpool               string `json:"keyWhirlpool"`
	KeyTokenProgram            string `json:"keyTokenProgram"`
	KeySystemProgram           string `json:"keySystemProgram"`
	KeyRent                    string `json:"keyRent"`
	KeyAssociatedTokenProgram  string `json:"keyAssociatedTokenProgram"`
	KeyMetadataProgram         string `json:"keyMetadataProgram"`
	KeyMetadataUpdateAuth      string `json:"keyMetadataUpdateAuth"`
}

func (OpenPositionWithMetadataInstruction) Name() string { return "openPositionWithMetadata" }

func (ix OpenPositionWithMetadataInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyPosition,
		ix.KeyPositionMint,
		ix.KeyPositionMetadataAccount,
		ix.KeyPositionTokenAccount,
	}
}

// OpenPositionWithTokenExtensionsInstruction mints a Token-2022 position NFT.
type OpenPositionWithTokenExtensionsInstruction struct {
	DataTickLowerIndex             int32 `json:"dataTickLowerIndex"`
	DataTickUpperIndex             int32 `json:"dataTickUpperIndex"`
	DataWithTokenMetadataExtension bool  `json:"dataWithTokenMetadataExtension"`

	KeyFunder                 string `json:"keyFunder"`
	KeyOwner                  string `json:"keyOwner"`
	KeyPosition               string `json:"keyPosition"`
	KeyPositionMint           string `json:"keyPositionMint"`
	KeyPositionTokenAccount   string `json:"keyPositionTokenAccount"`
	KeyWhirlpool              string `json:"keyWhirlpool"`
	KeyToken2022Program       string `json:"keyToken2022Program"`
	KeySystemProgram          string `json:"keySystemProgram"`
	KeyAssociatedTokenProgram string `json:"keyAssociatedTokenProgram"`
	KeyMetadataUpdateAuth     string `json:"keyMetadataUpdateAuth"`
}

func (OpenPositionWithTokenExtensionsInstruction) Name() string {
	return "openPositionWithTokenExtensions"
}

func (ix OpenPositionWithTokenExtensionsInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyPositionMint, ix.KeyPositionTokenAccount}
}

// OpenBundledPositionInstruction opens a position inside a bundle.
type OpenBundledPositionInstruction struct {
	DataBundleIndex    uint16 `json:"dataBundleIndex"`
	DataTickLowerIndex int32  `json:"dataTickLowerIndex"`
	DataTickUpperIndex int32  `json:"dataTickUpperIndex"`

	KeyBundledPosition            string `json:"keyBundledPosition"`
	KeyPositionBundle             string `json:"keyPositionBundle"`
	KeyPositionBundleTokenAccount string `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleAuthority    string `json:"keyPositionBundleAuthority"`
	KeyWhirlpool                  string `json:"keyWhirlpool"`
	KeyFunder                     string `json:"keyFunder"`
	KeySystemProgram              string `json:"keySystemProgram"`
	KeyRent                       string `json:"keyRent"`
}

func (OpenBundledPositionInstruction) Name() string { return "openBundledPosition" }

func (ix OpenBundledPositionInstruction) WritableAccounts() []string {
	return []string{ix.KeyBundledPosition, ix.KeyPositionBundle}
}

// ClosePositionInstruction burns the position NFT and closes the position.
type ClosePositionInstruction struct {
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyReceiver             string `json:"keyReceiver"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionMint         string `json:"keyPositionMint"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenProgram         string `json:"keyTokenProgram"`
}

func (ClosePositionInstruction) Name() string { return "closePosition" }

func (ix ClosePositionInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyPositionMint, ix.KeyPositionTokenAccount}
}

// ClosePositionWithTokenExtensionsInstruction closes a Token-2022 position.
type ClosePositionWithTokenExtensionsInstruction struct {
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyReceiver             string `json:"keyReceiver"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionMint         string `json:"keyPositionMint"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyToken2022Program     string `json:"keyToken2022Program"`
}

func (ClosePositionWithTokenExtensionsInstruction) Name() string {
	return "closePositionWithTokenExtensions"
}

func (ix ClosePositionWithTokenExtensionsInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyPositionMint, ix.KeyPositionTokenAccount}
}

// CloseBundledPositionInstruction closes a position inside a bundle.
type CloseBundledPositionInstruction struct {
	DataBundleIndex uint16 `json:"dataBundleIndex"`

	KeyBundledPosition            string `json:"keyBundledPosition"`
	KeyPositionBundle             string `json:"keyPositionBundle"`
	KeyPositionBundleTokenAccount string `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleAuthority    string `json:"keyPositionBundleAuthority"`
	KeyReceiver                   string `json:"keyReceiver"`
}

func (CloseBundledPositionInstruction) Name() string { return "closeBundledPosition" }

func (ix CloseBundledPositionInstruction) WritableAccounts() []string {
	return []string{ix.KeyBundledPosition, ix.KeyPositionBundle}
}

// InitializePositionBundleInstruction mints a position bundle NFT.
type InitializePositionBundleInstruction struct {
	KeyPositionBundle             string `json:"keyPositionBundle"`
	KeyPositionBundleMint         string `json:"keyPositionBundleMint"`
	KeyPositionBundleTokenAccount string `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleOwner        string `json:"keyPositionBundleOwner"`
	KeyFunder                     string `json:"keyFunder"`
	KeyTokenProgram               string `json:"keyTokenProgram"`
	KeySystemProgram              string `json:"keySystemProgram"`
	KeyRent                       string `json:"keyRent"`
	KeyAssociatedTokenProgram     string `json:"keyAssociatedTokenProgram"`
}

func (InitializePositionBundleInstruction) Name() string { return "initializePositionBundle" }

func (ix InitializePositionBundleInstruction) WritableAccounts() []string {
	return []string{ix.KeyPositionBundle, ix.KeyPositionBundleMint, ix.KeyPositionBundleTokenAccount}
}

// InitializePositionBundleWithMetadataInstruction also creates the metadata.
type InitializePositionBundleWithMetadataInstruction struct {
	KeyPositionBundle             string `json:"keyPositionBundle"`
	KeyPositionBundleMint         string `json:"keyPositionBundleMint"`
	KeyPositionBundleMetadata     string `json:"keyPositionBundleMetadata"`
	KeyPositionBundleTokenAccount string `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleOwner        string `json:"keyPositionBundleOwner"`
	KeyFunder                     string `json:"keyFunder"`
	KeyMetadataUpdateAuth         string `json:"keyMetadataUpdateAuth"`
	KeyTokenProgram               string `json:"keyTokenProgram"`
	KeySystemProgram              string `json:"keySystemProgram"`
	KeyRent                       string `json:"keyRent"`
	KeyAssociatedTokenProgram     string `json:"keyAssociatedTokenProgram"`
	KeyMetadataProgram            string `json:"keyMetadataProgram"`
}

func (InitializePositionBundleWithMetadataInstruction) Name() string {
	return "initializePositionBundleWithMetadata"
}

func (ix InitializePositionBundleWithMetadataInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyPositionBundle,
		ix.KeyPositionBundleMint,
		ix.KeyPositionBundleMetadata,
		ix.KeyPositionBundleTokenAccount,
	}
}

// DeletePositionBundleInstruction burns the bundle NFT.
type DeletePositionBundleInstruction struct {
	KeyPositionBundle             string `json:"keyPositionBundle"`
	KeyPositionBundleMint         string `json:"keyPositionBundleMint"`
	KeyPositionBundleTokenAccount string `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleOwner        string `json:"keyPositionBundleOwner"`
	KeyReceiver                   string `json:"keyReceiver"`
	KeyTokenProgram               string `json:"keyTokenProgram"`
}

func (DeletePositionBundleInstruction) Name() string { return "deletePositionBundle" }

func (ix DeletePositionBundleInstruction) WritableAccounts() []string {
	return []string{ix.KeyPositionBundle, ix.KeyPositionBundleMint, ix.KeyPositionBundleTokenAccount}
}

// LockPositionInstruction permanently locks a position's liquidity.
type LockPositionInstruction struct {
	DataLockType string `json:"dataLockType"`

	KeyFunder               string `json:"keyFunder"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionMint         string `json:"keyPositionMint"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyLockConfig           string `json:"keyLockConfig"`
	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyToken2022Program     string `json:"keyToken2022Program"`
	KeySystemProgram        string `json:"keySystemProgram"`

	AuxKeyPositionOwner string `json:"auxKeyPositionOwner"`
}

func (LockPositionInstruction) Name() string { return "lockPosition" }

func (ix LockPositionInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyPositionTokenAccount, ix.KeyLockConfig}
}

// TransferLockedPositionInstruction moves a locked position to a new owner.
type TransferLockedPositionInstruction struct {
	KeyPositionAuthority       string `json:"keyPositionAuthority"`
	KeyReceiver                string `json:"keyReceiver"`
	KeyPosition                string `json:"keyPosition"`
	KeyPositionMint            string `json:"keyPositionMint"`
	KeyPositionTokenAccount    string `json:"keyPositionTokenAccount"`
	KeyDestinationTokenAccount string `json:"keyDestinationTokenAccount"`
	KeyLockConfig              string `json:"keyLockConfig"`
	KeyToken2022Program        string `json:"keyToken2022Program"`

	AuxKeyDestinationTokenAccountOwner string `json:"auxKeyDestinationTokenAccountOwner"`
}

func (TransferLockedPositionInstruction) Name() string { return "transferLockedPosition" }

func (ix TransferLockedPositionInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyPosition,
		ix.KeyPositionTokenAccount,
		ix.KeyDestinationTokenAccount,
		ix.KeyLockConfig,
	}
}

// ResetPositionRangeInstruction moves an empty position to a new tick range.
type ResetPositionRangeInstruction struct {
	DataNewTickLowerIndex int32 `json:"dataNewTickLowerIndex"`
	DataNewTickUpperIndex int32 `json:"dataNewTickUpperIndex"`

	KeyFunder               string `json:"keyFunder"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeySystemProgram        string `json:"keySystemProgram"`
}

func (ResetPositionRangeInstruction) Name() string { return "resetPositionRange" }

func (ix ResetPositionRangeInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition}
}
