package whirlpool

// SwapInstruction is a single-pool trade.
type SwapInstruction struct {
	DataAmount                 U64  `json:"dataAmount"`
	DataOtherAmountThreshold   U64  `json:"dataOtherAmountThreshold"`
	DataSqrtPriceLimit         U128 `json:"dataSqrtPriceLimit"`
	DataAmountSpecifiedIsInput bool `json:"dataAmountSpecifiedIsInput"`
	DataAToB                   bool `json:"dataAToB"`

	KeyTokenProgram       string `json:"keyTokenProgram"`
	KeyTokenAuthority     string `json:"keyTokenAuthority"`
	KeyWhirlpool          string `json:"keyWhirlpool"`
	KeyTokenOwnerAccountA string `json:"keyTokenOwnerAccountA"`
	KeyTokenVaultA        string `json:"keyTokenVaultA"`
	KeyTokenOwnerAccountB string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultB        string `json:"keyTokenVaultB"`
	KeyTickArray0         string `json:"keyTickArray0"`
	KeyTickArray1         string `json:"keyTickArray1"`
	KeyTickArray2         string `json:"keyTickArray2"`
	KeyOracle             string `json:"keyOracle"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
	TransferAmount1 TransferAmount `json:"transferAmount1"`
}

func (SwapInstruction) Name() string { return "swap" }

func (ix SwapInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyWhirlpool,
		ix.KeyTokenVaultA,
		ix.KeyTokenVaultB,
		ix.KeyTickArray0,
		ix.KeyTickArray1,
		ix.KeyTickArray2,
		ix.KeyOracle,
	}
}

// SwapV2Instruction is a single-pool trade with token-extensions support.
type SwapV2Instruction struct {
	DataAmount                 U64  `json:"dataAmount"`
	DataOtherAmountThreshold   U64  `json:"dataOtherAmountThreshold"`
	DataSqrtPriceLimit         U128 `json:"dataSqrtPriceLimit"`
	DataAmountSpecifiedIsInput bool `json:"dataAmountSpecifiedIsInput"`
	DataAToB                   bool `json:"dataAToB"`

	KeyTokenProgramA      string `json:"keyTokenProgramA"`
	KeyTokenProgramB      string `json:"keyTokenProgramB"`
	KeyMemoProgram        string `json:"keyMemoProgram"`
	KeyTokenAuthority     string `json:"keyTokenAuthority"`
	KeyWhirlpool          string `json:"keyWhirlpool"`
	KeyTokenMintA         string `json:"keyTokenMintA"`
	KeyTokenMintB         string `json:"keyTokenMintB"`
	KeyTokenOwnerAccountA string `json:"keyTokenOwnerAccountA"`
	KeyTokenVaultA        string `json:"keyTokenVaultA"`
	KeyTokenOwnerAccountB string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultB        string `json:"keyTokenVaultB"`
	KeyTickArray0         string `json:"keyTickArray0"`
	KeyTickArray1         string `json:"keyTickArray1"`
	KeyTickArray2         string `json:"keyTickArray2"`
	KeyOracle             string `json:"keyOracle"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
	Transfer1 TransferAmountWithTransferFeeConfig `json:"transfer1"`
}

func (SwapV2Instruction) Name() string { return "swapV2" }

func (ix SwapV2Instruction) WritableAccounts() []string {
	writable := []string{
		ix.KeyWhirlpool,
		ix.KeyTokenVaultA,
		ix.KeyTokenVaultB,
		ix.KeyTickArray0,
		ix.KeyTickArray1,
		ix.KeyTickArray2,
		ix.KeyOracle,
	}
	return append(writable, ix.RemainingAccountsKeys...)
}

// TwoHopSwapInstruction is a trade routed through two pools.
type TwoHopSwapInstruction struct {
	DataAmount                 U64  `json:"dataAmount"`
	DataOtherAmountThreshold   U64  `json:"dataOtherAmountThreshold"`
	DataAmountSpecifiedIsInput bool `json:"dataAmountSpecifiedIsInput"`
	DataAToBOne                bool `json:"dataAToBOne"`
	DataAToBTwo                bool `json:"dataAToBTwo"`
	DataSqrtPriceLimitOne      U128 `json:"dataSqrtPriceLimitOne"`
	DataSqrtPriceLimitTwo      U128 `json:"dataSqrtPriceLimitTwo"`

	KeyTokenProgram          string `json:"keyTokenProgram"`
	KeyTokenAuthority        string `json:"keyTokenAuthority"`
	KeyWhirlpoolOne          string `json:"keyWhirlpoolOne"`
	KeyWhirlpoolTwo          string `json:"keyWhirlpoolTwo"`
	KeyTokenOwnerAccountOneA string `json:"keyTokenOwnerAccountOneA"`
	KeyVaultOneA             string `json:"keyVaultOneA"`
	KeyTokenOwnerAccountOneB string `json:"keyTokenOwnerAccountOneB"`
	KeyVaultOneB             string `json:"keyVaultOneB"`
	KeyTokenOwnerAccountTwoA string `json:"keyTokenOwnerAccountTwoA"`
	KeyVaultTwoA             string `json:"keyVaultTwoA"`
	KeyTokenOwnerAccountTwoB string `json:"keyTokenOwnerAccountTwoB"`
	KeyVaultTwoB             string `json:"keyVaultTwoB"`
	KeyTickArrayOne0         string `json:"keyTickArrayOne0"`
	KeyTickArrayOne1         string `json:"keyTickArrayOne1"`
	KeyTickArrayOne2         string `json:"keyTickArrayOne2"`
	KeyTickArrayTwo0         string `json:"keyTickArrayTwo0"`
	KeyTickArrayTwo1         string `json:"keyTickArrayTwo1"`
	KeyTickArrayTwo2         string `json:"keyTickArrayTwo2"`
	KeyOracleOne             string `json:"keyOracleOne"`
	KeyOracleTwo             string `json:"keyOracleTwo"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
	TransferAmount1 TransferAmount `json:"transferAmount1"`
	TransferAmount2 TransferAmount `json:"transferAmount2"`
	TransferAmount3 TransferAmount `json:"transferAmount3"`
}

func (TwoHopSwapInstruction) Name() string { return "twoHopSwap" }

func (ix TwoHopSwapInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyWhirlpoolOne,
		ix.KeyWhirlpoolTwo,
		ix.KeyVaultOneA,
		ix.KeyVaultOneB,
		ix.KeyVaultTwoA,
		ix.KeyVaultTwoB,
		ix.KeyTickArrayOne0,
		ix.KeyTickArrayOne1,
		ix.KeyTickArrayOne2,
		ix.KeyTickArrayTwo0,
		ix.KeyTickArrayTwo1,
		ix.KeyTickArrayTwo2,
		ix.KeyOracleOne,
		ix.KeyOracleTwo,
	}
}

// TwoHopSwapV2Instruction is a two-pool trade with token-extensions support.
type TwoHopSwapV2Instruction struct {
	DataAmount                 U64  `json:"dataAmount"`
	DataOtherAmountThreshold   U64  `json:"dataOtherAmountThreshold"`
	DataAmountSpecifiedIsInput bool `json:"dataAmountSpecifiedIsInput"`
	DataAToBOne                bool `json:"dataAToBOne"`
	DataAToBTwo                bool `json:"dataAToBTwo"`
	DataSqrtPriceLimitOne      U128 `json:"dataSqrtPriceLimitOne"`
	DataSqrtPriceLimitTwo      U128 `json:"dataSqrtPriceLimitTwo"`

	KeyWhirlpoolOne             string `json:"keyWhirlpoolOne"`
	KeyWhirlpoolTwo             string `json:"keyWhirlpoolTwo"`
	KeyTokenMintInput           string `json:"keyTokenMintInput"`
	KeyTokenMintIntermediate    string `json:"keyTokenMintIntermediate"`
	KeyTokenMintOutput          string `json:"keyTokenMintOutput"`
	KeyTokenProgramInput        string `json:"keyTokenProgramInput"`
	KeyTokenProgramIntermediate string `json:"keyTokenProgramIntermediate"`
	KeyTokenProgramOutput       string `json:"keyTokenProgramOutput"`
	KeyTokenOwnerAccountInput   string `json:"keyTokenOwnerAccountInput"`
	KeyVaultOneInput            string `json:"keyVaultOneInput"`
	KeyVaultOneIntermediate     string `json:"keyVaultOneIntermediate"`
	KeyVaultTwoIntermediate     string `json:"keyVaultTwoIntermediate"`
	KeyVaultTwoOutput           string `json:"keyVaultTwoOutput"`
	KeyTokenOwnerAccountOutput  string `json:"keyTokenOwnerAccountOutput"`
	KeyTokenAuthority           string `json:"keyTokenAuthority"`
	KeyTickArrayOne0            string `json:"keyTickArrayOne0"`
	KeyTickArrayOne1            string `json:"keyTickArrayOne1"`
	KeyTickArrayOne2            string `json:"keyTickArrayOne2"`
	KeyTickArrayTwo0            string `json:"keyTickArrayTwo0"`
	KeyTickArrayTwo1            string `json:"keyTickArrayTwo1"`
	KeyTickArrayTwo2            string `json:"keyTickArrayTwo2"`
	KeyMemoProgram              string `json:"keyMemoProgram"`
	KeyOracleOne                string `json:"keyOracleOne"`
	KeyOracleTwo                string `json:"keyOracleTwo"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
	Transfer1 TransferAmountWithTransferFeeConfig `json:"transfer1"`
	Transfer2 TransferAmountWithTransferFeeConfig `json:"transfer2"`
}

func (TwoHopSwapV2Instruction) Name() string { return "twoHopSwapV2" }

func (ix TwoHopSwapV2Instruction) WritableAccounts() []string {
	writable := []string{
		ix.KeyWhirlpoolOne,
		ix.KeyWhirlpoolTwo,
		ix.KeyVaultOneInput,
		ix.KeyVaultOneIntermediate,
		ix.KeyVaultTwoIntermediate,
		ix.KeyVaultTwoOutput,
		ix.KeyTickArrayOne0,
		ix.KeyTickArrayOne1,
		ix.KeyTickArrayOne2,
		ix.KeyTickArrayTwo0,
		ix.KeyTickArrayTwo1,
		ix.KeyTickArrayTwo2,
		ix.KeyOracleOne,
		ix.KeyOracleTwo,
	}
	return append(writable, ix.RemainingAccountsKeys...)
}
