package whirlpool

// IncreaseLiquidityInstruction deposits tokens into a position.
type IncreaseLiquidityInstruction struct {
	DataLiquidityAmount U128 `json:"dataLiquidityAmount"`
	DataTokenMaxA       U64  `json:"dataTokenMaxA"`
	DataTokenMaxB       U64  `json:"dataTokenMaxB"`

	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyTokenProgram         string `json:"keyTokenProgram"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenOwnerAccountA   string `json:"keyTokenOwnerAccountA"`
	KeyTokenOwnerAccountB   string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultA          string `json:"keyTokenVaultA"`
	KeyTokenVaultB          string `json:"keyTokenVaultB"`
	KeyTickArrayLower       string `json:"keyTickArrayLower"`
	KeyTickArrayUpper       string `json:"keyTickArrayUpper"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
	TransferAmount1 TransferAmount `json:"transferAmount1"`
}

func (IncreaseLiquidityInstruction) Name() string { return "increaseLiquidity" }

func (ix IncreaseLiquidityInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyWhirlpool,
		ix.KeyPosition,
		ix.KeyTokenVaultA,
		ix.KeyTokenVaultB,
		ix.KeyTickArrayLower,
		ix.KeyTickArrayUpper,
	}
}

// IncreaseLiquidityV2Instruction is the token-extensions deposit.
type IncreaseLiquidityV2Instruction struct {
	DataLiquidityAmount U128 `json:"dataLiquidityAmount"`
	DataTokenMaxA       U64  `json:"dataTokenMaxA"`
	DataTokenMaxB       U64  `json:"dataTokenMaxB"`

	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyTokenProgramA        string `json:"keyTokenProgramA"`
	KeyTokenProgramB        string `json:"keyTokenProgramB"`
	KeyMemoProgram          string `json:"keyMemoProgram"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenMintA           string `json:"keyTokenMintA"`
	KeyTokenMintB           string `json:"keyTokenMintB"`
	KeyTokenOwnerAccountA   string `json:"keyTokenOwnerAccountA"`
	KeyTokenOwnerAccountB   string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultA          string `json:"keyTokenVaultA"`
	KeyTokenVaultB          string `json:"keyTokenVaultB"`
	KeyTickArrayLower       string `json:"keyTickArrayLower"`
	KeyTickArrayUpper       string `json:"keyTickArrayUpper"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
	Transfer1 TransferAmountWithTransferFeeConfig `json:"transfer1"`
}

func (IncreaseLiquidityV2Instruction) Name() string { return "increaseLiquidityV2" }

func (ix IncreaseLiquidityV2Instruction) WritableAccounts() []string {
	return []string{
		ix.KeyWhirlpool,
		ix.KeyPosition,
		ix.KeyTokenVaultA,
		ix.KeyTokenVaultB,
		ix.KeyTickArrayLower,
		ix.KeyTickArrayUpper,
	}
}

// DecreaseLiquidityInstruction withdraws tokens from a position.
type DecreaseLiquidityInstruction struct {
	DataLiquidityAmount U128 `json:"dataLiquidityAmount"`
	DataTokenMinA       U64  `json:"dataTokenMinA"`
	DataTokenMinB       U64  `json:"dataTokenMinB"`

	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyTokenProgram         string `json:"keyTokenProgram"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenOwnerAccountA   string `json:"keyTokenOwnerAccountA"`
	KeyTokenOwnerAccountB   string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultA          string `json:"keyTokenVaultA"`
	KeyTokenVaultB          string `json:"keyTokenVaultB"`
	KeyTickArrayLower       string `json:"keyTickArrayLower"`
	KeyTickArrayUpper       string `json:"keyTickArrayUpper"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
	TransferAmount1 TransferAmount `json:"transferAmount1"`
}

func (DecreaseLiquidityInstruction) Name() string { return "decreaseLiquidity" }

func (ix DecreaseLiquidityInstruction) WritableAccounts() []string {
	return []string{
		ix.KeyWhirlpool,
		ix.KeyPosition,
		ix.KeyTokenVaultA,
		ix.KeyTokenVaultB,
		ix.KeyTickArrayLower,
		ix.KeyTickArrayUpper,
	}
}

// DecreaseLiquidityV2Instruction is the token-extensions withdrawal.
type DecreaseLiquidityV2Instruction struct {
	DataLiquidityAmount U128 `json:"dataLiquidityAmount"`
	DataTokenMinA       U64  `json:"dataTokenMinA"`
	DataTokenMinB       U64  `json:"dataTokenMinB"`

	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyTokenProgramA        string `json:"keyTokenProgramA"`
	KeyTokenProgramB        string `json:"keyTokenProgramB"`
	KeyMemoProgram          string `json:"keyMemoProgram"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenMintA           string `json:"keyTokenMintA"`
	KeyTokenMintB           string `json:"keyTokenMintB"`
	KeyTokenOwnerAccountA   string `json:"keyTokenOwnerAccountA"`
	KeyTokenOwnerAccountB   string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultA          string `json:"keyTokenVaultA"`
	KeyTokenVaultB          string `json:"keyTokenVaultB"`
	KeyTickArrayLower       string `json:"keyTickArrayLower"`
	KeyTickArrayUpper       string `json:"keyTickArrayUpper"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
	Transfer1 TransferAmountWithTransferFeeConfig `json:"transfer1"`
}

func (DecreaseLiquidityV2Instruction) Name() string { return "decreaseLiquidityV2" }

func (ix DecreaseLiquidityV2Instruction) WritableAccounts() []string {
	return []string{
		ix.KeyWhirlpool,
		ix.KeyPosition,
		ix.KeyTokenVaultA,
		ix.KeyTokenVaultB,
		ix.KeyTickArrayLower,
		ix.KeyTickArrayUpper,
	}
}

// AdminIncreaseLiquidityInstruction patches pool liquidity without transfers.
type AdminIncreaseLiquidityInstruction struct {
	DataLiquidity U128 `json:"dataLiquidity"`

	KeyWhirlpoolsConfig string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool        string `json:"keyWhirlpool"`
	KeyAuthority        string `json:"keyAuthority"`
}

func (AdminIncreaseLiquidityInstruction) Name() string { return "adminIncreaseLiquidity" }

func (ix AdminIncreaseLiquidityInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool}
}

// UpdateFeesAndRewardsInstruction refreshes a position's accrued amounts.
type UpdateFeesAndRewardsInstruction struct {
	KeyWhirlpool      string `json:"keyWhirlpool"`
	KeyPosition       string `json:"keyPosition"`
	KeyTickArrayLower string `json:"keyTickArrayLower"`
	KeyTickArrayUpper string `json:"keyTickArrayUpper"`
}

func (UpdateFeesAndRewardsInstruction) Name() string { return "updateFeesAndRewards" }

func (ix UpdateFeesAndRewardsInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool, ix.KeyPosition}
}

// CollectFeesInstruction harvests a position's accrued trading fees.
type CollectFeesInstruction struct {
	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenOwnerAccountA   string `json:"keyTokenOwnerAccountA"`
	KeyTokenVaultA          string `json:"keyTokenVaultA"`
	KeyTokenOwnerAccountB   string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultB          string `json:"keyTokenVaultB"`
	KeyTokenProgram         string `json:"keyTokenProgram"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
	TransferAmount1 TransferAmount `json:"transferAmount1"`
}

func (CollectFeesInstruction) Name() string { return "collectFees" }

func (ix CollectFeesInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyTokenVaultA, ix.KeyTokenVaultB}
}

// CollectFeesV2Instruction is the token-extensions fee harvest.
type CollectFeesV2Instruction struct {
	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyTokenMintA           string `json:"keyTokenMintA"`
	KeyTokenMintB           string `json:"keyTokenMintB"`
	KeyTokenOwnerAccountA   string `json:"keyTokenOwnerAccountA"`
	KeyTokenVaultA          string `json:"keyTokenVaultA"`
	KeyTokenOwnerAccountB   string `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultB          string `json:"keyTokenVaultB"`
	KeyTokenProgramA        string `json:"keyTokenProgramA"`
	KeyTokenProgramB        string `json:"keyTokenProgramB"`
	KeyMemoProgram          string `json:"keyMemoProgram"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
	Transfer1 TransferAmountWithTransferFeeConfig `json:"transfer1"`
}

func (CollectFeesV2Instruction) Name() string { return "collectFeesV2" }

func (ix CollectFeesV2Instruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyTokenVaultA, ix.KeyTokenVaultB}
}

// CollectRewardInstruction harvests a position's accrued reward.
type CollectRewardInstruction struct {
	DataRewardIndex uint8 `json:"dataRewardIndex"`

	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyRewardOwnerAccount   string `json:"keyRewardOwnerAccount"`
	KeyRewardVault          string `json:"keyRewardVault"`
	KeyTokenProgram         string `json:"keyTokenProgram"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
}

func (CollectRewardInstruction) Name() string { return "collectReward" }

func (ix CollectRewardInstruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyRewardVault}
}

// CollectRewardV2Instruction is the token-extensions reward harvest.
type CollectRewardV2Instruction struct {
	DataRewardIndex uint8 `json:"dataRewardIndex"`

	KeyWhirlpool            string `json:"keyWhirlpool"`
	KeyPositionAuthority    string `json:"keyPositionAuthority"`
	KeyPosition             string `json:"keyPosition"`
	KeyPositionTokenAccount string `json:"keyPositionTokenAccount"`
	KeyRewardOwnerAccount   string `json:"keyRewardOwnerAccount"`
	KeyRewardMint           string `json:"keyRewardMint"`
	KeyRewardVault          string `json:"keyRewardVault"`
	KeyRewardTokenProgram   string `json:"keyRewardTokenProgram"`
	KeyMemoProgram          string `json:"keyMemoProgram"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
}

func (CollectRewardV2Instruction) Name() string { return "collectRewardV2" }

func (ix CollectRewardV2Instruction) WritableAccounts() []string {
	return []string{ix.KeyPosition, ix.KeyRewardVault}
}

// CollectProtocolFeesInstruction harvests protocol fees from a pool.
type CollectProtocolFeesInstruction struct {
	KeyWhirlpoolsConfig             string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool                    string `json:"keyWhirlpool"`
	KeyCollectProtocolFeesAuthority string `json:"keyCollectProtocolFeesAuthority"`
	KeyTokenVaultA                  string `json:"keyTokenVaultA"`
	KeyTokenVaultB                  string `json:"keyTokenVaultB"`
	KeyTokenDestinationA            string `json:"keyTokenDestinationA"`
	KeyTokenDestinationB            string `json:"keyTokenDestinationB"`
	KeyTokenProgram                 string `json:"keyTokenProgram"`

	TransferAmount0 TransferAmount `json:"transferAmount0"`
	TransferAmount1 TransferAmount `json:"transferAmount1"`
}

func (CollectProtocolFeesInstruction) Name() string { return "collectProtocolFees" }

func (ix CollectProtocolFeesInstruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool, ix.KeyTokenVaultA, ix.KeyTokenVaultB}
}

// CollectProtocolFeesV2Instruction is the token-extensions protocol harvest.
type CollectProtocolFeesV2Instruction struct {
	KeyWhirlpoolsConfig             string `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool                    string `json:"keyWhirlpool"`
	KeyCollectProtocolFeesAuthority string `json:"keyCollectProtocolFeesAuthority"`
	KeyTokenMintA                   string `json:"keyTokenMintA"`
	KeyTokenMintB                   string `json:"keyTokenMintB"`
	KeyTokenVaultA                  string `json:"keyTokenVaultA"`
	KeyTokenVaultB                  string `json:"keyTokenVaultB"`
	KeyTokenDestinationA            string `json:"keyTokenDestinationA"`
	KeyTokenDestinationB            string `json:"keyTokenDestinationB"`
	KeyTokenProgramA                string `json:"keyTokenProgramA"`
	KeyTokenProgramB                string `json:"keyTokenProgramB"`
	KeyMemoProgram                  string `json:"keyMemoProgram"`

	RemainingAccountsInfo RemainingAccountsInfo `json:"remainingAccountsInfo"`
	RemainingAccountsKeys []string              `json:"remainingAccountsKeys"`

	Transfer0 TransferAmountWithTransferFeeConfig `json:"transfer0"`
	Transfer1 TransferAmountWithTransferFeeConfig `json:"transfer1"`
}

func (CollectProtocolFeesV2Instruction) Name() string { return "collectProtocolFeesV2" }

func (ix CollectProtocolFeesV2Instruction) WritableAccounts() []string {
	return []string{ix.KeyWhirlpool, ix.KeyTokenVaultA, ix.KeyTokenVaultB}
}
