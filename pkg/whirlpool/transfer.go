package whirlpool

// TransferAmount is a v1 token transfer observed while the instruction ran.
type TransferAmount = U64

// TransferAmountWithTransferFeeConfig is a v2 transfer carrying the
// TransferFee extension parameters in effect, when the mint has one.
type TransferAmountWithTransferFeeConfig struct {
	Amount               U64    `json:"amount"`
	TransferFeeConfigOpt bool   `json:"transferFeeConfigOpt"`
	TransferFeeConfigBps uint16 `json:"transferFeeConfigBps"`
	TransferFeeConfigMax U64    `json:"transferFeeConfigMax"`
}

// RemainingAccountsInfo describes how v2 instructions map their trailing
// account list (transfer hook accounts, supplemental tick arrays).
type RemainingAccountsInfo struct {
	Slices []RemainingAccountsSlice `json:"slices"`
}

// RemainingAccountsSlice is one (accounts-type, length) run.
type RemainingAccountsSlice struct {
	AccountsType uint8 `json:"accountsType"`
	Length       uint8 `json:"length"`
}
