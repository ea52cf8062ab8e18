package event

import "github.com/everlastingsong/sedimentology/pkg/whirlpool"

// PositionOpenedEventPayload records a new position.
type PositionOpenedEventPayload struct {
	Origin PositionOpenedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	LowerTickIndex int32 `json:"lti"`
	UpperTickIndex int32 `json:"uti"`

	LowerDecimalPrice DecimalPrice `json:"ldp"`
	UpperDecimalPrice DecimalPrice `json:"udp"`

	PositionAuthority PubkeyString `json:"pa"`

	PositionType PositionType `json:"pt"`

	// position only
	PositionMint *PubkeyString `json:"pm,omitempty"`

	// bundled position only
	PositionBundleMint  *PubkeyString `json:"pbm,omitempty"`
	PositionBundle      *PubkeyString `json:"pb,omitempty"`
	PositionBundleIndex *uint16       `json:"pbi,omitempty"`
}

type PositionOpenedEventOrigin string

const (
	PositionOpenedOriginOpenPosition                    PositionOpenedEventOrigin = "op"
	PositionOpenedOriginOpenPositionWithMetadata        PositionOpenedEventOrigin = "opwm"
	PositionOpenedOriginOpenBundledPosition             PositionOpenedEventOrigin = "obp"
	PositionOpenedOriginOpenPositionWithTokenExtensions PositionOpenedEventOrigin = "opwte"
)

// PositionClosedEventPayload records a closed position.
type PositionClosedEventPayload struct {
	Origin PositionClosedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	LowerTickIndex int32 `json:"lti"`
	UpperTickIndex int32 `json:"uti"`

	LowerDecimalPrice DecimalPrice `json:"ldp"`
	UpperDecimalPrice DecimalPrice `json:"udp"`

	PositionAuthority PubkeyString `json:"pa"`

	PositionType PositionType `json:"pt"`

	// position only
	PositionMint *PubkeyString `json:"pm,omitempty"`

	// bundled position only
	PositionBundleMint  *PubkeyString `json:"pbm,omitempty"`
	PositionBundle      *PubkeyString `json:"pb,omitempty"`
	PositionBundleIndex *uint16       `json:"pbi,omitempty"`
}

type PositionClosedEventOrigin string

const (
	PositionClosedOriginClosePosition                    PositionClosedEventOrigin = "cp"
	PositionClosedOriginCloseBundledPosition             PositionClosedEventOrigin = "cbp"
	PositionClosedOriginClosePositionWithTokenExtensions PositionClosedEventOrigin = "cpwte"
)

// PositionRangeResetEventPayload records an empty position moved to a new
// tick range.
type PositionRangeResetEventPayload struct {
	Origin PositionRangeResetEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	OldLowerTickIndex int32 `json:"olti"`
	OldUpperTickIndex int32 `json:"outi"`

	OldLowerDecimalPrice DecimalPrice `json:"oldp"`
	OldUpperDecimalPrice DecimalPrice `json:"oudp"`

	NewLowerTickIndex int32 `json:"nlti"`
	NewUpperTickIndex int32 `json:"nuti"`

	NewLowerDecimalPrice DecimalPrice `json:"nldp"`
	NewUpperDecimalPrice DecimalPrice `json:"nudp"`

	PositionAuthority PubkeyString `json:"pa"`
}

type PositionRangeResetEventOrigin string

const (
	PositionRangeResetOriginResetPositionRange PositionRangeResetEventOrigin = "rpr"
)

// PositionLockedEventPayload records a permanently locked position.
type PositionLockedEventPayload struct {
	Origin PositionLockedEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	LockType   PositionLockType `json:"lt"`
	LockConfig PubkeyString     `json:"lc"`

	LowerTickIndex int32 `json:"lti"`
	UpperTickIndex int32 `json:"uti"`

	LowerDecimalPrice DecimalPrice `json:"ldp"`
	UpperDecimalPrice DecimalPrice `json:"udp"`

	LockedLiquidity whirlpool.U128 `json:"ll"`

	PositionOwner PubkeyString `json:"po"`
	PositionMint  PubkeyString `json:"pm"`
}

type PositionLockedEventOrigin string

const (
	PositionLockedOriginLockPosition PositionLockedEventOrigin = "lp"
)

// PositionLockedTransferredEventPayload records a locked position changing
// owner.
type PositionLockedTransferredEventPayload struct {
	Origin PositionLockedTransferredEventOrigin `json:"o"`

	Whirlpool PubkeyString `json:"w"`
	Position  PubkeyString `json:"p"`

	LockType   PositionLockType `json:"lt"`
	LockConfig PubkeyString     `json:"lc"`

	LowerTickIndex int32 `json:"lti"`
	UpperTickIndex int32 `json:"uti"`

	LowerDecimalPrice DecimalPrice `json:"ldp"`
	UpperDecimalPrice DecimalPrice `json:"udp"`

	LockedLiquidity whirlpool.U128 `json:"ll"`

	OldPositionOwner PubkeyString `json:"opo"`
	NewPositionOwner PubkeyString `json:"npo"`

	PositionMint PubkeyString `json:"pm"`
}

type PositionLockedTransferredEventOrigin string

const (
	PositionLockedTransferredOriginTransferLockedPosition PositionLockedTransferredEventOrigin = "tlp"
)

// PositionBundleInitializedEventPayload records a new position bundle.
type PositionBundleInitializedEventPayload struct {
	Origin PositionBundleInitializedEventOrigin `json:"o"`

	PositionBundle      PubkeyString `json:"pb"`
	PositionBundleMint  PubkeyString `json:"pbm"`
	PositionBundleOwner PubkeyString `json:"pbo"`
}

type PositionBundleInitializedEventOrigin string

const (
	PositionBundleInitializedOriginInitializePositionBundle             PositionBundleInitializedEventOrigin = "ipb"
	PositionBundleInitializedOriginInitializePositionBundleWithMetadata PositionBundleInitializedEventOrigin = "ipbwm"
)

// PositionBundleDeletedEventPayload records a deleted position bundle.
type PositionBundleDeletedEventPayload struct {
	Origin PositionBundleDeletedEventOrigin `json:"o"`

	PositionBundle      PubkeyString `json:"pb"`
	PositionBundleMint  PubkeyString `json:"pbm"`
	PositionBundleOwner PubkeyString `json:"pbo"`
}

type PositionBundleDeletedEventOrigin string

const (
	PositionBundleDeletedOriginDeletePositionBundle PositionBundleDeletedEventOrigin = "dpb"
)
