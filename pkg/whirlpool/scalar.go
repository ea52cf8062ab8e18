package whirlpool

import (
	"fmt"
	"math/big"
	"strconv"
)

// U64 is a uint64 that serializes as a decimal string. Payload values can
// exceed the 53-bit float range, so plain JSON numbers are not safe.
type U64 uint64

func (u U64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatUint(uint64(u), 10)), nil
}

func (u *U64) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		// tolerate bare numbers from older payload rows
		s = string(data)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %q: %w", s, err)
	}
	*u = U64(v)
	return nil
}

// U128 is an unsigned 128-bit integer that serializes as a decimal string.
type U128 struct {
	value big.Int
}

// NewU128 builds a U128 from a decimal string. The string must parse as a
// non-negative integer within 128 bits.
func NewU128(s string) (U128, error) {
	var u U128
	if err := u.set(s); err != nil {
		return U128{}, err
	}
	return u, nil
}

// U128FromUint64 builds a U128 from a uint64.
func U128FromUint64(v uint64) U128 {
	var u U128
	u.value.SetUint64(v)
	return u
}

func (u *U128) set(s string) error {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return fmt.Errorf("invalid u128 %q", s)
	}
	u.value.Set(v)
	return nil
}

// Big returns a copy of the underlying integer.
func (u U128) Big() *big.Int {
	return new(big.Int).Set(&u.value)
}

// String renders the decimal representation.
func (u U128) String() string {
	return u.value.String()
}

func (u U128) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, u.value.String()), nil
}

func (u *U128) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		s = string(data)
	}
	return u.set(s)
}
