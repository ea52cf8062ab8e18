package event

import (
	"math/big"

	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// DecimalPrice is a decimal price rendered as a string. The scale is the sum
// of both tokens' decimals, which keeps the full precision of the pair and
// makes re-derivation byte-stable.
type DecimalPrice string

var (
	two64  = new(big.Int).Lsh(big.NewInt(1), 64)
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
)

// priceScale is the render scale for a pair.
func priceScale(decimalsA, decimalsB Decimals) int {
	return int(decimalsA) + int(decimalsB)
}

// PriceFromSqrtPrice converts an X64 sqrt price into the pair's decimal
// price: (sqrt_price / 2^64)^2 * 10^(decimalsA - decimalsB).
func PriceFromSqrtPrice(sqrtPrice whirlpool.U128, decimalsA, decimalsB Decimals) DecimalPrice {
	sqrt := sqrtPrice.Big()
	num := new(big.Int).Mul(sqrt, sqrt)
	den := new(big.Int).Set(two128)

	applyDecimalsDelta(num, den, decimalsA, decimalsB)

	r := new(big.Rat).SetFrac(num, den)
	return DecimalPrice(r.FloatString(priceScale(decimalsA, decimalsB)))
}

// PriceFromTickIndex converts a tick index into the pair's decimal price:
// 1.0001^tick * 10^(decimalsA - decimalsB).
func PriceFromTickIndex(tickIndex int32, decimalsA, decimalsB Decimals) DecimalPrice {
	// 1.0001 = 10001/10000; exponentiation stays exact in a big.Rat
	base := new(big.Rat).SetFrac64(10001, 10000)
	if tickIndex < 0 {
		base.Inv(base)
	}
	exp := tickIndex
	if exp < 0 {
		exp = -exp
	}

	price := new(big.Rat).SetInt64(1)
	pow := base
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			price.Mul(price, pow)
		}
		pow = new(big.Rat).Mul(pow, pow)
	}

	num := price.Num()
	den := price.Denom()
	applyDecimalsDelta(num, den, decimalsA, decimalsB)

	r := new(big.Rat).SetFrac(num, den)
	return DecimalPrice(r.FloatString(priceScale(decimalsA, decimalsB)))
}

// applyDecimalsDelta multiplies num/den by 10^(decimalsA - decimalsB).
func applyDecimalsDelta(num, den *big.Int, decimalsA, decimalsB Decimals) {
	if decimalsA >= decimalsB {
		num.Mul(num, pow10(int(decimalsA-decimalsB)))
	} else {
		den.Mul(den, pow10(int(decimalsB-decimalsA)))
	}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
