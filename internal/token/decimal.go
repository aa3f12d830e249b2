package token

import (
	"math/big"
	"strings"
)

// Decimal is an exact decimal number: an arbitrary-precision rational value
// plus the number of digits written after the decimal point in the source
// text, so that "1.50" and "1.5" round-trip to the same source spelling if
// ever needed. No example module in the reference corpus ships a decimal
// library (see DESIGN.md); math/big.Rat is the stdlib's exact-arithmetic
// type and is used directly here rather than introducing floating point.
type Decimal struct {
	rat   *big.Rat
	scale int
}

// ParseDecimal parses a digit run optionally followed by '.' and more
// digits into an exact Decimal.
func ParseDecimal(lit string) (Decimal, bool) {
	intPart, fracPart, hasFrac := strings.Cut(lit, ".")
	num := new(big.Int)
	if _, ok := num.SetString(intPart+fracPart, 10); !ok {
		return Decimal{}, false
	}
	denom := big.NewInt(1)
	scale := 0
	if hasFrac {
		scale = len(fracPart)
		denom.Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	}
	return Decimal{rat: new(big.Rat).SetFrac(num, denom), scale: scale}, true
}

// IntDecimal wraps a plain integer as a Decimal with zero scale.
func IntDecimal(n int64) Decimal {
	return Decimal{rat: new(big.Rat).SetInt64(n), scale: 0}
}

// String renders the Decimal back to its canonical decimal spelling.
func (d Decimal) String() string {
	if d.rat == nil {
		return "0"
	}
	return d.rat.FloatString(d.scale)
}

// Rat exposes the underlying rational value for arithmetic-free comparisons.
func (d Decimal) Rat() *big.Rat { return d.rat }

// Equal reports whether two Decimals represent the same numeric value,
// irrespective of trailing-zero scale differences.
func (d Decimal) Equal(o Decimal) bool {
	if d.rat == nil || o.rat == nil {
		return d.rat == o.rat
	}
	return d.rat.Cmp(o.rat) == 0
}
