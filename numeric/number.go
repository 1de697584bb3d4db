// Package numeric implements the tagged Number value and the arbitrary-precision
// arithmetic primitives used by the calculation planner. It is the only package
// allowed to touch math/big directly; every other package sees Number.
package numeric

import (
	"fmt"
	"math/big"
)

// Kind tags which regime a Number currently occupies.
type Kind int

const (
	// Exact is an arbitrary-precision integer result.
	Exact Kind = iota
	// Float is an arbitrary-precision binary float at some bit precision.
	Float
	// Approximate is a mantissa*10^exponent form; the planner returns it as is
	// while its exponent is narrow and collapses it to ApproximateDigits once
	// the exponent is too wide.
	Approximate
	// ApproximateDigits means "the value has approximately Digits decimal digits".
	ApproximateDigits
	// ApproximateDigitsTower means 10^10^...^Tower[last], Tower[0] innermost.
	ApproximateDigitsTower
	// Tetration means 10↑↑Height, the terminal fallback.
	Tetration
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Float:
		return "float"
	case Approximate:
		return "approximate"
	case ApproximateDigits:
		return "approximate_digits"
	case ApproximateDigitsTower:
		return "tower"
	case Tetration:
		return "tetration"
	default:
		return "unknown"
	}
}

// Number is the tagged sum type carried between the parser, planner, numeric
// engine and renderer. Only the fields relevant to Kind are populated; the rest
// are left at their zero value. Negative records whether the presented value
// should be read as negative (spec §4.2's negative_depth-is-odd rule) without
// requiring every regime to carry a signed representation of its own.
type Number struct {
	Kind Kind

	ExactVal *big.Int   // Exact
	FloatVal *big.Float // Float

	Mantissa float64  // Approximate: in [1, 10)
	Exponent *big.Int // Approximate

	Digits *big.Int // ApproximateDigits

	Tower []*big.Int // ApproximateDigitsTower, index 0 innermost, last is top

	Height int // Tetration: 10↑↑Height

	Negative bool
}

// NewExact wraps an integer as an Exact Number.
func NewExact(n *big.Int) Number {
	return Number{Kind: Exact, ExactVal: new(big.Int).Set(n)}
}

// NewExactInt64 is a convenience constructor for small literals and tests.
func NewExactInt64(n int64) Number {
	return Number{Kind: Exact, ExactVal: big.NewInt(n)}
}

// NewFloat wraps a big.Float result.
func NewFloat(f *big.Float) Number {
	return Number{Kind: Float, FloatVal: new(big.Float).Set(f)}
}

// NewApproximate builds the internal mantissa/exponent shorthand.
func NewApproximate(mantissa float64, exponent *big.Int) Number {
	return Number{Kind: Approximate, Mantissa: mantissa, Exponent: new(big.Int).Set(exponent)}
}

// NewApproximateDigits builds an approximate-digit-count result.
func NewApproximateDigits(digits *big.Int) Number {
	return Number{Kind: ApproximateDigits, Digits: new(big.Int).Set(digits)}
}

// NewTower builds a tower value. tower must be non-empty; callers that would
// produce an empty tower have a bug upstream (see CollapseOrExtendTower).
func NewTower(tower []*big.Int) Number {
	if len(tower) == 0 {
		panic("numeric: NewTower requires a non-empty tower")
	}
	return Number{Kind: ApproximateDigitsTower, Tower: tower}
}

// NewTetration builds the terminal fallback.
func NewTetration(height int) Number {
	return Number{Kind: Tetration, Height: height}
}

// WithNegative returns a copy of n tagged as negative (or not).
func (n Number) WithNegative(neg bool) Number {
	n.Negative = neg
	return n
}

// CollapseApproximate turns an Approximate(mantissa, exponent) into
// ApproximateDigits unconditionally; deciding when to collapse is the
// caller's job (the planner does so once ExponentDigitCount exceeds
// Consts.MaxExponentDigits). The exponent itself becomes the digit count, since a
// value of the form mantissa*10^exponent with mantissa in [1,10) has exactly
// exponent+1 decimal digits.
func (n Number) CollapseApproximate() Number {
	if n.Kind != Approximate {
		return n
	}
	digits := new(big.Int).Add(n.Exponent, big.NewInt(1))
	return Number{Kind: ApproximateDigits, Digits: digits, Negative: n.Negative}
}

// ExponentDigitCount reports how many decimal digits n.Exponent itself has, used
// to decide whether an Approximate value's exponent is still small enough to
// print directly or must collapse to ApproximateDigits.
func (n Number) ExponentDigitCount() int {
	if n.Exponent == nil {
		return 0
	}
	return DecimalDigitCount(n.Exponent)
}

// DecimalDigitCount returns the number of decimal digits in the absolute value
// of n (n=0 counts as one digit).
func DecimalDigitCount(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	abs := new(big.Int).Abs(n)
	return len(abs.Text(10))
}

// IsZero reports whether the value this Number describes is exactly zero.
// Only meaningful for Exact; every other regime is, by construction, never
// used to represent zero (factorial-family results below the calculation
// limit are always represented exactly).
func (n Number) IsZero() bool {
	return n.Kind == Exact && n.ExactVal != nil && n.ExactVal.Sign() == 0
}

func (n Number) String() string {
	switch n.Kind {
	case Exact:
		return n.ExactVal.String()
	case Float:
		return n.FloatVal.Text('g', 10)
	case Approximate:
		return fmt.Sprintf("%gE%s", n.Mantissa, n.Exponent.String())
	case ApproximateDigits:
		return fmt.Sprintf("~10^%s", n.Digits.String())
	case ApproximateDigitsTower:
		return fmt.Sprintf("tower%v", n.Tower)
	case Tetration:
		return fmt.Sprintf("10^^%d", n.Height)
	default:
		return "?"
	}
}
