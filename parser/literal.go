package parser

import (
	"math/big"
	"strconv"
	"strings"
)

// bigIntFromDecimalString parses a plain (non-scientific, non-decimal) digit
// run into a big.Int, preserving leading zeros during parse and normalizing
// them away via big.Int's own constructor, per spec §4.1.
func bigIntFromDecimalString(s string) (*big.Int, bool) {
	n := new(big.Int)
	_, ok := n.SetString(s, 10)
	return n, ok
}

// exceedsConstructionLimit reports whether rest (an unsigned numeric literal,
// as matched by numberLiteral minus its optional leading minus signs) would
// exceed limit's decimal-exponent ceiling — checked against the literal's own
// text so a rejected literal never pays for the big.Int/big.Float
// construction it was rejected to avoid. limit<=0 means unbounded.
func exceedsConstructionLimit(rest string, limit int64) bool {
	if limit <= 0 {
		return false
	}
	mantissa := rest
	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		mantissa = rest[:i]
		exp, err := strconv.ParseInt(rest[i+1:], 10, 64)
		if err != nil || exp > limit {
			return true
		}
	}
	digits := strings.Replace(mantissa, ".", "", 1)
	return int64(len(digits)) > limit
}

// bigFloatFromFloat64 lifts a float64 literal (one with a decimal point or a
// scientific-notation exponent) into a big.Float at a comfortable default
// working precision; the planner re-derives whatever precision it actually
// needs from Consts.FloatPrecision once it dispatches an operator to this
// value.
func bigFloatFromFloat64(f float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(f)
}
