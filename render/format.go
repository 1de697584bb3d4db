package render

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"factorionlib/numeric"
)

// formatNumber renders n as the locale would display it: integers print in
// full, Float/Approximate print as mantissa×10^exponent scientific notation
// once forceScientific is set (or once the value's own regime demands it),
// towers print as a stacked 10^10^...^d string, and tetration prints as
// 10↑↑height. decimalChar substitutes for '.' in every fractional mantissa,
// per spec §12's locale decimal-character substitution.
func formatNumber(n numeric.Number, decimalChar string, sciDigits int, forceScientific bool) string {
	var body string
	switch n.Kind {
	case numeric.Exact:
		body = n.ExactVal.String()
	case numeric.Float:
		body = formatFloat(n.FloatVal, decimalChar, sciDigits, forceScientific)
	case numeric.Approximate:
		body = formatApprox(n.Mantissa, n.Exponent, decimalChar, sciDigits)
	case numeric.ApproximateDigits:
		body = n.Digits.String()
	case numeric.ApproximateDigitsTower:
		body = formatTower(n.Tower)
	case numeric.Tetration:
		body = fmt.Sprintf("10↑↑%d", n.Height)
	default:
		body = "?"
	}
	if n.Negative {
		body = "-" + body
	}
	return body
}

func formatFloat(f *big.Float, decimalChar string, sciDigits int, forceScientific bool) string {
	if !forceScientific {
		s := f.Text('f', sciDigits)
		return substituteDecimal(s, decimalChar)
	}
	mantissa, exp := new(big.Float).Copy(f), 0
	abs := new(big.Float).Abs(mantissa)
	ten := big.NewFloat(10)
	one := big.NewFloat(1)
	for abs.Cmp(ten) >= 0 {
		mantissa.Quo(mantissa, ten)
		abs.Quo(abs, ten)
		exp++
	}
	for abs.Cmp(one) < 0 && abs.Sign() != 0 {
		mantissa.Mul(mantissa, ten)
		abs.Mul(abs, ten)
		exp--
	}
	s := mantissa.Text('f', sciDigits)
	return substituteDecimal(s, decimalChar) + "×10^" + strconv.Itoa(exp)
}

func formatApprox(mantissa float64, exponent *big.Int, decimalChar string, sciDigits int) string {
	s := strconv.FormatFloat(mantissa, 'f', sciDigits, 64)
	return substituteDecimal(s, decimalChar) + "×10^" + exponent.String()
}

func formatTower(tower []*big.Int) string {
	var b strings.Builder
	// A tower of height h describes the digit count as h stacked powers of
	// ten over the top entry, so the value itself carries one more "10^".
	b.WriteString("10^")
	for range tower {
		b.WriteString("10^")
	}
	b.WriteString(tower[len(tower)-1].String())
	return b.String()
}

func substituteDecimal(s, decimalChar string) string {
	if decimalChar == "" || decimalChar == "." {
		return s
	}
	return strings.ReplaceAll(s, ".", decimalChar)
}
