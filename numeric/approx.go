package numeric

import (
	"math"
	"math/big"
)

// log10BigInt returns an accurate float64 approximation of log10(|n|) even
// when n has far more digits than fit in a float64, by reading off the top 63
// bits of n's magnitude and combining them with the bit-length of the rest.
// No ecosystem library in this codebase's dependency graph offers a log-of-
// arbitrary-precision-integer helper, so this is implemented directly against
// math/big's bit-level accessors.
func log10BigInt(n *big.Int) float64 {
	if n.Sign() == 0 {
		return math.Inf(-1)
	}
	abs := new(big.Int).Abs(n)
	bitLen := abs.BitLen()
	shift := bitLen - 63
	var head *big.Int
	if shift > 0 {
		head = new(big.Int).Rsh(abs, uint(shift))
	} else {
		head = abs
		shift = 0
	}
	return math.Log10(float64(head.Uint64())) + float64(shift)*math.Log10(2)
}

// stirlingLog10Factorial returns the base-10 logarithm of n! via Stirling's
// approximation, ln(n!) ≈ (n+0.5)ln(n) - n + 0.5 ln(2π), evaluated at bit
// precision prec so the dominant n/ln(10) term (which for large n can itself
// be an astronomically large number) stays exact in its integer part.
// Returns the value as a big.Float so callers can split it into an integer
// exponent and fractional mantissa without losing digits.
func stirlingLog10Factorial(n *big.Int, prec uint) *big.Float {
	nBF := new(big.Float).SetPrec(prec).SetInt(n)
	logN := log10BigInt(n)

	nPlusHalf := new(big.Float).SetPrec(prec).Add(nBF, big.NewFloat(0.5))
	term1 := new(big.Float).SetPrec(prec).Mul(nPlusHalf, big.NewFloat(logN))

	term2 := new(big.Float).SetPrec(prec).Quo(nBF, big.NewFloat(math.Ln10))

	term3 := 0.5 * math.Log10(2*math.Pi)

	result := new(big.Float).SetPrec(prec).Sub(term1, term2)
	result.Add(result, big.NewFloat(term3))
	return result
}

// splitLog10 decomposes a base-10 logarithm value into an integer exponent and
// a [1,10) mantissa: value = mantissa * 10^exponent.
func splitLog10(log10Value *big.Float) (mantissa float64, exponent *big.Int) {
	floorVal, _ := log10Value.Int(nil)
	frac := new(big.Float).Sub(log10Value, new(big.Float).SetInt(floorVal))
	fracF, _ := frac.Float64()
	mantissa = math.Pow(10, fracF)
	if mantissa >= 10 {
		mantissa /= 10
		floorVal.Add(floorVal, big.NewInt(1))
	}
	return mantissa, floorVal
}

// ApproximateFactorial computes n! for n beyond the exact-calculation limit
// via Stirling's approximation, returning the Approximate(mantissa, exponent)
// shorthand.
func ApproximateFactorial(n *big.Int, prec uint) Number {
	logVal := stirlingLog10Factorial(n, prec)
	mantissa, exponent := splitLog10(logVal)
	return NewApproximate(mantissa, exponent)
}

// kthRootWeight computes the cosine-weighted E_{k,j}(x) correction factor used
// to refine the leading digits of an approximate multifactorial, summing the
// full residue class since k is always small in practice (k is a run-length
// of '!' characters a human actually typed).
func kthRootWeight(x float64, k int, j int) float64 {
	if k <= 1 {
		return 1
	}
	num := 1.0
	den := 1.0
	for l := 0; l < k; l++ {
		if l != j {
			num *= 1 - math.Cos(2*math.Pi*(x-float64(l))/float64(k))
		}
		den *= 1 - math.Cos(-2*math.Pi*float64(l)/float64(k))
	}
	if den == 0 {
		return 1
	}
	return num / den
}

// ApproximateMultifactorial computes n!_k for n beyond the exact limit, using
// the z!_k = k^(z/k) * (z/k)! * T_k(z) decomposition: the planner factors
// k^(z/k) into a base-10 exponent contribution and folds in (z/k)! via the
// same Stirling routine used for plain factorial, then refines the mantissa
// with the cosine-weighted correction term.
func ApproximateMultifactorial(n *big.Int, k int64, prec uint) Number {
	kBig := big.NewInt(k)
	zOverK := new(big.Int).Quo(n, kBig)
	j := new(big.Int).Mod(n, kBig).Int64()

	logK := math.Log10(float64(k))
	zOverKFloat, _ := new(big.Float).SetInt(zOverK).Float64()
	n1 := logK * zOverKFloat

	logFactorialPart := stirlingLog10Factorial(zOverK, prec)
	n1BF := big.NewFloat(n1)
	total := new(big.Float).SetPrec(prec).Add(logFactorialPart, n1BF)

	mantissa, exponent := splitLog10(total)

	weight := kthRootWeight(zOverKFloat, int(k), int(j))
	mantissa *= weight
	for mantissa >= 10 {
		mantissa /= 10
		exponent.Add(exponent, big.NewInt(1))
	}
	for mantissa < 1 && mantissa > 0 {
		mantissa *= 10
		exponent.Sub(exponent, big.NewInt(1))
	}
	return NewApproximate(mantissa, exponent)
}

// ApproximateTermial factors 10^m out of both n and n+1, combining exponents,
// as spec'd: termial is just n(n+1)/2, so its log10 is log10(n) + log10(n+1) -
// log10(2), computed at whatever precision n's magnitude needs.
func ApproximateTermial(n *big.Int, prec uint) Number {
	np1 := new(big.Int).Add(n, big.NewInt(1))
	logN := log10BigInt(n)
	logNp1 := log10BigInt(np1)
	total := new(big.Float).SetPrec(prec).Add(big.NewFloat(logN), big.NewFloat(logNp1))
	total.Sub(total, big.NewFloat(math.Log10(2)))
	mantissa, exponent := splitLog10(total)
	return NewApproximate(mantissa, exponent)
}

// ApproximateMultiTermial mirrors ApproximateTermial for the k-termial's
// arithmetic-series closed form: count*(n+last)/2, with count, last and the
// sum computed exactly as big.Int values and only the final sum converted to
// log10.
func ApproximateMultiTermial(n *big.Int, k int64, prec uint) Number {
	kBig := big.NewInt(k)
	count := new(big.Int).Sub(n, big.NewInt(1))
	count.Quo(count, kBig)
	count.Add(count, big.NewInt(1))
	last := new(big.Int).Sub(count, big.NewInt(1))
	last.Mul(last, kBig)
	last.Sub(n, last)
	sum := new(big.Int).Add(n, last)
	sum.Mul(sum, count)
	sum.Rsh(sum, 1)
	logVal := log10BigInt(sum)
	exponent := int64(logVal)
	mantissa := math.Pow(10, logVal-float64(exponent))
	return NewApproximate(mantissa, big.NewInt(exponent))
}

// ApproximateSubfactorial uses !n ≈ n!/e, the same digit count as n! for any
// n large enough that this regime applies (the factor 1/e shifts the mantissa
// but never the order of magnitude by more than a rounding unit).
func ApproximateSubfactorial(n *big.Int, prec uint) Number {
	base := ApproximateFactorial(n, prec)
	base.Mantissa /= math.E
	if base.Mantissa < 1 {
		base.Mantissa *= 10
		base.Exponent.Sub(base.Exponent, big.NewInt(1))
	}
	return base
}
