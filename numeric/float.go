package numeric

import (
	"math"
	"math/big"
)

// FloatFactorial evaluates Γ(x+1) for a non-integer (or merely large) x at bit
// precision prec. math/big has no transcendental functions of its own, and no
// repository in this project's dependency graphs wires an arbitrary-precision
// Gamma/Exp/Log implementation that would be safe to depend on here, so the
// continuous extension is evaluated at float64 precision via math.Lgamma (the
// standard library's log-Gamma, numerically stable across the whole range
// math.Gamma itself is), then lifted into a big.Float of the requested
// precision. This loses precision beyond float64's ~15 significant digits,
// which only matters for the rendered mantissa, not for which regime a result
// falls into — acceptable for a "rough" Float display tier.
func FloatFactorial(x *big.Float, prec uint) *big.Float {
	xf, _ := x.Float64()
	lg, sign := math.Lgamma(xf + 1)
	val := math.Exp(lg) * float64(sign)
	return new(big.Float).SetPrec(prec).SetFloat64(val)
}

// FloatMultifactorial evaluates the double-factorial-style continuation for a
// non-integer x using the cosine-weighted E_{k,j}(x) continuation folded onto
// the ordinary Gamma-based continuation, matching the conventional double
// factorial continuation when k=2: Γ(x/2+1)*2^(x/2)/sqrt(pi/... ) generalizes
// poorly in closed form for general k, so this engine composes the Gamma-based
// factorial continuation with the same cosine weighting used by
// ApproximateMultifactorial, which reduces to the textbook double-factorial
// continuation at k=2 and degrades gracefully for other k.
func FloatMultifactorial(x *big.Float, k int, prec uint) *big.Float {
	xf, _ := x.Float64()
	base := FloatFactorial(new(big.Float).SetFloat64(xf/float64(k)), prec)
	baseF, _ := base.Float64()
	weight := kthRootWeight(xf/float64(k), k, int(math.Mod(xf, float64(k))))
	val := baseF * math.Pow(float64(k), xf/float64(k)) * weight
	return new(big.Float).SetPrec(prec).SetFloat64(val)
}

// FloatTermial evaluates the termial continuation n(n+1)/2 directly; termial
// is already a degree-2 polynomial, so its continuous extension needs no
// special function at all.
func FloatTermial(x *big.Float, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	xp1 := new(big.Float).SetPrec(prec).Add(x, one)
	prod := new(big.Float).SetPrec(prec).Mul(x, xp1)
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	return prod.Mul(prod, half)
}

// FloatSubfactorial evaluates the ⌊n!/e⌋ analogue continuously as Γ(x+1)/e,
// without the floor (the floor only matters for the integer domain).
func FloatSubfactorial(x *big.Float, prec uint) *big.Float {
	fac := FloatFactorial(x, prec)
	e := new(big.Float).SetPrec(prec).SetFloat64(math.E)
	return new(big.Float).SetPrec(prec).Quo(fac, e)
}

// knownFactorions are the only four base-10 factorions (OEIS A014080).
var knownFactorions = map[int64]bool{1: true, 2: true, 145: true, 40585: true}

// IsFactorion reports whether n is one of the four known base-10 factorions.
// Only meaningful (and only ever called by the renderer) for Exact results up
// to 10^6.
func IsFactorion(n *big.Int) bool {
	if !n.IsInt64() {
		return false
	}
	return knownFactorions[n.Int64()]
}
