package numeric

import "math/big"

// DigitsFactorial returns the approximate decimal digit count of n! using the
// closed-form log-approximation, for n too large even for the mantissa/
// exponent Approximate regime: floor((0.5+n)log10(n) + 0.5 log10(2π) - n/ln10) + 1.
func DigitsFactorial(n *big.Int, prec uint) *big.Int {
	logVal := stirlingLog10Factorial(n, prec)
	floorVal, _ := logVal.Int(nil)
	return floorVal.Add(floorVal, big.NewInt(1))
}

// DigitsTermial returns the approximate decimal digit count of the termial of
// n: 2 log10(n) - log10(2).
func DigitsTermial(n *big.Int) *big.Int {
	logN := log10BigInt(n)
	val := 2*logN - log10Two
	return big.NewInt(int64(val) + 1)
}

// DigitsMultifactorial approximates the digit count of n!_k as the k-th root
// of the digit count of the plain factorial of n, per spec §4.2.
func DigitsMultifactorial(n *big.Int, k int64, prec uint) *big.Int {
	full := DigitsFactorial(n, prec)
	if k <= 1 {
		return full
	}
	return bigIntKthRoot(full, k)
}

const log10Two = 0.3010299956639812

// bigIntKthRoot computes floor(n^(1/k)) for n >= 0, k >= 1, via Newton's
// method on big.Int: no ecosystem library in the pack's dependency graphs
// exposes an arbitrary-precision integer root, and this one only ever runs on
// digit counts, never on the factorial value itself, so plain big.Int Newton
// iteration is cheap enough not to need one.
func bigIntKthRoot(n *big.Int, k int64) *big.Int {
	if n.Sign() <= 0 {
		return big.NewInt(0)
	}
	if k <= 1 {
		return new(big.Int).Set(n)
	}
	kBig := big.NewInt(k)
	kMinus1 := big.NewInt(k - 1)
	x := new(big.Int).Set(n)
	for {
		xkm1 := new(big.Int).Exp(x, kMinus1, nil)
		if xkm1.Sign() == 0 {
			break
		}
		num := new(big.Int).Mul(kMinus1, x)
		quo := new(big.Int).Div(n, xkm1)
		num.Add(num, quo)
		next := new(big.Int).Div(num, kBig)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	return x
}

// DigitCountOfDigits returns the decimal digit count of d itself. The tower
// code (ExtendTower, CollapseOrExtendTower) does not call it.
func DigitCountOfDigits(d *big.Int) *big.Int {
	return big.NewInt(int64(DecimalDigitCount(d)))
}
