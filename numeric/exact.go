package numeric

import "math/big"

// productAP computes the product of count terms of an arithmetic progression
// starting at a with common difference step, via balanced divide-and-conquer
// multiplication: the same recursive halving used by fast factorial algorithms,
// grounded in the legacy multifactorial_recursive routine this engine replaces.
// Balancing keeps the big.Int operands roughly equal in bit length, which is
// what makes repeated multiplication fast for large counts.
func productAP(a, step *big.Int, count int64) *big.Int {
	if count <= 0 {
		return big.NewInt(1)
	}
	if count == 1 {
		return new(big.Int).Set(a)
	}
	left := count / 2
	leftProd := productAP(a, step, left)
	mid := new(big.Int).Add(a, new(big.Int).Mul(step, big.NewInt(left)))
	rightProd := productAP(mid, step, count-left)
	return new(big.Int).Mul(leftProd, rightProd)
}

// ExactFactorial computes n! for n >= 0 fitting in an int64. Callers are
// expected to have already checked n against Consts.UpperCalculationLimit.
func ExactFactorial(n int64) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return productAP(big.NewInt(1), big.NewInt(1), n)
}

// ExactMultifactorial computes n!_k, the product of n, n-k, n-2k, ... down to
// the last positive term, for n >= 0, k >= 1.
func ExactMultifactorial(n int64, k int64) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	if k <= 0 {
		k = 1
	}
	count := (n-1)/k + 1
	last := n - (count-1)*k
	return productAP(big.NewInt(last), big.NewInt(k), count)
}

// ExactTermial computes n(n+1)/2 for n >= 0.
func ExactTermial(n *big.Int) *big.Int {
	np1 := new(big.Int).Add(n, big.NewInt(1))
	prod := new(big.Int).Mul(n, np1)
	return prod.Rsh(prod, 1)
}

// ExactMultiTermial computes the k-termial of n: the sum n + (n-k) + (n-2k) +
// ... down to the last positive term, the analog of multifactorial for
// termials via the closed-form arithmetic-series sum rather than a loop.
func ExactMultiTermial(n int64, k int64) *big.Int {
	if n <= 0 {
		return big.NewInt(0)
	}
	if k <= 0 {
		k = 1
	}
	count := (n-1)/k + 1
	last := n - (count-1)*k
	total := new(big.Int).Mul(big.NewInt(count), big.NewInt(n+last))
	return total.Rsh(total, 1)
}

// ExactSubfactorial computes the derangement count !n via the recurrence
// !0 = 1, !n = n*!(n-1) + (-1)^n, for n >= 0 fitting in an int64.
func ExactSubfactorial(n int64) *big.Int {
	prev := big.NewInt(1) // !0
	if n == 0 {
		return prev
	}
	result := new(big.Int)
	sign := big.NewInt(-1)
	for i := int64(1); i <= n; i++ {
		result.Mul(big.NewInt(i), prev)
		if i%2 == 0 {
			result.Add(result, big.NewInt(1))
		} else {
			result.Add(result, sign)
		}
		prev.Set(result)
	}
	return prev
}
