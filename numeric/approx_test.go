package numeric

import (
	"math/big"
	"testing"
)

func TestDigitsFactorialMatchesKnownValue(t *testing.T) {
	// 100! has exactly 158 decimal digits.
	got := DigitsFactorial(big.NewInt(100), 256)
	if got.Int64() != 158 {
		t.Fatalf("DigitsFactorial(100) = %s, want 158", got.String())
	}
}

func TestApproximateFactorialMantissaRange(t *testing.T) {
	result := ApproximateFactorial(big.NewInt(1000), 256)
	if result.Mantissa < 1 || result.Mantissa >= 10 {
		t.Fatalf("mantissa out of range: %v", result.Mantissa)
	}
	if result.Exponent.Sign() <= 0 {
		t.Fatalf("expected positive exponent for 1000!, got %s", result.Exponent.String())
	}
}

func TestCollapseApproximate(t *testing.T) {
	n := NewApproximate(9.33, big.NewInt(157))
	collapsed := n.CollapseApproximate()
	if collapsed.Kind != ApproximateDigits {
		t.Fatalf("expected ApproximateDigits, got %v", collapsed.Kind)
	}
	if collapsed.Digits.Int64() != 158 {
		t.Fatalf("expected 158 digits, got %s", collapsed.Digits.String())
	}
}

func TestBigIntKthRoot(t *testing.T) {
	tests := []struct {
		n, k, want int64
	}{
		{27, 3, 3},
		{1000, 3, 10},
		{1024, 10, 2},
		{0, 2, 0},
	}
	for _, tt := range tests {
		got := bigIntKthRoot(big.NewInt(tt.n), tt.k)
		if got.Int64() != tt.want {
			t.Fatalf("bigIntKthRoot(%d,%d) = %s, want %d", tt.n, tt.k, got.String(), tt.want)
		}
	}
}
