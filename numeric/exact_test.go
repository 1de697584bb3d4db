package numeric

import (
	"math/big"
	"testing"
)

func TestExactFactorial(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "1"},
		{"one", 1, "1"},
		{"three", 3, "6"},
		{"five", 5, "120"},
		{"ten", 10, "3628800"},
		{"twenty", 20, "2432902008176640000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExactFactorial(tt.n).String()
			if got != tt.want {
				t.Fatalf("ExactFactorial(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestExactMultifactorial(t *testing.T) {
	tests := []struct {
		name string
		n, k int64
		want string
	}{
		{"9 double", 9, 2, "945"},      // 9*7*5*3*1
		{"8 double", 8, 2, "384"},      // 8*6*4*2
		{"10 triple", 10, 3, "280"},    // 10*7*4*1
		{"6 single", 6, 1, "720"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExactMultifactorial(tt.n, tt.k).String()
			if got != tt.want {
				t.Fatalf("ExactMultifactorial(%d,%d) = %s, want %s", tt.n, tt.k, got, tt.want)
			}
		})
	}
}

func TestExactTermial(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{5, "15"},
		{10, "55"},
		{15, "120"},
	}
	for _, tt := range tests {
		got := ExactTermial(big.NewInt(tt.n)).String()
		if got != tt.want {
			t.Fatalf("ExactTermial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestExactMultiTermial(t *testing.T) {
	// 2-termial of 10: 10+8+6+4+2 = 30
	got := ExactMultiTermial(10, 2).String()
	if got != "30" {
		t.Fatalf("ExactMultiTermial(10,2) = %s, want 30", got)
	}
	// k=1 reduces to the ordinary termial.
	got = ExactMultiTermial(10, 1).String()
	if got != "55" {
		t.Fatalf("ExactMultiTermial(10,1) = %s, want 55", got)
	}
}

func TestExactSubfactorial(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "1"},
		{1, "0"},
		{2, "1"},
		{3, "2"},
		{4, "9"},
		{5, "44"},
	}
	for _, tt := range tests {
		got := ExactSubfactorial(tt.n).String()
		if got != tt.want {
			t.Fatalf("ExactSubfactorial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestIsFactorion(t *testing.T) {
	for n := int64(0); n <= 50000; n++ {
		want := n == 1 || n == 2 || n == 145 || n == 40585
		got := IsFactorion(big.NewInt(n))
		if got != want {
			t.Fatalf("IsFactorion(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestDecimalDigitCount(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
	}
	for _, tt := range tests {
		got := DecimalDigitCount(big.NewInt(tt.n))
		if got != tt.want {
			t.Fatalf("DecimalDigitCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
