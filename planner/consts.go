// Package planner turns a tree of CalculationJobs into resolved Calculations,
// dispatching each operator application to the numeric engine and falling
// back between regimes as the configured limits are exceeded.
package planner

import "factorionlib/locale"

// Consts is the read-only configuration shared by every pipeline stage: no
// process-wide mutable state, matching spec §5's "Consts is initialized once
// and thereafter read-only" concurrency contract. Build one with
// DefaultConsts and never mutate it after first use.
type Consts struct {
	// FloatPrecision is the bit precision used for every Float-regime result.
	FloatPrecision uint

	// UpperCalculationLimit bounds n for exact factorial/multifactorial.
	UpperCalculationLimit int64
	// UpperSubfactorialLimit bounds n for exact subfactorial (the recurrence
	// is O(n) big.Int multiplications, so this is usually tighter than
	// UpperCalculationLimit).
	UpperSubfactorialLimit int64
	// UpperTermialLimit bounds n for exact termial; termial is a single
	// multiplication regardless of n's magnitude, so this can be far larger
	// than UpperCalculationLimit.
	UpperTermialLimit int64

	// UpperApproximationLimit bounds n for the Stirling-based Approximate
	// regime (beyond it, only the digit-count formula is evaluated).
	UpperApproximationLimit int64
	// UpperTermialApproximationLimit is termial's equivalent of
	// UpperApproximationLimit: it bounds n itself for the termial family's
	// Approximate regime (beyond it, only the digit-count formula is
	// evaluated).
	UpperTermialApproximationLimit int64

	// MaxExponentDigits is the threshold (§3's Number invariant) past which an
	// Approximate value's exponent collapses to ApproximateDigits.
	MaxExponentDigits int

	// MaxTowerHeight bounds how many levels an ApproximateDigitsTower may
	// grow to before collapsing to Tetration.
	MaxTowerHeight int

	// IntegerConstructionLimit is the decimal-exponent ceiling past which a
	// parsed numeric literal is rejected as "too big to parse" (spec §4.1).
	IntegerConstructionLimit int64

	// NumberDecimalsScientific is how many mantissa digits the renderer shows
	// in scientific notation.
	NumberDecimalsScientific int

	// ParallelJobs enables executing independent sibling CalculationJobs
	// concurrently via golang.org/x/sync/errgroup (see ExecuteAll).
	ParallelJobs bool

	// Locales is the read-only locale store consulted by the renderer.
	Locales *locale.Store
}

// DefaultConsts returns sane limits matching the original bot's defaults,
// scaled down where the original relied on a GMP-backed arbitrary-precision
// float library this module doesn't have: FloatPrecision is generous enough
// for a "rough" display but not intended to be astronomically large.
func DefaultConsts(store *locale.Store) *Consts {
	return &Consts{
		FloatPrecision:                  256,
		UpperCalculationLimit:           100_000,
		UpperSubfactorialLimit:          100_000,
		UpperTermialLimit:               1_000_000_000,
		UpperApproximationLimit:         1_000_000_000_000,
		UpperTermialApproximationLimit:  1_000_000_000_000,
		MaxExponentDigits:               1_000,
		MaxTowerHeight:                  4,
		IntegerConstructionLimit:        1_000_000,
		NumberDecimalsScientific:        5,
		ParallelJobs:                    false,
		Locales:                         store,
	}
}
