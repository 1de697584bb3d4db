package planner

import "factorionlib/numeric"

// Base is either a numeric literal or a nested CalculationJob (spec §3's
// "base which is either a Number literal or another CalculationJob").
type Base struct {
	IsNumber bool
	Value    numeric.Number
	Job      *CalculationJob

	// TooBig marks a literal base whose decimal magnitude exceeded the
	// configured IntegerConstructionLimit before a Number was ever built for
	// it; Literal carries the raw source text for display, since Value is
	// left at its zero value rather than paying for the construction.
	TooBig  bool
	Literal string
}

// NumberBase wraps a literal Number as a Base.
func NumberBase(n numeric.Number) Base { return Base{IsNumber: true, Value: n} }

// NestedBase wraps a nested CalculationJob as a Base.
func NestedBase(job *CalculationJob) Base { return Base{IsNumber: false, Job: job} }

// TooBigBase wraps a literal that was rejected at parse time for exceeding
// IntegerConstructionLimit, per spec §4.1's "too big to parse" ceiling.
func TooBigBase(literal string) Base { return Base{IsNumber: true, TooBig: true, Literal: literal} }

// CalculationJob is an unresolved expression awaiting the planner.
//
// Level follows the original project's signed encoding so a single field can
// distinguish termial (0), k-factorial (k >= 1, with 1 meaning plain
// factorial) and k-termial (encoded as -k, k >= 2) — but, per the spec's
// explicit resolution of its own open question, subfactorial is its own
// boolean tag rather than folded into Level, so Level stays meaningful (0)
// for plain termial even when IsSubfactorial is set on a different job in the
// same chain. A plain termial is always Level==0, IsSubfactorial==false;
// k-termial never uses Level==-1 (that would just be a termial and is always
// written as Level==0 instead).
type CalculationJob struct {
	Base           Base
	Level          int
	IsSubfactorial bool
	NegativeDepth  int
}

// IsTermialFamily reports whether this job is a termial or k-termial.
func (j CalculationJob) IsTermialFamily() bool {
	return !j.IsSubfactorial && j.Level <= 0
}

// MultifactorialDegree returns k for a k-factorial job (1 for plain
// factorial); only meaningful when !IsSubfactorial && Level >= 1.
func (j CalculationJob) MultifactorialDegree() int64 { return int64(j.Level) }

// MultiTermialDegree returns k for a k-termial job (2 for the first non-plain
// degree since Level==-1 is never used); only meaningful when
// j.IsTermialFamily() && j.Level < 0.
func (j CalculationJob) MultiTermialDegree() int64 { return int64(-j.Level) }

// Step records one applied operation in a Calculation's nesting chain,
// innermost first — the boolean-subfactorial tuple form the spec's open
// question mandates.
type Step struct {
	Level          int
	IsSubfactorial bool
}

// Calculation is a resolved expression: the innermost literal, the ordered
// steps applied to it, and the final Number in whatever regime the engine
// settled on.
type Calculation struct {
	Value  numeric.Number
	Steps  []Step
	Result numeric.Number

	// Unevaluated is set when a step could not be computed at all (input too
	// large to construct, or an unsupported non-integer domain) — spec §7's
	// "emit the calculation verbatim with a too-big-to-compute marker; other
	// calculations proceed" policy. Result is the last Number that *was*
	// computed (possibly just Value itself) when this is set.
	Unevaluated       bool
	UnevaluatedReason string

	// Literal holds the raw source text of a literal that exceeded
	// IntegerConstructionLimit, so the renderer has something to show in
	// place of Value, which was never constructed. Empty for every other
	// Unevaluated cause.
	Literal string
}
