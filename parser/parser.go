// Package parser locates factorial-like expressions in free-form text,
// skipping inert markdown regions, and turns them into planner.CalculationJob
// values in source order.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"factorionlib/numeric"
	"factorionlib/planner"
)

var (
	numberLiteral = `-*\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`
	reNested      = regexp.MustCompile(`\(([^()]*)\)(!+)(\??)`)
	rePrefixSub   = regexp.MustCompile(`!(` + numberLiteral + `)(!*)(\??)`)
	rePostfix     = regexp.MustCompile(`(` + numberLiteral + `)(!+)(\??)`)
	reLoneTermial = regexp.MustCompile(`(` + numberLiteral + `)(\?)`)
)

// span is a half-open byte range, used to track which parts of the text a
// higher-priority match has already claimed so overlapping candidates
// resolve longest-match-then-innermost-match, per spec §4.1.
type span struct{ start, end int }

func (s span) overlaps(o span) bool { return s.start < o.end && o.start < s.end }

// match bundles a recognized job with the span it consumed, so the caller can
// restore source order across the several pattern families.
type match struct {
	sp  span
	job *planner.CalculationJob
}

// Parse scans text for calculation candidates and returns them in source
// order. termialEnabled gates recognition of '?' termials, both a bare "n?"
// and a '?' trailing a bang run, per the TERMIAL command flag. decimalChar is
// the active locale's decimal separator; literals are normalized to '.' for
// parsing regardless of which character the author used.
// integerConstructionLimit is spec §4.1's decimal-exponent ceiling: a literal
// past it never gets a Number built for it at all, surfacing instead as an
// Unevaluated "too big to parse" Calculation once the planner runs its job.
func Parse(text string, termialEnabled bool, decimalChar string, integerConstructionLimit int64) []*planner.CalculationJob {
	masked := maskInertRegions(text)
	if decimalChar != "" && decimalChar != "." {
		masked = strings.ReplaceAll(masked, decimalChar, ".")
	}

	var matches []match
	var claimed []span

	claim := func(sp span) bool {
		for _, c := range claimed {
			if sp.overlaps(c) {
				return false
			}
		}
		claimed = append(claimed, sp)
		return true
	}

	// Parenthesized nesting takes priority: "(expr)!..." where expr itself
	// re-parses as exactly one calculation.
	for _, loc := range reNested.FindAllStringSubmatchIndex(masked, -1) {
		sp := span{loc[0], loc[1]}
		inner := masked[loc[2]:loc[3]]
		bangRun := masked[loc[4]:loc[5]]
		trailingQ := loc[6] >= 0 && loc[7] > loc[6]

		innerJobs := Parse(inner, termialEnabled, ".", integerConstructionLimit)
		if len(innerJobs) != 1 {
			continue
		}
		if !claim(sp) {
			continue
		}
		outer := buildPostfixJob(planner.NestedBase(innerJobs[0]), 0, bangRun, trailingQ, termialEnabled)
		if outer != nil {
			matches = append(matches, match{sp, outer})
		}
	}

	// Prefix subfactorial: a single leading '!' immediately before a literal,
	// optionally composed with a postfix bang run (so "!5!" nests).
	for _, loc := range rePrefixSub.FindAllStringSubmatchIndex(masked, -1) {
		sp := span{loc[0], loc[1]}
		if !claim(sp) {
			continue
		}
		litText := masked[loc[2]:loc[3]]
		bangRun := masked[loc[4]:loc[5]]
		trailingQ := loc[6] >= 0 && loc[7] > loc[6]

		base, negDepth, ok := parseLiteral(litText, integerConstructionLimit)
		if !ok {
			continue
		}
		sub := &planner.CalculationJob{
			Base:           base,
			IsSubfactorial: true,
			NegativeDepth:  negDepth,
		}
		if bangRun == "" {
			matches = append(matches, match{sp, sub})
			continue
		}
		outer := buildPostfixJob(planner.NestedBase(sub), 0, bangRun, trailingQ, termialEnabled)
		if outer != nil {
			matches = append(matches, match{sp, outer})
		}
	}

	// Postfix factorial/multifactorial, optionally promoted to k-termial by a
	// trailing '?'.
	for _, loc := range rePostfix.FindAllStringSubmatchIndex(masked, -1) {
		sp := span{loc[0], loc[1]}
		if !claim(sp) {
			continue
		}
		litText := masked[loc[2]:loc[3]]
		bangRun := masked[loc[4]:loc[5]]
		trailingQ := loc[6] >= 0 && loc[7] > loc[6]

		base, negDepth, ok := parseLiteral(litText, integerConstructionLimit)
		if !ok {
			continue
		}
		job := buildPostfixJob(base, negDepth, bangRun, trailingQ, termialEnabled)
		if job != nil {
			matches = append(matches, match{sp, job})
		}
	}

	// Lone '?' with no '!' run at all: plain termial, gated by termialEnabled.
	if termialEnabled {
		for _, loc := range reLoneTermial.FindAllStringSubmatchIndex(masked, -1) {
			sp := span{loc[0], loc[1]}
			if !claim(sp) {
				continue
			}
			litText := masked[loc[2]:loc[3]]
			base, negDepth, ok := parseLiteral(litText, integerConstructionLimit)
			if !ok {
				continue
			}
			matches = append(matches, match{sp, &planner.CalculationJob{
				Base:          base,
				Level:         0,
				NegativeDepth: negDepth,
			}})
		}
	}

	// Restore source order.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].sp.start < matches[j-1].sp.start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	jobs := make([]*planner.CalculationJob, len(matches))
	for i, m := range matches {
		jobs[i] = m.job
	}
	return jobs
}

// buildPostfixJob turns a bang run (and optional trailing '?') applied to
// base into a CalculationJob: level = len(bangRun) for plain k-factorial.
//
// A trailing '?' always means "apply plain termial to whatever precedes it",
// including the result of the bang run just recognized, rather than
// promoting the run itself to a k-termial: "5!?" is termial(factorial(5)) =
// 7260, a two-step nesting, matching the worked example in spec §8. (A
// literal reading of "a trailing ? on the run promotes it to k-termial" would
// instead parse "5!?" as a one-step k-termial(k=1) of 5 — degenerate, since
// k=1 is just termial(5) = 15 — and contradicts that worked example, so this
// implementation follows the example.) Raw-text k-termial notation is
// otherwise unreached by the parser; the numeric engine and planner still
// implement it fully for callers that build a CalculationJob directly.
func buildPostfixJob(base planner.Base, negDepth int, bangRun string, trailingQ bool, termialEnabled bool) *planner.CalculationJob {
	level := len(bangRun)
	if level == 0 {
		return nil
	}
	inner := &planner.CalculationJob{Base: base, Level: level, NegativeDepth: negDepth}
	if trailingQ && termialEnabled {
		return &planner.CalculationJob{Base: planner.NestedBase(inner), Level: 0}
	}
	return inner
}

// parseLiteral parses a signed numeric literal into a Base and the count of
// leading minus signs (negative_depth), per spec §4.1's numeric literal
// grammar: optional sign folded into negative_depth, digit run, optional
// decimal part, optional scientific-notation exponent. A literal whose
// magnitude exceeds limit never reaches big.Int/big.Float construction at
// all — it comes back as a TooBigBase instead, matching §4.1's "too big to
// parse" ceiling.
func parseLiteral(text string, limit int64) (planner.Base, int, bool) {
	negDepth := 0
	i := 0
	for i < len(text) && text[i] == '-' {
		negDepth++
		i++
	}
	rest := text[i:]
	if rest == "" {
		return planner.Base{}, 0, false
	}
	if exceedsConstructionLimit(rest, limit) {
		return planner.TooBigBase(rest), negDepth, true
	}
	if strings.ContainsAny(rest, ".eE") {
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return planner.Base{}, 0, false
		}
		bf := bigFloatFromFloat64(f)
		return planner.NumberBase(numeric.NewFloat(bf)), negDepth, true
	}
	n, ok := bigIntFromDecimalString(rest)
	if !ok {
		return planner.Base{}, 0, false
	}
	return planner.NumberBase(numeric.NewExact(n)), negDepth, true
}
