// Package pipeline orchestrates the parser, planner and renderer behind the
// four-phase type-state Comment lifecycle spec §4.5 describes:
// Constructed -> Extracted -> Calculated -> Rendered. Each phase is its own
// generic type carrying only the fields valid at that point, parameterized by
// caller-supplied opaque metadata M (e.g. a Reddit comment id) that rides
// through untouched.
package pipeline

import (
	"factorionlib/parser"
	"factorionlib/planner"
)

// Constructed is the entry phase: raw input plus the outcome of the cheap
// "might this contain a calculation at all" early-reject.
type Constructed[M any] struct {
	Text           string
	Metadata       M
	Commands       parser.Commands
	MaxReplyLength int
	LocaleKey      string
	Notify         string
	Status         Status

	// ErrorKind carries spec §4.5's ERROR(kind) payload when Status is Error;
	// empty for every other status. "locale" is the only kind produced today,
	// for an unregistered or unsupported locale_key.
	ErrorKind string
}

// Construct builds a Comment from raw input and runs the early-reject: if the
// caller's default commands already carry DontCheck, or no '!' or '?'
// survives inert-region masking, Status is set to NotAFactorial and every
// later phase becomes a no-op pass-through. Spec §6's DONT_CHECK command
// "skips processing entirely (early return with NOT_A_FACTORIAL)"; this
// only covers a channel-level default, since the inline `!dont calculate`/
// `[dont calculate]` token isn't visible until Extract strips it from text.
func Construct[M any](text string, metadata M, commands parser.Commands, maxReplyLength int, localeKey, notify string) Constructed[M] {
	status := FactorialsFound
	switch {
	case commands.Has(parser.DontCheck):
		status = NotAFactorial
	case !parser.MightContainCalculation(text):
		status = NotAFactorial
	}
	return Constructed[M]{
		Text:           text,
		Metadata:       metadata,
		Commands:       commands,
		MaxReplyLength: maxReplyLength,
		LocaleKey:      localeKey,
		Notify:         notify,
		Status:         status,
	}
}

// Extracted adds the Parser's output: an ordered list of unresolved jobs.
type Extracted[M any] struct {
	Constructed[M]
	Jobs []*planner.CalculationJob
}

// Calculated adds the Planner's output: resolved Calculations in source
// order, one per top-level job.
type Calculated[M any] struct {
	Extracted[M]
	Calculations []planner.Calculation
}

// Rendered is the terminal phase: the final reply body alongside the status
// that resulted from every upstream stage.
type Rendered[M any] struct {
	Calculated[M]
	Reply string
}
