package pipeline

import (
	"context"
	"log/slog"

	"factorionlib/locale"
	"factorionlib/parser"
	"factorionlib/planner"
	"factorionlib/render"
)

// Options bundles the run-time knobs a pipeline invocation needs beyond the
// per-Comment fields: whether this channel/subreddit has termial recognition
// enabled, and the shared read-only Consts (spec §5's "no process-wide
// mutable state" — Options and Consts are built once by the caller and passed
// through every call).
type Options struct {
	TermialEnabled bool
	Consts         *planner.Consts
}

// Extract runs the Parser (spec §4.5 phase 2). A Comment already short-
// circuited at Construct passes through untouched.
func Extract[M any](c Constructed[M], opts Options) Extracted[M] {
	if c.Status != FactorialsFound {
		return Extracted[M]{Constructed: c}
	}

	cleanedCommands, cleanedText := parser.ExtractCommands(c.Text, c.Commands)
	c.Commands = cleanedCommands
	c.Text = cleanedText

	if cleanedCommands.Has(parser.DontCheck) {
		slog.Debug("pipeline: dont_check command set, skipping processing")
		c.Status = NotAFactorial
		return Extracted[M]{Constructed: c}
	}

	loc, ok := lookupLocale(opts.Consts, c.LocaleKey)
	if !ok {
		slog.Warn("pipeline: locale not found", "locale_key", c.LocaleKey)
		c.Status = Error
		c.ErrorKind = "locale"
		return Extracted[M]{Constructed: c}
	}
	decimalChar := loc.Format.NumberFormat.Decimal
	if decimalChar == "" {
		decimalChar = "."
	}

	termialEnabled := opts.TermialEnabled || cleanedCommands.Has(parser.Termial)
	jobs := parser.Parse(c.Text, termialEnabled, decimalChar, opts.Consts.IntegerConstructionLimit)
	if len(jobs) == 0 {
		slog.Debug("pipeline: no calculation jobs found", "locale", c.LocaleKey)
		c.Status = NoFactorial
	}
	return Extracted[M]{Constructed: c, Jobs: jobs}
}

// Calculate runs the Planner (spec §4.5 phase 3). Every job runs even if some
// come back unevaluated; the status only escalates to NumberTooBigToCalculate
// once none of them produced a usable result.
func Calculate[M any](ctx context.Context, e Extracted[M], opts Options) Calculated[M] {
	if e.Status != FactorialsFound {
		return Calculated[M]{Extracted: e}
	}

	calcs, err := planner.ExecuteAll(ctx, e.Jobs, opts.Consts)
	if err != nil {
		slog.Warn("pipeline: planner execution failed", "err", err)
		e.Status = Error
		return Calculated[M]{Extracted: e}
	}

	allUnevaluated := len(calcs) > 0
	for _, c := range calcs {
		if c.Unevaluated {
			slog.Debug("pipeline: job left unevaluated", "reason", c.UnevaluatedReason)
		} else {
			allUnevaluated = false
		}
	}
	if allUnevaluated {
		e.Status = NumberTooBigToCalculate
	}

	return Calculated[M]{Extracted: e, Calculations: calcs}
}

// Render runs the Renderer (spec §4.5 phase 4), applying the size-budget
// downgrade ladder and folding a Fit=false result into ReplyWouldBeTooLong.
func Render[M any](c Calculated[M], opts Options) Rendered[M] {
	if c.Status != FactorialsFound && c.Status != NumberTooBigToCalculate {
		return Rendered[M]{Calculated: c}
	}

	loc, ok := lookupLocale(opts.Consts, c.LocaleKey)
	if !ok {
		slog.Warn("pipeline: locale not found", "locale_key", c.LocaleKey)
		c.Status = Error
		c.ErrorKind = "locale"
		return Rendered[M]{Calculated: c}
	}
	result := render.Render(c.Calculations, loc, c.Commands, c.MaxReplyLength, c.Notify, opts.Consts)
	if !result.Fit {
		slog.Debug("pipeline: reply exceeded max_reply_length even at the no_post fallback", "locale", c.LocaleKey)
		c.Status = ReplyWouldBeTooLong
	}
	return Rendered[M]{Calculated: c, Reply: result.Reply}
}

// Process is the one-shot convenience entry point spec §6 describes:
// process(text, metadata, commands, max_reply_length, locale_key) ->
// (status, reply, metadata). errorKind carries spec §4.5's ERROR(kind)
// payload when status is Error; it is empty for every other status.
func Process[M any](ctx context.Context, text string, metadata M, commands parser.Commands, maxReplyLength int, localeKey, notify string, opts Options) (status Status, reply string, meta M, errorKind string) {
	constructed := Construct(text, metadata, commands, maxReplyLength, localeKey, notify)
	extracted := Extract(constructed, opts)
	calculated := Calculate(ctx, extracted, opts)
	rendered := Render(calculated, opts)
	return rendered.Status, rendered.Reply, rendered.Metadata, rendered.ErrorKind
}

// lookupLocale looks up localeKey in the shared store with no fallback: spec
// §7 treats "locale not found / version unsupported" as genuinely
// exceptional — ERROR(locale), no partial reply — rather than something to
// paper over with a substitute locale.
func lookupLocale(consts *planner.Consts, localeKey string) (locale.Locale, bool) {
	if consts == nil || consts.Locales == nil {
		return locale.Locale{}, false
	}
	return consts.Locales.Get(localeKey)
}
