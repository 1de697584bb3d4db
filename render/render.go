// Package render formats resolved Calculations into a localized reply
// string, enforcing a total reply-size budget by downgrading through a fixed
// strategy ladder.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"factorionlib/locale"
	"factorionlib/numeric"
	"factorionlib/parser"
	"factorionlib/planner"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is what the renderer hands back to the pipeline: the reply body and
// whether every result fit (Fit=false means the caller should surface
// REPLY_WOULD_BE_TOO_LONG even though a "no_post" reply body is returned).
type Result struct {
	Reply string
	Fit   bool
}

// Render implements spec §4.4 end to end: template selection per Calculation,
// nested step composition, negation wrapping, the factorion educational note,
// and the four-strategy size-budget downgrade ladder.
func Render(calcs []planner.Calculation, loc locale.Locale, cmds parser.Commands, maxReplyLength int, notify string, consts *planner.Consts) Result {
	if len(calcs) == 0 {
		return Result{Reply: "", Fit: true}
	}

	forceScientific := cmds.Has(parser.Shorten)

	if body, ok := tryRender(calcs, calcs, loc, cmds, notify, forceScientific, consts); ok && len(body) <= maxReplyLength {
		return Result{Reply: body, Fit: true}
	}
	if body, ok := tryRender(calcs, calcs, loc, cmds, notify, true, consts); ok && len(body) <= maxReplyLength {
		return Result{Reply: body, Fit: true}
	}
	for keep := len(calcs) - 1; keep >= 1; keep-- {
		if body, ok := tryRender(calcs[:keep], calcs, loc, cmds, notify, true, consts); ok && len(body) <= maxReplyLength {
			return Result{Reply: body, Fit: true}
		}
	}
	return Result{Reply: noPostReply(loc, notify, len(calcs)), Fit: false}
}

func tryRender(shown, all []planner.Calculation, loc locale.Locale, cmds parser.Commands, notify string, forceScientific bool, consts *planner.Consts) (string, bool) {
	var sentences []string
	var anyApprox, anyDigits, anyTower, anyTetration, anyTooBig, anyRound bool
	var factorionHits []string

	for _, c := range shown {
		if c.Unevaluated {
			anyTooBig = true
			sentences = append(sentences, tooBigSentence(loc, c))
			continue
		}
		sentence := renderSentence(loc, c, cmds, forceScientific, consts.NumberDecimalsScientific)
		sentences = append(sentences, sentence)

		switch c.Result.Kind {
		case numeric.Approximate:
			anyApprox = true
		case numeric.Float:
			anyRound = true
		case numeric.ApproximateDigits:
			anyDigits = true
		case numeric.ApproximateDigitsTower:
			anyTower = true
		case numeric.Tetration:
			anyTetration = true
		}
		if c.Result.Kind == numeric.Exact && !c.Result.Negative && numeric.IsFactorion(c.Result.ExactVal) &&
			c.Result.ExactVal.Cmp(bigMillion) <= 0 {
			factorionHits = append(factorionHits, c.Result.ExactVal.String())
		}
	}

	removed := len(all) - len(shown)

	body := strings.Join(sentences, " ")
	if loc.Format.CapitalizeCalc && body != "" {
		body = capitalizeFirst(body)
	}

	var b strings.Builder
	if notify != "" {
		b.WriteString(replaceOnce(loc.Notes["mention"], "{mention}", notify))
	}
	b.WriteString(body)

	notes := buildNotes(loc, notesInput{
		approx: anyApprox, digits: anyDigits, tower: anyTower,
		tetration: anyTetration, tooBig: anyTooBig, round: anyRound,
		removed: removed, count: len(shown),
	})
	if notes != "" {
		b.WriteString("\n\n")
		b.WriteString(notes)
	}

	if !cmds.Has(parser.NoNote) {
		if len(factorionHits) > 0 {
			b.WriteString("\n\n")
			b.WriteString(factorionNote(factorionHits))
		}
		if loc.BotDisclaimer != "" {
			b.WriteString("\n\n")
			b.WriteString(loc.BotDisclaimer)
		}
	}

	return b.String(), true
}

func renderSentence(loc locale.Locale, c planner.Calculation, cmds parser.Commands, forceScientific bool, sciDigits int) string {
	tmpl := templateFor(loc, c.Result)
	name := composeSteps(loc, c.Steps)
	numberStr := formatNumber(c.Value, loc.Format.NumberFormat.Decimal, sciDigits, false)
	resultStr := formatNumber(c.Result, loc.Format.NumberFormat.Decimal, sciDigits, forceScientific)

	sentence := replaceOnce(tmpl, "{factorial}", name)
	sentence = replaceOnce(sentence, "{number}", numberStr)
	sentence = replaceOnce(sentence, "{result}", resultStr)

	if c.Result.Negative && loc.Format.Negative != "" {
		sentence = replaceOnce(loc.Format.Negative, "{0}", sentence)
	}

	if cmds.Has(parser.Steps) && len(c.Steps) > 1 {
		sentence += " (" + name + ")"
	}
	return sentence
}

func templateFor(loc locale.Locale, result numeric.Number) string {
	switch result.Kind {
	case numeric.Exact:
		return loc.Format.Exact
	case numeric.Float:
		return loc.Format.Rough
	case numeric.Approximate:
		return loc.Format.Approx
	case numeric.ApproximateDigits:
		return loc.Format.Digits
	case numeric.ApproximateDigitsTower:
		return loc.Format.Order
	case numeric.Tetration:
		return loc.Format.AllThat
	default:
		return loc.Format.Exact
	}
}

func tooBigSentence(loc locale.Locale, c planner.Calculation) string {
	name := composeSteps(loc, c.Steps)
	if c.Literal != "" {
		return fmt.Sprintf("%s of %s: too big to compute", name, c.Literal)
	}
	return fmt.Sprintf("%s of %s: too big to compute", name, formatNumber(c.Value, loc.Format.NumberFormat.Decimal, 0, false))
}

func factorionNote(values []string) string {
	return fmt.Sprintf("Fun fact: %s is a factorion — the sum of the factorials of its digits equals itself. Only four exist: 1, 2, 145, and 40585.", strings.Join(values, ", "))
}

var titleCaser = cases.Title(language.Und)

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	first := titleCaser.String(s[:size])
	return first + s[size:]
}
