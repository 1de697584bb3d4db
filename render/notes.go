package render

import (
	"fmt"
	"math/big"

	"factorionlib/locale"
)

var bigMillion = big.NewInt(1_000_000)

// notesInput aggregates the per-reply flags that decide which trailing notes
// a rendered batch needs, mirroring the original project's note-aggregation
// pass over the whole comment rather than per-result.
type notesInput struct {
	approx, digits, tower, tetration, tooBig, round bool
	removed, count                                  int
}

// buildNotes assembles the locale's explanatory notes for one rendered
// batch, singular/plural picked by count, joined on their own lines. Notes
// are additive and independent: a reply can need several at once (e.g. a
// rounded value and a dropped-entries note together).
func buildNotes(loc locale.Locale, in notesInput) string {
	var lines []string
	add := func(key string) {
		if note, ok := loc.Notes[key]; ok && note != "" {
			lines = append(lines, note)
		}
	}
	addSingularOrPlural := func(single, plural string) {
		if in.count > 1 {
			add(plural)
		} else {
			add(single)
		}
	}

	if in.round {
		addSingularOrPlural("round", "round_mult")
	}
	if in.approx {
		addSingularOrPlural("approx", "approx_mult")
	}
	if in.digits {
		addSingularOrPlural("digits", "digits_mult")
	}
	if in.tower {
		addSingularOrPlural("tower", "tower_mult")
	}
	if in.tetration {
		add("tetration")
	}
	if in.tooBig {
		addSingularOrPlural("too_big", "too_big_mult")
	}
	if in.removed > 0 {
		note := loc.Notes["remove"]
		lines = append(lines, replaceOnce(note, "{0}", fmt.Sprintf("%d", in.removed)))
	}

	joined := ""
	for i, l := range lines {
		if i > 0 {
			joined += "\n"
		}
		joined += l
	}
	return joined
}

// noPostReply is strategy 4 of the size-budget ladder: every entry dropped,
// only the locale's "I'd rather not even try" note survives. The count is
// written into the note's "{0}" placeholder; a note without one (none of the
// shipped locales has it) is returned unchanged.
func noPostReply(loc locale.Locale, notify string, count int) string {
	note := loc.Notes["no_post"]
	body := replaceOnce(note, "{0}", fmt.Sprintf("%d", count))
	if notify == "" {
		return body
	}
	return replaceOnce(loc.Notes["mention"], "{mention}", notify) + body
}
