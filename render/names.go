package render

import (
	"fmt"

	"factorionlib/locale"
	"factorionlib/planner"
)

// latinSingles/latinTens are the Latin-numeral-prefix multiplicity tables
// used to name k-factorial/k-termial degrees beyond whatever small set a
// locale's num_overrides map spells out by hand (spec §12's supplemented
// Latin-prefix naming, grounded in the original project's
// get_factorial_level_string SINGLES/TENS tables).
var latinSingles = []string{"", "un", "duo", "tre", "quattuor", "quin", "sex", "septen", "octo", "novem"}
var latinTens = []string{"", "dec", "vigint", "trigint", "quadragint", "quinquagint", "sexagint", "septuagint", "octogint", "nonagint"}

// latinMultiplicityName spells out the k-factorial/k-termial degree name for
// k >= 2 using Latin numeral prefixes (e.g. 23 -> "trevigintuple"), falling
// back to the plain numeric form for k outside the table's range.
func latinMultiplicityName(k int) string {
	if k < 2 || k >= 100 {
		return fmt.Sprintf("%d", k)
	}
	tens := k / 10
	ones := k % 10
	if tens == 0 {
		return latinSingles[ones] + "uple"
	}
	if ones == 0 {
		return latinTens[tens] + "uple"
	}
	return latinSingles[ones] + latinTens[tens] + "uple"
}

// degreeName resolves the human name for a non-subfactorial, non-plain step:
// the locale's num_overrides map wins when it has an explicit entry (e.g.
// English keeps "double"/"triple" instead of the Latin-derived form), else
// latinMultiplicityName fills the template's "{0}" placeholder.
func degreeName(loc locale.Locale, k int) string {
	key := fmt.Sprintf("%d", k)
	if override, ok := loc.Format.NumOverrides[key]; ok {
		return override
	}
	return latinMultiplicityName(k)
}

// operationName renders the name of one applied Step, e.g. "factorial",
// "double-factorial" (the locale's uple template filled with the degree
// name), "subfactorial", "termial", "triple termial".
func operationName(loc locale.Locale, step planner.Step) string {
	if step.IsSubfactorial {
		return loc.Format.Sub
	}
	if step.Level <= 0 {
		if step.Level == 0 {
			return loc.Format.Termial
		}
		k := -step.Level
		return degreeName(loc, k) + " " + loc.Format.Termial
	}
	if step.Level == 1 {
		return loc.Format.Factorial
	}
	return replaceOnce(loc.Format.Uple, "{0}", degreeName(loc, step.Level))
}

// composeSteps builds the full nested operation name from innermost to
// outermost, using the locale's "nest" template to wrap each additional
// level, e.g. steps [(1,false),(0,false)] -> "termial of factorial".
func composeSteps(loc locale.Locale, steps []planner.Step) string {
	if len(steps) == 0 {
		return ""
	}
	name := operationName(loc, steps[0])
	for _, step := range steps[1:] {
		outer := operationName(loc, step)
		if loc.Format.Nest != "" {
			name = replaceOnce(replaceOnce(loc.Format.Nest, "{factorial}", outer), "{next}", name)
		} else {
			name = outer + " of " + name
		}
	}
	return name
}
