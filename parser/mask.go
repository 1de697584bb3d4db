package parser

import "regexp"

// inertPatterns match the markdown/text regions spec §4.1 calls "inert":
// fenced code blocks, inline code spans, links/autolinks/bare URLs, image
// references and spoiler markers. A masked region contributes no candidate
// tokens and does not let candidates join across its boundary.
var inertPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```.*?```"),
	regexp.MustCompile("`[^`\n]*`"),
	regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`),  // image reference
	regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`),   // markdown link
	regexp.MustCompile(`<https?://[^>]*>`),      // autolink
	regexp.MustCompile(`https?://\S+`),          // bare URL
	regexp.MustCompile(`>!.*?!<`),               // spoiler
}

// maskInertRegions replaces every inert region with spaces of identical byte
// length, so every surviving byte offset in the returned string still lines
// up with the original text (needed so later position-based overlap
// resolution stays simple) while none of its content can be mistaken for a
// calculation candidate.
func maskInertRegions(text string) string {
	masked := []byte(text)
	for _, re := range inertPatterns {
		for _, loc := range re.FindAllStringIndex(string(masked), -1) {
			for i := loc[0]; i < loc[1]; i++ {
				if masked[i] != '\n' {
					masked[i] = ' '
				}
			}
		}
	}
	return string(masked)
}

// MightContainCalculation is the cheap early-reject predicate spec §4.5's
// Constructed phase runs before any heavy work: if neither '!' nor '?'
// survives masking, there is nothing to parse.
func MightContainCalculation(text string) bool {
	masked := maskInertRegions(text)
	for _, r := range masked {
		if r == '!' || r == '?' {
			return true
		}
	}
	return false
}
