// punctuation.go implements the punctuation category: standalone ampersands
// become "and", and runs of spaces collapse to one.
package rules

import "regexp"

func punctuationRules() []Rule {
	return []Rule{
		{
			Name:     "no_ampersands",
			Category: CategoryPunctuation,
			Scope:    ScopeCopy,
			Find:     findAmpersands,
		},
		{
			Name:     "single_spaces",
			Category: CategoryPunctuation,
			Scope:    ScopeCopy,
			Find:     findDoubleSpaces,
		},
	}
}

// findAmpersands matches "&" standing alone between words. Ampersands glued
// to word characters (AT&T, R&D) are never standalone; brand tokens with
// spaced ampersands are protected through the exclusion set instead.
func findAmpersands(text string) []Match {
	var out []Match
	for i := 0; i < len(text); i++ {
		if text[i] != '&' {
			continue
		}
		if i > 0 && isWordByte(text[i-1]) {
			continue
		}
		if i+1 < len(text) && isWordByte(text[i+1]) {
			continue
		}
		out = append(out, Match{
			Start:       i,
			End:         i + 1,
			Rule:        "no_ampersands",
			Category:    CategoryPunctuation,
			CategoryKey: CategoryPunctuation.Key(),
			Original:    "&",
			Replacement: "and",
		})
	}
	return out
}

var doubleSpacePattern = regexp.MustCompile(`  +`)

func findDoubleSpaces(text string) []Match {
	var out []Match
	for _, loc := range doubleSpacePattern.FindAllStringIndex(text, -1) {
		out = append(out, Match{
			Start:       loc[0],
			End:         loc[1],
			Rule:        "single_spaces",
			Category:    CategoryPunctuation,
			CategoryKey: CategoryPunctuation.Key(),
			Original:    text[loc[0]:loc[1]],
			Replacement: " ",
		})
	}
	return out
}
