// final.go implements the final-check category: a validation-only pass that
// re-examines the rewritten text and reports any disallowed pattern that
// survived the rewriting categories. It commits no replacements.
package rules

import "regexp"

// Patterns the earlier categories should have eliminated. Anything still
// matching after the rewrite passes is reported, not fixed: a leftover means
// either an exclusion protected it or a category was disabled.
var (
	leftoverUpperMeridiem = regexp.MustCompile(`\d\s*(?:[AP]M\b|[AaPp]\.[Mm]\.)`)
	leftoverDoubleSpace   = regexp.MustCompile(`  +`)
)

func finalCheckRules() []Rule {
	return []Rule{
		{
			Name:     "no_punctuated_state_abbreviations",
			Category: CategoryFinalCheck,
			Scope:    ScopeAll,
			Find:     validationFinder("no_punctuated_state_abbreviations", findStateAbbreviations),
			Validate: true,
		},
		{
			Name:     "no_double_spaces",
			Category: CategoryFinalCheck,
			Scope:    ScopeAll,
			Find:     validationFinder("no_double_spaces", regexFinder(leftoverDoubleSpace)),
			Validate: true,
		},
		{
			Name:     "no_unformatted_meridiems",
			Category: CategoryFinalCheck,
			Scope:    ScopeAll,
			Find:     validationFinder("no_unformatted_meridiems", regexFinder(leftoverUpperMeridiem)),
			Validate: true,
		},
		{
			Name:     "no_standalone_ampersands",
			Category: CategoryFinalCheck,
			Scope:    ScopeAll,
			Find:     validationFinder("no_standalone_ampersands", findAmpersands),
			Validate: true,
		},
	}
}

// validationFinder rebrands another finder's candidates as final-check
// findings with no replacement.
func validationFinder(name string, find FindFunc) FindFunc {
	return func(text string) []Match {
		matches := find(text)
		out := make([]Match, 0, len(matches))
		for _, m := range matches {
			m.Rule = name
			m.Category = CategoryFinalCheck
			m.CategoryKey = CategoryFinalCheck.Key()
			m.Replacement = ""
			out = append(out, m)
		}
		return out
	}
}

func regexFinder(re *regexp.Regexp) FindFunc {
	return func(text string) []Match {
		var out []Match
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, Match{
				Start:    loc[0],
				End:      loc[1],
				Original: text[loc[0]:loc[1]],
			})
		}
		return out
	}
}
