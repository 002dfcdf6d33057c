// terms.go implements the lookup-table categories: digital terminology,
// healthcare terminology, and branding corrections. All three match whole
// tokens case-insensitively and preserve the source's leading capitalization.
package rules

import (
	"regexp"
	"strings"
)

// defaultDigitalTerms is the built-in digital-terminology table.
var defaultDigitalTerms = []Replacement{
	{Wrong: "e-mail", Correct: "email"},
	{Wrong: "web site", Correct: "website"},
	{Wrong: "web-site", Correct: "website"},
	{Wrong: "on-line", Correct: "online"},
	{Wrong: "wifi", Correct: "Wi-Fi"},
	{Wrong: "sign-in", Correct: "sign in"},
	{Wrong: "smart phone", Correct: "smartphone"},
	{Wrong: "voice mail", Correct: "voicemail"},
}

// defaultHealthcareTerms is the built-in healthcare-terminology table.
var defaultHealthcareTerms = []Replacement{
	{Wrong: "healthcare", Correct: "health care"},
	{Wrong: "health-care", Correct: "health care"},
	{Wrong: "tele-health", Correct: "telehealth"},
	{Wrong: "check up", Correct: "checkup"},
	{Wrong: "co-pay", Correct: "copay"},
	{Wrong: "pre-existing", Correct: "preexisting"},
	{Wrong: "preventative", Correct: "preventive"},
	{Wrong: "primary care physician", Correct: "primary care provider"},
}

// defaultBrandingTerms is the built-in branding-correction table. Entries
// must not match the output of an earlier category, or re-running the
// pipeline would keep finding work; multi-word brand phrases belong in the
// exclusion set instead, where earlier categories cannot dismantle them.
var defaultBrandingTerms = []Replacement{
	{Wrong: "mvp", Correct: "MVP"},
}

func digitalRules(table []Replacement) []Rule {
	if table == nil {
		table = defaultDigitalTerms
	}
	return []Rule{{
		Name:     "digital_terminology",
		Category: CategoryDigital,
		Scope:    ScopeCopy,
		Find:     tableFinder("digital_terminology", CategoryDigital, table),
	}}
}

func healthcareRules(table []Replacement) []Rule {
	if table == nil {
		table = defaultHealthcareTerms
	}
	return []Rule{{
		Name:     "healthcare_terminology",
		Category: CategoryHealthcare,
		Scope:    ScopeCopy,
		Find:     tableFinder("healthcare_terminology", CategoryHealthcare, table),
	}}
}

// tableFinder compiles a lookup table into a FindFunc. Entries are matched as
// whole tokens, case-insensitively; when two entries overlap in the text, the
// one listed earlier in the table wins.
func tableFinder(ruleName string, cat Category, table []Replacement) FindFunc {
	type compiled struct {
		re      *regexp.Regexp
		correct string
	}
	entries := make([]compiled, 0, len(table))
	for _, rep := range table {
		if rep.Wrong == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(rep.Wrong) + `\b`)
		entries = append(entries, compiled{re: re, correct: rep.Correct})
	}

	return func(text string) []Match {
		var out []Match
		for _, e := range entries {
			for _, loc := range e.re.FindAllStringIndex(text, -1) {
				original := text[loc[0]:loc[1]]
				replacement := preserveCase(original, e.correct)
				if replacement == original {
					continue
				}
				candidate := Match{
					Start:       loc[0],
					End:         loc[1],
					Rule:        ruleName,
					Category:    cat,
					CategoryKey: cat.Key(),
					Original:    original,
					Replacement: replacement,
				}
				if covered(out, candidate) {
					continue
				}
				out = append(out, candidate)
			}
		}
		return out
	}
}

// covered reports whether the candidate overlaps a match already collected
// from an earlier (higher-priority) table entry.
func covered(matches []Match, candidate Match) bool {
	for _, m := range matches {
		if m.Overlaps(candidate) {
			return true
		}
	}
	return false
}

func brandingRules(table []Replacement, trademarks []string) []Rule {
	if table == nil {
		table = defaultBrandingTerms
	}
	if trademarks == nil {
		trademarks = []string{"Gia"}
	}
	return []Rule{
		{
			Name:     "brand_terminology",
			Category: CategoryBranding,
			Scope:    ScopeCopy,
			Find:     brandTableFinder(table),
		},
		{
			Name:     "trademark_symbol",
			Category: CategoryBranding,
			Scope:    ScopeCopy,
			Find:     trademarkFinder(trademarks),
		},
	}
}

// brandTableFinder matches branding corrections case-sensitively: brand names
// have one sanctioned casing and the table spells it out.
func brandTableFinder(table []Replacement) FindFunc {
	type compiled struct {
		re      *regexp.Regexp
		correct string
	}
	entries := make([]compiled, 0, len(table))
	for _, rep := range table {
		if rep.Wrong == "" || rep.Wrong == rep.Correct {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(rep.Wrong) + `\b`)
		entries = append(entries, compiled{re: re, correct: rep.Correct})
	}

	return func(text string) []Match {
		var out []Match
		for _, e := range entries {
			for _, loc := range e.re.FindAllStringIndex(text, -1) {
				original := text[loc[0]:loc[1]]
				if original == e.correct {
					continue
				}
				candidate := Match{
					Start:       loc[0],
					End:         loc[1],
					Rule:        "brand_terminology",
					Category:    CategoryBranding,
					CategoryKey: CategoryBranding.Key(),
					Original:    original,
					Replacement: e.correct,
				}
				if covered(out, candidate) {
					continue
				}
				out = append(out, candidate)
			}
		}
		return out
	}
}

// trademarkFinder appends the registered-trademark symbol to the first
// occurrence of each brand name, but only when no marked instance already
// exists anywhere in the text. Re-running it over its own output finds
// nothing, which keeps the branding pass idempotent.
func trademarkFinder(trademarks []string) FindFunc {
	return func(text string) []Match {
		var out []Match
		for _, brand := range trademarks {
			if brand == "" || strings.Contains(text, brand+"®") {
				continue
			}
			idx := strings.Index(text, brand)
			for idx >= 0 {
				end := idx + len(brand)
				if standaloneToken(text, idx, end) {
					break
				}
				next := strings.Index(text[idx+1:], brand)
				if next < 0 {
					idx = -1
					break
				}
				idx = idx + 1 + next
			}
			if idx < 0 {
				continue
			}
			out = append(out, Match{
				Start:       idx,
				End:         idx + len(brand),
				Rule:        "trademark_symbol",
				Category:    CategoryBranding,
				CategoryKey: CategoryBranding.Key(),
				Original:    brand,
				Replacement: brand + "®",
			})
		}
		return out
	}
}
