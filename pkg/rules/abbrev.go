// abbrev.go implements the state-abbreviation category: punctuated two-letter
// state abbreviations become bare postal codes ("N.Y." -> "NY").
package rules

import (
	"regexp"
	"strings"
)

// postalCodes is the USPS two-letter code table. The punctuated form of each
// code ("N.Y.") is the match target; the bare code is the replacement.
var postalCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC",
}

var postalSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(postalCodes))
	for _, c := range postalCodes {
		m[c] = struct{}{}
	}
	return m
}()

// punctuatedAbbrevPattern matches any letter-dot-letter-dot sequence; the
// finder filters to real postal codes and enforces token boundaries.
var punctuatedAbbrevPattern = regexp.MustCompile(`[A-Za-z]\.\s?[A-Za-z]\.`)

func stateAbbreviationRules() []Rule {
	return []Rule{{
		Name:     "punctuated_state_abbreviation",
		Category: CategoryStateAbbrev,
		Scope:    ScopeCopy,
		Find:     findStateAbbreviations,
	}}
}

func findStateAbbreviations(text string) []Match {
	var out []Match
	for _, loc := range punctuatedAbbrevPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		original := text[start:end]

		code := strings.ToUpper(string(original[0]) + string(original[len(original)-2]))
		if _, ok := postalSet[code]; !ok {
			continue
		}
		// Distinct token only: "N.Y.C." and "U.S.A." must survive, so the
		// abbreviation may not butt up against another letter-dot pair.
		if start > 0 && isWordByte(text[start-1]) {
			continue
		}
		if end < len(text) && isWordByte(text[end]) {
			continue
		}

		out = append(out, Match{
			Start:       start,
			End:         end,
			Rule:        "punctuated_state_abbreviation",
			Category:    CategoryStateAbbrev,
			CategoryKey: CategoryStateAbbrev.Key(),
			Original:    original,
			Replacement: code,
		})
	}
	return out
}
