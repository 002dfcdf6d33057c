package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findNumbers(t *testing.T, text string) []Match {
	t.Helper()
	rs := numberRules("")
	require.Len(t, rs, 1)
	return rs[0].Find(text)
}

func TestNumberFinder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string // replacements, in order
	}{
		{"single digit spelled out", "I have 3 children", []string{"three"}},
		{"one through nine", "Choose 1 of 9 plans", []string{"one", "nine"}},
		{"ten and up stay numeric", "We saw 12 children", nil},
		{"thousands get separator", "The population of Albany is 15000", []string{"15,000"}},
		{"millions get separators", "Nearly 2500000 members", []string{"2,500,000"}},
		{"already separated", "Already 15,000 members", nil},
		{"decimal untouched", "Walk 3.5 miles", nil},
		{"clock time untouched", "Arrive by 3:00 sharp", nil},
		{"year untouched", "Enrollment opens in 2025", nil},
		{"old year gets separator", "Founded in 1850", []string{"1,850"}},
		{"phone number untouched", "Call 8005551234 today", nil},
		{"currency untouched", "A $5000 deductible", nil},
		{"percent untouched", "Save 5% this year", nil},
		{"clock hour untouched", "Open at 8 am", nil},
		{"part of identifier", "Form W2X9 is different", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range findNumbers(t, tt.text) {
				got = append(got, m.Replacement)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberFinder_MatchMetadata(t *testing.T) {
	matches := findNumbers(t, "I have 3 children")
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 7, m.Start)
	assert.Equal(t, 8, m.End)
	assert.Equal(t, "3", m.Original)
	assert.Equal(t, CategoryNumber, m.Category)
	assert.Equal(t, "numbers", m.CategoryKey)
}

func TestNumberRules_LocaleChangesSeparator(t *testing.T) {
	rs := numberRules("de-DE")
	require.Len(t, rs, 1)

	matches := rs[0].Find("Rund 15000 Mitglieder")
	require.Len(t, matches, 1)
	assert.Equal(t, "15.000", matches[0].Replacement)
}

func TestNumberRules_BadLocaleFallsBack(t *testing.T) {
	rs := numberRules("!!")
	require.Len(t, rs, 1)

	matches := rs[0].Find("About 15000 members")
	require.Len(t, matches, 1)
	assert.Equal(t, "15,000", matches[0].Replacement)
}
