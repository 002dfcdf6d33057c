package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionSet_MatchesExact(t *testing.T) {
	es := NewExclusionSet("AT&T", "Barnes & Noble")

	assert.True(t, es.MatchesExact("AT&T"))
	assert.True(t, es.MatchesExact("  AT&T  "))
	assert.False(t, es.MatchesExact("AT&T Wireless"))
	assert.False(t, es.MatchesExact("verizon"))
}

func TestExclusionSet_Covers(t *testing.T) {
	es := NewExclusionSet("AT&T")
	text := "Call AT&T now"

	// The ampersand inside the protected occurrence.
	assert.True(t, es.Covers(text, 7, 8))
	// The whole occurrence.
	assert.True(t, es.Covers(text, 5, 9))
	// A span reaching past the occurrence.
	assert.False(t, es.Covers(text, 5, 12))
	// Unrelated text.
	assert.False(t, es.Covers("nothing here", 0, 3))
}

func TestExclusionSet_AddIgnoresEmptyAndDuplicates(t *testing.T) {
	es := NewExclusionSet()
	es.Add("Gia")
	es.Add("  ")
	es.Add("Gia")
	es.Add("AT&T")

	assert.Equal(t, []string{"Gia", "AT&T"}, es.Terms())
}
