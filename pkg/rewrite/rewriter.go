// Package rewrite applies committed matches to a paragraph while preserving
// every untouched character's formatting descriptor. This is the only place
// that reconstructs runs; rules and the pipeline treat paragraphs as text.
package rewrite

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/copyops/copycheck/pkg/doc"
	"github.com/copyops/copycheck/pkg/rules"
)

// ErrConflictingMatches is returned when two matches overlap. Overlap is a
// rule-authoring bug that must be resolved upstream; silently picking a
// winner here would hide it.
var ErrConflictingMatches = errors.New("conflicting matches")

// ErrInvariantViolation is returned when the rewritten runs fail to
// reconstruct the expected text. It indicates a rewriter bug; the caller
// passes the original paragraph through unchanged and flags it.
var ErrInvariantViolation = errors.New("paragraph reconstruction mismatch")

// styledRune pairs one character with the formatting descriptor of the run
// that covers it. The paragraph is flattened to this form, spliced, and
// re-coalesced; runs are never mutated in place.
type styledRune struct {
	r rune
	f doc.Format
}

// Apply returns a new paragraph whose text is the original text with every
// match's span replaced, and whose runs preserve formatting:
//
//   - characters outside every match keep their original descriptor;
//   - replacement text inherits the descriptor of the first original
//     character of its span (a deliberate, stable tie-break);
//   - adjacent output characters with identical descriptors coalesce into
//     maximal runs.
//
// Match offsets are byte offsets into the paragraph's concatenated text.
// Matches may arrive unsorted but must not overlap.
func Apply(p *doc.Paragraph, matches []rules.Match) (doc.Paragraph, error) {
	if len(matches) == 0 {
		return p.Clone(), nil
	}

	text := p.Text()

	sorted := make([]rules.Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i, m := range sorted {
		if m.Start < 0 || m.End > len(text) || m.Start >= m.End {
			return doc.Paragraph{}, fmt.Errorf("match %q has invalid span [%d,%d) in text of length %d",
				m.Rule, m.Start, m.End, len(text))
		}
		if i > 0 && sorted[i-1].End > m.Start {
			return doc.Paragraph{}, fmt.Errorf("%w: %q [%d,%d) and %q [%d,%d)",
				ErrConflictingMatches,
				sorted[i-1].Rule, sorted[i-1].Start, sorted[i-1].End,
				m.Rule, m.Start, m.End)
		}
	}

	flat, byteIndex := flatten(p)

	// Right-to-left so earlier offsets stay valid across length changes.
	for i := len(sorted) - 1; i >= 0; i-- {
		m := sorted[i]
		lo, ok1 := byteIndex[m.Start]
		hi, ok2 := byteIndex[m.End]
		if !ok1 || !ok2 {
			return doc.Paragraph{}, fmt.Errorf("match %q span [%d,%d) is not rune-aligned", m.Rule, m.Start, m.End)
		}
		inherited := flat[lo].f
		repl := make([]styledRune, 0, utf8.RuneCountInString(m.Replacement))
		for _, r := range m.Replacement {
			repl = append(repl, styledRune{r: r, f: inherited})
		}
		flat = append(flat[:lo], append(repl, flat[hi:]...)...)
	}

	out := coalesce(flat)
	out.Style = p.Style

	if out.Text() != expectedText(text, sorted) {
		return doc.Paragraph{}, ErrInvariantViolation
	}
	return out, nil
}

// flatten expands the paragraph's runs into a (rune, descriptor) array and
// returns the byte-offset -> flat-index map for the concatenated text.
func flatten(p *doc.Paragraph) ([]styledRune, map[int]int) {
	var flat []styledRune
	byteIndex := make(map[int]int)
	off := 0
	for _, run := range p.Runs {
		for _, r := range run.Text {
			byteIndex[off] = len(flat)
			flat = append(flat, styledRune{r: r, f: run.Format})
			off += utf8.RuneLen(r)
		}
	}
	byteIndex[off] = len(flat)
	return flat, byteIndex
}

// coalesce folds consecutive identical descriptors back into maximal runs.
func coalesce(flat []styledRune) doc.Paragraph {
	var p doc.Paragraph
	i := 0
	for i < len(flat) {
		j := i
		var b strings.Builder
		for j < len(flat) && flat[j].f == flat[i].f {
			b.WriteRune(flat[j].r)
			j++
		}
		p.Runs = append(p.Runs, doc.Run{Text: b.String(), Format: flat[i].f})
		i = j
	}
	return p
}

// expectedText splices the replacements into the plain string, giving the
// reference against which the rebuilt runs are verified.
func expectedText(text string, sorted []rules.Match) string {
	var b strings.Builder
	prev := 0
	for _, m := range sorted {
		b.WriteString(text[prev:m.Start])
		b.WriteString(m.Replacement)
		prev = m.End
	}
	b.WriteString(text[prev:])
	return b.String()
}
