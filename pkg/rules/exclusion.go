// exclusion.go implements the exclusion set: terms protected from every rule.
package rules

import "strings"

// ExclusionSet holds literal terms that no rule may alter. A candidate match
// is discarded when its original text, trimmed, exactly equals an entry, or
// when its span falls inside an occurrence of an entry in the surrounding
// paragraph text (the containment policy used by the ampersand rule for
// brand tokens like "AT&T").
type ExclusionSet struct {
	exact map[string]struct{}
	terms []string
}

// NewExclusionSet builds an exclusion set from literal terms.
func NewExclusionSet(terms ...string) *ExclusionSet {
	es := &ExclusionSet{exact: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		es.Add(t)
	}
	return es
}

// Add registers a term. Empty and duplicate terms are ignored.
func (es *ExclusionSet) Add(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	if _, dup := es.exact[term]; dup {
		return
	}
	es.exact[term] = struct{}{}
	es.terms = append(es.terms, term)
}

// Terms returns the registered terms in insertion order.
func (es *ExclusionSet) Terms() []string {
	return es.terms
}

// MatchesExact reports whether the trimmed text equals an entry verbatim.
func (es *ExclusionSet) MatchesExact(text string) bool {
	_, ok := es.exact[strings.TrimSpace(text)]
	return ok
}

// Covers reports whether the span [start, end) of text lies inside an
// occurrence of any exclusion entry.
func (es *ExclusionSet) Covers(text string, start, end int) bool {
	for _, term := range es.terms {
		for from := 0; ; {
			i := strings.Index(text[from:], term)
			if i < 0 {
				break
			}
			occStart := from + i
			occEnd := occStart + len(term)
			if occStart <= start && end <= occEnd {
				return true
			}
			from = occStart + 1
		}
	}
	return false
}
