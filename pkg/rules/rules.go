// Package rules defines the style-guide substitution rules: eight fixed,
// ordered categories of deterministic pattern -> replacement rules, plus the
// exclusion machinery that protects terms from rewriting.
package rules

import (
	"strings"

	"github.com/copyops/copycheck/pkg/doc"
)

// Category identifies one of the eight rule categories. The declaration order
// is the application order: later categories re-examine text already altered
// by earlier ones (number spelling runs after time formatting so spelled-out
// hours never gain commas, and the final pass sees fully rewritten text).
type Category int

const (
	CategoryStateAbbrev Category = iota
	CategoryPunctuation
	CategoryDigital
	CategoryTime
	CategoryNumber
	CategoryHealthcare
	CategoryBranding
	CategoryFinalCheck
)

// Categories returns all categories in fixed application order.
func Categories() []Category {
	return []Category{
		CategoryStateAbbrev,
		CategoryPunctuation,
		CategoryDigital,
		CategoryTime,
		CategoryNumber,
		CategoryHealthcare,
		CategoryBranding,
		CategoryFinalCheck,
	}
}

// categoryKeys maps categories to their stable config keys.
var categoryKeys = map[Category]string{
	CategoryStateAbbrev: "state_abbreviations",
	CategoryPunctuation: "punctuation",
	CategoryDigital:     "digital_terms",
	CategoryTime:        "times",
	CategoryNumber:      "numbers",
	CategoryHealthcare:  "healthcare_terms",
	CategoryBranding:    "branding",
	CategoryFinalCheck:  "final_check",
}

// Key returns the category's config key (e.g. "state_abbreviations").
func (c Category) Key() string {
	return categoryKeys[c]
}

// String returns the category's display name.
func (c Category) String() string {
	switch c {
	case CategoryStateAbbrev:
		return "State Abbreviations"
	case CategoryPunctuation:
		return "Punctuation"
	case CategoryDigital:
		return "Digital Terminology"
	case CategoryTime:
		return "Time Formatting"
	case CategoryNumber:
		return "Number Formatting"
	case CategoryHealthcare:
		return "Healthcare Terminology"
	case CategoryBranding:
		return "Branding"
	case CategoryFinalCheck:
		return "Final Check"
	}
	return "Unknown"
}

// ParseCategory resolves a config key back to its category.
func ParseCategory(key string) (Category, bool) {
	for c, k := range categoryKeys {
		if k == key {
			return c, true
		}
	}
	return 0, false
}

// Scope is the set of region kinds a rule applies to.
type Scope uint8

const (
	ScopeUnmarked Scope = 1 << iota
	ScopePageCopy
	ScopeDisclaimer

	// ScopeAll covers every region kind.
	ScopeAll = ScopeUnmarked | ScopePageCopy | ScopeDisclaimer
	// ScopeCopy is the default rewriting scope: page copy and unmarked text.
	// Disclaimer paragraphs are legal text and are left untouched.
	ScopeCopy = ScopeUnmarked | ScopePageCopy
)

// Includes reports whether the scope covers the given region kind.
func (s Scope) Includes(k doc.RegionKind) bool {
	switch k {
	case doc.RegionPageCopy:
		return s&ScopePageCopy != 0
	case doc.RegionDisclaimer:
		return s&ScopeDisclaimer != 0
	default:
		return s&ScopeUnmarked != 0
	}
}

// Match is a candidate or committed substitution: a span of a paragraph's
// concatenated text and its replacement. Offsets are byte offsets.
type Match struct {
	Paragraph   int      `json:"paragraph"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Rule        string   `json:"rule"`
	Category    Category `json:"-"`
	CategoryKey string   `json:"category"`
	Original    string   `json:"original"`
	Replacement string   `json:"replacement"`
}

// Overlaps reports whether two spans on the same paragraph text intersect.
func (m Match) Overlaps(o Match) bool {
	return m.Start < o.End && o.Start < m.End
}

// FindFunc scans paragraph text and returns candidate matches with offsets
// into that text. Implementations must be pure: same text, same candidates.
type FindFunc func(text string) []Match

// Rule is a single named substitution. Identity is (Category, Name).
// Rules within a category are listed in priority order and must produce
// non-overlapping candidates by construction; overlap within a category is a
// rule-authoring defect surfaced by the pipeline.
type Rule struct {
	Name     string
	Category Category
	Scope    Scope
	// Find produces rewriting candidates. Nil for validation-only rules.
	Find FindFunc
	// Validate is set on final-check rules: surviving candidates become
	// warnings instead of rewrites.
	Validate bool
}

// RuleSet is an ordered collection of rules grouped into the fixed categories,
// with an exclusion set applied ahead of every rule. Immutable after
// construction and safe to share across concurrent document runs.
type RuleSet struct {
	rules      []Rule
	exclusions *ExclusionSet
}

// Options configures the rule tables that are data-driven. Zero-value fields
// fall back to the built-in defaults.
type Options struct {
	DigitalTerms    []Replacement
	HealthcareTerms []Replacement
	BrandingTerms   []Replacement
	Trademarks      []string
	// Locale selects the number-formatting locale (BCP 47, default "en-US").
	Locale string
}

// Replacement is a single wrong -> correct lookup-table entry.
type Replacement struct {
	Wrong   string `yaml:"wrong" json:"wrong"`
	Correct string `yaml:"correct" json:"correct"`
}

// NewRuleSet builds the full rule set in fixed category order.
func NewRuleSet(opts Options, exclusions *ExclusionSet) *RuleSet {
	if exclusions == nil {
		exclusions = NewExclusionSet()
	}
	var rs []Rule
	rs = append(rs, stateAbbreviationRules()...)
	rs = append(rs, punctuationRules()...)
	rs = append(rs, digitalRules(opts.DigitalTerms)...)
	rs = append(rs, timeRules()...)
	rs = append(rs, numberRules(opts.Locale)...)
	rs = append(rs, healthcareRules(opts.HealthcareTerms)...)
	rs = append(rs, brandingRules(opts.BrandingTerms, opts.Trademarks)...)
	rs = append(rs, finalCheckRules()...)
	return &RuleSet{rules: rs, exclusions: exclusions}
}

// Default returns the rule set with all built-in tables and no exclusions.
func Default() *RuleSet {
	return NewRuleSet(Options{}, nil)
}

// ForCategory returns the category's rules in priority order.
func (rs *RuleSet) ForCategory(c Category) []Rule {
	var out []Rule
	for _, r := range rs.rules {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// Rules returns all rules in application order.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// Exclusions returns the shared exclusion set.
func (rs *RuleSet) Exclusions() *ExclusionSet {
	return rs.exclusions
}

// preserveCase carries the source token's leading capitalization onto the
// replacement, leaving fixed-case replacements (e.g. "Wi-Fi") alone.
func preserveCase(original, replacement string) string {
	if replacement == "" || hasFixedCase(replacement) {
		return replacement
	}
	if original != "" && original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}

// hasFixedCase reports whether the replacement carries deliberate casing
// beyond its first letter and must be emitted verbatim.
func hasFixedCase(s string) bool {
	for _, r := range s[1:] {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// isWordByte reports whether the byte is a letter or digit, for adjacency
// (word-boundary) checks on ASCII rule patterns.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// standaloneToken reports whether text[start:end] is bounded by non-word
// bytes on both sides.
func standaloneToken(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}
