// Package pipeline orchestrates one document's normalization: marker
// segmentation, the ordered category passes through the run-preserving
// rewriter, and the final analysis. Process is a pure function of its inputs;
// the rule set and config are read-only and safe to share across documents.
package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/copyops/copycheck/pkg/analyze"
	"github.com/copyops/copycheck/pkg/doc"
	"github.com/copyops/copycheck/pkg/rewrite"
	"github.com/copyops/copycheck/pkg/rules"
)

// Config selects which categories run and what the analyzer reports.
type Config struct {
	// Categories maps category config keys to enabled state. Categories
	// missing from the map are enabled.
	Categories map[string]bool
	Analysis   analyze.Options
	// Workers bounds batch concurrency (default GOMAXPROCS).
	Workers int
}

// Enabled reports whether a category should run.
func (c Config) Enabled(cat rules.Category) bool {
	on, present := c.Categories[cat.Key()]
	return !present || on
}

// Result is the outcome of processing one document.
type Result struct {
	Doc     *doc.Document
	Regions []doc.Region
	// Changes is the ordered change log of committed matches.
	Changes []rules.Match
	// Warnings collects structural warnings, final-check findings,
	// conflicting-match reports, and invariant-violation flags. None of
	// them abort processing.
	Warnings []string
	// FlaggedParagraphs are indices passed through unchanged because their
	// rewrite failed reconstruction.
	FlaggedParagraphs []int
	RemovedMarkers    []doc.RemovedMarker
	Report            analyze.Report
}

// Summary aggregates the change log by category display name.
func (r *Result) Summary() map[string]int {
	out := make(map[string]int)
	for _, m := range r.Changes {
		out[m.Category.String()]++
	}
	return out
}

type span struct{ start, end int }

func (s span) overlaps(start, end int) bool {
	return start < s.end && s.start < end
}

// Protected content is never rewritten: URLs, bracketed placeholders, and
// angle-bracket tokens are authoring artifacts that rules must not touch.
var protectedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://\S+|www\.\S+`),
	regexp.MustCompile(`\[[^\]]+\]`),
	regexp.MustCompile(`<[^>]+>`),
}

func protectedSpans(text string) []span {
	var out []span
	for _, re := range protectedPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, span{loc[0], loc[1]})
		}
	}
	return out
}

// Process runs the full pipeline over one document. The input document is not
// mutated; the result holds a new document with marker paragraphs stripped
// and all enabled categories applied in fixed order.
func Process(d *doc.Document, rs *rules.RuleSet, cfg Config) *Result {
	seg := doc.Segment(d)
	res := &Result{
		Doc:            seg.Doc,
		Regions:        seg.Regions,
		Warnings:       seg.Warnings,
		RemovedMarkers: seg.Removed,
	}

	// Spans already rewritten by an earlier category, per paragraph, in
	// current-text coordinates. Later categories never touch them.
	committed := make([][]span, len(seg.Doc.Paragraphs))

	for _, cat := range rules.Categories() {
		if !cfg.Enabled(cat) {
			continue
		}
		catRules := rs.ForCategory(cat)
		for _, region := range seg.Regions {
			res.applyCategory(cat, catRules, region, rs.Exclusions(), committed)
		}
	}

	res.Report = analyze.Analyze(res.Doc, cfg.Analysis)
	return res
}

// applyCategory runs one category's rules over one region. A conflict between
// two rules of the category skips the whole region for this category only.
func (res *Result) applyCategory(cat rules.Category, catRules []rules.Rule, region doc.Region, excl *rules.ExclusionSet, committed [][]span) {
	perPara := make(map[int][]rules.Match)

	for idx := region.Start; idx < region.End; idx++ {
		text := res.Doc.Paragraphs[idx].Text()
		protected := protectedSpans(text)

		var rewrites []rules.Match
		for _, rule := range catRules {
			if !rule.Scope.Includes(region.Kind) {
				continue
			}
			for _, m := range rule.Find(text) {
				m.Paragraph = idx
				if excl.MatchesExact(m.Original) || excl.Covers(text, m.Start, m.End) {
					continue
				}
				if overlapsAny(protected, m) || overlapsAny(committed[idx], m) {
					continue
				}
				if rule.Validate {
					res.Warnings = append(res.Warnings,
						fmt.Sprintf("final check %s: %q remains (paragraph %d)", m.Rule, m.Original, idx))
					continue
				}
				if m.Replacement == m.Original {
					continue
				}
				rewrites = append(rewrites, m)
			}
		}

		sort.Slice(rewrites, func(i, j int) bool { return rewrites[i].Start < rewrites[j].Start })
		for i := 1; i < len(rewrites); i++ {
			if rewrites[i-1].End > rewrites[i].Start {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"conflicting matches in %s (%q and %q overlap in paragraph %d); category skipped for %s region",
					cat, rewrites[i-1].Rule, rewrites[i].Rule, idx, region.Kind))
				return
			}
		}
		perPara[idx] = rewrites
	}

	for idx := region.Start; idx < region.End; idx++ {
		matches := perPara[idx]
		if len(matches) == 0 {
			continue
		}
		newPara, err := rewrite.Apply(&res.Doc.Paragraphs[idx], matches)
		if err != nil {
			if errors.Is(err, rewrite.ErrInvariantViolation) {
				res.FlaggedParagraphs = append(res.FlaggedParagraphs, idx)
			}
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("paragraph %d left unchanged: %v", idx, err))
			continue
		}
		res.Doc.Paragraphs[idx] = newPara
		res.Changes = append(res.Changes, matches...)
		committed[idx] = remapSpans(committed[idx], matches)
	}
}

func overlapsAny(spans []span, m rules.Match) bool {
	for _, s := range spans {
		if s.overlaps(m.Start, m.End) {
			return true
		}
	}
	return false
}

// remapSpans shifts previously committed spans through a batch of
// non-overlapping edits (sorted by offset) and adds the edits' replacement
// spans, all in the coordinates of the rewritten text.
func remapSpans(spans []span, edits []rules.Match) []span {
	out := make([]span, 0, len(spans)+len(edits))
	for _, s := range spans {
		shift := 0
		for _, e := range edits {
			if e.End <= s.start {
				shift += len(e.Replacement) - (e.End - e.Start)
			}
		}
		out = append(out, span{s.start + shift, s.end + shift})
	}
	shift := 0
	for _, e := range edits {
		start := e.Start + shift
		out = append(out, span{start, start + len(e.Replacement)})
		shift += len(e.Replacement) - (e.End - e.Start)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}
