// Package analyze computes readability and SEO metrics over a finished
// document. It is a pure function of its input: the document is never
// mutated, and empty input yields zeroed metrics rather than an error.
package analyze

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/copyops/copycheck/pkg/doc"
)

// Options selects the optional analyses and targets.
type Options struct {
	Keywords           []string
	TargetWordCount    int
	TargetReadingLevel float64
	// TopTerms caps the stop-word-filtered frequency table (default 10).
	TopTerms int
}

// Report is the analyzer output.
type Report struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	ReadingLevel      float64 `json:"reading_level"` // Flesch-Kincaid grade
	ReadingEase       float64 `json:"reading_ease"`  // Flesch reading ease, 0-100
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`

	Keywords []KeywordStat `json:"keywords,omitempty"`
	TopTerms []TermCount   `json:"top_terms,omitempty"`
	Targets  []TargetCheck `json:"targets,omitempty"`
}

// KeywordStat reports one keyword phrase's usage.
type KeywordStat struct {
	Keyword    string  `json:"keyword"`
	Count      int     `json:"count"`
	Density    float64 `json:"density"` // percent of total words
	InBold     int     `json:"in_bold"`
	InHeadings int     `json:"in_headings"`
}

// TermCount is one entry of the case-folded term-frequency table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// TargetCheck compares one metric against its configured target.
type TargetCheck struct {
	Metric     string  `json:"metric"`
	Target     float64 `json:"target"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	Status     string  `json:"status"` // on_target, over, under
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// stopWords excluded from the term-frequency table.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"our": {}, "that": {}, "the": {}, "their": {}, "this": {}, "to": {},
	"was": {}, "we": {}, "were": {}, "will": {}, "with": {}, "you": {},
	"your": {},
}

// Analyze computes the full report for a document.
func Analyze(d *doc.Document, opts Options) Report {
	text := d.Text()
	words := fields(text)
	if len(words) == 0 {
		return Report{}
	}

	sentences := splitSentences(text)
	paragraphs := 0
	for i := range d.Paragraphs {
		if strings.TrimSpace(d.Paragraphs[i].Text()) != "" {
			paragraphs++
		}
	}

	totalChars, totalSyllables := 0, 0
	for _, w := range words {
		totalChars += len(w)
		totalSyllables += Syllables(w)
	}

	asl := float64(len(words)) / float64(max(len(sentences), 1))
	asw := float64(totalSyllables) / float64(len(words))

	rep := Report{
		WordCount:         len(words),
		SentenceCount:     len(sentences),
		ParagraphCount:    paragraphs,
		ReadingLevel:      round1(0.39*asl + 11.8*asw - 15.59),
		ReadingEase:       round1(206.835 - 1.015*asl - 84.6*asw),
		AvgSentenceLength: round1(asl),
		AvgWordLength:     round1(float64(totalChars) / float64(len(words))),
	}

	rep.Keywords = keywordStats(d, text, words, opts.Keywords)
	rep.TopTerms = topTerms(words, opts.TopTerms)
	rep.Targets = targetChecks(rep, opts)
	return rep
}

// fields tokenizes on whitespace, stripping surrounding punctuation.
func fields(text string) []string {
	raw := strings.Fields(text)
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !isLetterOrDigit(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func isLetterOrDigit(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// Syllables estimates a word's syllable count with a vowel-group heuristic:
// each maximal vowel group counts once, a trailing silent "e" is dropped,
// and every word has at least one syllable.
func Syllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func keywordStats(d *doc.Document, text string, words []string, keywords []string) []KeywordStat {
	if len(keywords) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	out := make([]KeywordStat, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		kwLower := strings.ToLower(kw)
		count := countOccurrences(lower, kwLower)
		kwWords := len(strings.Fields(kw))
		density := 0.0
		if len(words) > 0 {
			density = round2(float64(count*kwWords) / float64(len(words)) * 100)
		}
		stat := KeywordStat{Keyword: kw, Count: count, Density: density}
		for i := range d.Paragraphs {
			p := &d.Paragraphs[i]
			if p.IsHeading() && strings.Contains(strings.ToLower(p.Text()), kwLower) {
				stat.InHeadings++
			}
			for _, run := range p.Runs {
				if run.Format.Bold && strings.Contains(strings.ToLower(run.Text), kwLower) {
					stat.InBold++
				}
			}
		}
		out = append(out, stat)
	}
	return out
}

// countOccurrences counts token-bounded occurrences of needle in haystack.
func countOccurrences(haystack, needle string) int {
	count := 0
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return count
		}
		start := from + i
		end := start + len(needle)
		leftOK := start == 0 || !isLetterOrDigit(rune(haystack[start-1]))
		rightOK := end == len(haystack) || !isLetterOrDigit(rune(haystack[end]))
		if leftOK && rightOK {
			count++
		}
		from = start + 1
	}
}

func topTerms(words []string, limit int) []TermCount {
	if limit <= 0 {
		limit = 10
	}
	freq := make(map[string]int)
	for _, w := range words {
		t := strings.ToLower(w)
		if _, stop := stopWords[t]; stop || len(t) < 2 {
			continue
		}
		freq[t]++
	}
	out := make([]TermCount, 0, len(freq))
	for t, c := range freq {
		out = append(out, TermCount{Term: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func targetChecks(rep Report, opts Options) []TargetCheck {
	var out []TargetCheck
	if opts.TargetWordCount > 0 {
		diff := float64(rep.WordCount - opts.TargetWordCount)
		status := "on_target"
		switch {
		case diff > 50:
			status = "over"
		case diff < -50:
			status = "under"
		}
		out = append(out, TargetCheck{
			Metric: "word_count", Target: float64(opts.TargetWordCount),
			Actual: float64(rep.WordCount), Difference: diff, Status: status,
		})
	}
	if opts.TargetReadingLevel > 0 {
		diff := round1(rep.ReadingLevel - opts.TargetReadingLevel)
		status := "on_target"
		switch {
		case diff > 1.0:
			status = "over"
		case diff < -1.0:
			status = "under"
		}
		out = append(out, TargetCheck{
			Metric: "reading_level", Target: opts.TargetReadingLevel,
			Actual: rep.ReadingLevel, Difference: diff, Status: status,
		})
	}
	return out
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
func round2(f float64) float64 { return math.Round(f*100) / 100 }
