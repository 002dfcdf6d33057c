package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyops/copycheck/pkg/doc"
)

func plainDoc(texts ...string) *doc.Document {
	d := &doc.Document{}
	for _, t := range texts {
		d.AddParagraph(t, doc.Format{})
	}
	return d
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	assert.Equal(t, Report{}, Analyze(&doc.Document{}, Options{}))
	assert.Equal(t, Report{}, Analyze(plainDoc("   "), Options{}))
}

func TestAnalyze_Counts(t *testing.T) {
	d := plainDoc(
		"Hello world. This is fine.",
		"One more paragraph here!",
	)

	rep := Analyze(d, Options{})

	assert.Equal(t, 9, rep.WordCount)
	assert.Equal(t, 3, rep.SentenceCount)
	assert.Equal(t, 2, rep.ParagraphCount)
	assert.Equal(t, 3.0, rep.AvgSentenceLength)
}

func TestAnalyze_SingleWordGrade(t *testing.T) {
	rep := Analyze(plainDoc("cat"), Options{})

	// One one-syllable word in one sentence: 0.39 + 11.8 - 15.59.
	assert.InDelta(t, -3.4, rep.ReadingLevel, 0.01)
	assert.InDelta(t, 121.2, rep.ReadingEase, 0.01)
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"table", 2},   // the "-le" ending keeps its syllable
		{"code", 1},    // trailing silent e
		{"pie", 1},     // a single vowel group is never reduced below one
		{"rhythm", 1},  // y counts as a vowel
		{"beautiful", 3},
		{"a", 1},
		{"xyz", 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word))
		})
	}
}

func TestAnalyze_Keywords(t *testing.T) {
	d := &doc.Document{Paragraphs: []doc.Paragraph{
		{Runs: []doc.Run{{Text: "Health Insurance", Format: doc.Format{Bold: true}}}, Style: "Heading 1"},
		{Runs: []doc.Run{{Text: "We offer health insurance. Health insurance matters."}}},
	}}

	rep := Analyze(d, Options{Keywords: []string{"health insurance"}})

	require.Len(t, rep.Keywords, 1)
	kw := rep.Keywords[0]
	assert.Equal(t, "health insurance", kw.Keyword)
	assert.Equal(t, 3, kw.Count)
	assert.InDelta(t, 66.67, kw.Density, 0.01)
	assert.Equal(t, 1, kw.InHeadings)
	assert.Equal(t, 1, kw.InBold)
}

func TestAnalyze_KeywordAbsent(t *testing.T) {
	rep := Analyze(plainDoc("Nothing relevant here."), Options{Keywords: []string{"dental"}})

	require.Len(t, rep.Keywords, 1)
	assert.Equal(t, 0, rep.Keywords[0].Count)
	assert.Equal(t, 0.0, rep.Keywords[0].Density)
}

func TestAnalyze_KeywordTokenBounded(t *testing.T) {
	rep := Analyze(plainDoc("The carpet in the car."), Options{Keywords: []string{"car"}})

	require.Len(t, rep.Keywords, 1)
	assert.Equal(t, 1, rep.Keywords[0].Count)
}

func TestAnalyze_TopTerms(t *testing.T) {
	d := plainDoc("The insurance plan covers the insurance you need.")

	rep := Analyze(d, Options{TopTerms: 2})

	require.Len(t, rep.TopTerms, 2)
	assert.Equal(t, TermCount{Term: "insurance", Count: 2}, rep.TopTerms[0])
	// Ties order alphabetically.
	assert.Equal(t, TermCount{Term: "covers", Count: 1}, rep.TopTerms[1])
}

func TestAnalyze_Targets(t *testing.T) {
	d := plainDoc("Short copy.")

	rep := Analyze(d, Options{TargetWordCount: 100, TargetReadingLevel: 20})

	require.Len(t, rep.Targets, 2)

	wc := rep.Targets[0]
	assert.Equal(t, "word_count", wc.Metric)
	assert.Equal(t, 100.0, wc.Target)
	assert.Equal(t, 2.0, wc.Actual)
	assert.Equal(t, "under", wc.Status)

	rl := rep.Targets[1]
	assert.Equal(t, "reading_level", rl.Metric)
	assert.Equal(t, "under", rl.Status)
}

func TestAnalyze_TargetOnTarget(t *testing.T) {
	d := plainDoc("One two three four five.")

	rep := Analyze(d, Options{TargetWordCount: 30})

	require.Len(t, rep.Targets, 1)
	assert.Equal(t, "on_target", rep.Targets[0].Status)
	assert.Equal(t, -25.0, rep.Targets[0].Difference)
}

func TestAnalyze_NoTargetsNoChecks(t *testing.T) {
	rep := Analyze(plainDoc("Some words."), Options{})
	assert.Empty(t, rep.Targets)
}
