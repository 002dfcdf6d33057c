package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyops/copycheck/pkg/analyze"
	"github.com/copyops/copycheck/pkg/pipeline"
	"github.com/copyops/copycheck/pkg/rules"
)

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer) {
	r := NewRenderer(format, true)
	buf := &bytes.Buffer{}
	r.SetWriter(buf)
	return r, buf
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("table"))
	assert.NoError(t, ValidateFormat("json"))
	assert.NoError(t, ValidateFormat("plain"))

	err := ValidateFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"Name", "Value"}, [][]string{
		{"alpha", "1"},
		{"a-longer-name", "2"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name           Value", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "alpha          1", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "a-longer-name  2", strings.TrimRight(lines[2], " "))
}

func TestRenderTable_PlainOmitsHeaders(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)

	r.RenderTable([]string{"Name"}, [][]string{{"alpha"}})

	assert.NotContains(t, buf.String(), "Name")
	assert.Contains(t, buf.String(), "alpha")
}

func TestRenderTable_JSONMode(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	r.RenderTable([]string{"Rule Name", "Enabled"}, [][]string{{"time_format", "yes"}})

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "time_format", rows[0]["rule_name"])
	assert.Equal(t, "yes", rows[0]["enabled"])
}

func TestRenderJSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	require.NoError(t, r.RenderJSON(map[string]int{"count": 3}))
	assert.JSONEq(t, `{"count": 3}`, buf.String())
}

func TestStatusMessages(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.Success("saved")
	r.Error("broken")
	r.Warning("careful")

	out := buf.String()
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "✗ broken")
	assert.Contains(t, out, "! careful")
}

func TestRenderChanges_Empty(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderChanges(&pipeline.Result{})
	assert.Contains(t, buf.String(), "No corrections needed.")
}

func TestRenderChanges_TableAndSummary(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderChanges(&pipeline.Result{Changes: []rules.Match{
		{
			Paragraph:   2,
			Rule:        "time_format",
			Category:    rules.CategoryTime,
			CategoryKey: "times",
			Original:    "3:00 PM",
			Replacement: "3 pm",
		},
	}})

	out := buf.String()
	assert.Contains(t, out, "3:00 PM")
	assert.Contains(t, out, "3 pm")
	assert.Contains(t, out, "Time Formatting: 1 correction(s)")
}

func TestRenderReport_KeyValues(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderReport(analyze.Report{
		WordCount:     120,
		SentenceCount: 8,
		ReadingLevel:  7.3,
		Keywords: []analyze.KeywordStat{
			{Keyword: "dental", Count: 2, Density: 1.67},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Word Count: 120")
	assert.Contains(t, out, "Reading Level: 7.3 grade")
	assert.Contains(t, out, "dental")
	assert.Contains(t, out, "1.67%")
}

func TestRenderDiff_NoChanges(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderDiff("same text", "same text")
	assert.Contains(t, buf.String(), "No changes.")
}

func TestRenderDiff_ShowsEdits(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderDiff("Meeting at 3:00 PM\n", "Meeting at 3 pm\n")

	out := buf.String()
	assert.Contains(t, out, "-Meeting at 3:00 PM")
	assert.Contains(t, out, "+Meeting at 3 pm")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "lengthy...", Truncate("lengthy string here", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
