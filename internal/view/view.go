// Package view provides output formatting for copycheck commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"

	"github.com/copyops/copycheck/pkg/analyze"
	"github.com/copyops/copycheck/pkg/pipeline"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidateFormat checks that the format name is recognized.
func ValidateFormat(name string) error {
	switch Format(name) {
	case FormatTable, FormatJSON, FormatPlain:
		return nil
	}
	return fmt.Errorf("invalid output format %q (expected table, json, or plain)", name)
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderTable renders data as a simple aligned table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	if r.format == FormatJSON {
		r.renderTableAsJSON(headers, rows)
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	if r.format == FormatTable {
		bold := color.New(color.Bold)
		for i, h := range headers {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			bold.Fprintf(r.writer, "%-*s", widths[i], h)
		}
		fmt.Fprintln(r.writer)
	}

	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			fmt.Fprintf(r.writer, "%-*s", widths[i], val)
		}
		fmt.Fprintln(r.writer)
	}
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(strings.ReplaceAll(header, " ", "_"))] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue renders a key-value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	bold := color.New(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(r.writer, "! "+msg)
}

// RenderChanges renders the pipeline change log.
func (r *Renderer) RenderChanges(res *pipeline.Result) {
	if len(res.Changes) == 0 {
		r.RenderText("No corrections needed.")
		return
	}

	rows := make([][]string, 0, len(res.Changes))
	for _, m := range res.Changes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Paragraph),
			m.Category.String(),
			Truncate(m.Original, 30),
			Truncate(m.Replacement, 30),
		})
	}
	r.RenderTable([]string{"Para", "Category", "Before", "After"}, rows)

	fmt.Fprintln(r.writer)
	summary := res.Summary()
	categories := make([]string, 0, len(summary))
	for cat := range summary {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		r.RenderKeyValue(cat, fmt.Sprintf("%d correction(s)", summary[cat]))
	}
}

// RenderWarnings renders pipeline warnings, if any.
func (r *Renderer) RenderWarnings(warnings []string) {
	for _, w := range warnings {
		r.Warning(w)
	}
}

// RenderReport renders the analysis report.
func (r *Renderer) RenderReport(rep analyze.Report) {
	if r.format == FormatJSON {
		_ = r.RenderJSON(rep)
		return
	}

	r.RenderKeyValue("Word Count", fmt.Sprintf("%d", rep.WordCount))
	r.RenderKeyValue("Sentence Count", fmt.Sprintf("%d", rep.SentenceCount))
	r.RenderKeyValue("Reading Level", fmt.Sprintf("%.1f grade", rep.ReadingLevel))
	r.RenderKeyValue("Reading Ease", fmt.Sprintf("%.1f", rep.ReadingEase))
	r.RenderKeyValue("Avg Sentence Length", fmt.Sprintf("%.1f words", rep.AvgSentenceLength))

	for _, t := range rep.Targets {
		label := fmt.Sprintf("Target %s", t.Metric)
		r.RenderKeyValue(label, fmt.Sprintf("%.1f (actual %.1f, %s)", t.Target, t.Actual, t.Status))
	}

	if len(rep.Keywords) > 0 {
		fmt.Fprintln(r.writer)
		rows := make([][]string, 0, len(rep.Keywords))
		for _, kw := range rep.Keywords {
			rows = append(rows, []string{
				kw.Keyword,
				fmt.Sprintf("%d", kw.Count),
				fmt.Sprintf("%.2f%%", kw.Density),
				fmt.Sprintf("%d", kw.InBold),
				fmt.Sprintf("%d", kw.InHeadings),
			})
		}
		r.RenderTable([]string{"Keyword", "Count", "Density", "In Bold", "In Headings"}, rows)
	}
}

// RenderDiff renders a unified diff of the document text before and after
// normalization.
func (r *Renderer) RenderDiff(before, after string) {
	if before == after {
		r.RenderText("No changes.")
		return
	}
	diff := udiff.Unified("before", "after", before, after)
	if r.noColor || r.format != FormatTable {
		fmt.Fprint(r.writer, diff)
		return
	}
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			green.Fprint(r.writer, line)
		case strings.HasPrefix(line, "-"):
			red.Fprint(r.writer, line)
		default:
			fmt.Fprint(r.writer, line)
		}
	}
}

// Truncate truncates a string to the specified length.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
