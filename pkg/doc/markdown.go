// markdown.go loads Markdown into the run-level document model and renders it
// back out, mapping emphasis spans onto formatting descriptors.
package doc

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown parses Markdown source into a Document. Each paragraph or
// heading becomes one Paragraph, including ones nested inside lists and block
// quotes; strong and emphasis spans map to bold and italic run formats.
// Headings carry a "Heading N" style.
func FromMarkdown(source []byte) (*Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	out := &Document{}
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Paragraph:
			para := inlineRuns(n, source, Format{})
			if len(para.Runs) > 0 {
				out.Paragraphs = append(out.Paragraphs, para)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			para := inlineRuns(n, source, Format{Bold: true})
			para.Style = fmt.Sprintf("Heading %d", n.Level)
			if len(para.Runs) > 0 {
				out.Paragraphs = append(out.Paragraphs, para)
			}
			return ast.WalkSkipChildren, nil
		case *ast.TextBlock:
			para := inlineRuns(n, source, Format{})
			if len(para.Runs) > 0 {
				out.Paragraphs = append(out.Paragraphs, para)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// inlineRuns walks a block node's inline children and collects formatted runs.
func inlineRuns(block ast.Node, source []byte, base Format) Paragraph {
	var para Paragraph

	var walk func(n ast.Node, f Format)
	walk = func(n ast.Node, f Format) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch cn := c.(type) {
			case *ast.Text:
				appendRun(&para, string(cn.Segment.Value(source)), f)
				if cn.SoftLineBreak() || cn.HardLineBreak() {
					appendRun(&para, " ", f)
				}
			case *ast.Emphasis:
				ef := f
				if cn.Level >= 2 {
					ef.Bold = true
				} else {
					ef.Italic = true
				}
				walk(cn, ef)
			case *ast.CodeSpan:
				// Code spans are carried through as plain text; the rule
				// pipeline protects them via the exclusion machinery.
				appendRun(&para, string(cn.Text(source)), f)
			default:
				walk(cn, f)
			}
		}
	}
	walk(block, base)
	return para
}

// appendRun adds text to the paragraph, merging into the previous run when the
// format is identical so loaded runs are always maximal.
func appendRun(p *Paragraph, text string, f Format) {
	if text == "" {
		return
	}
	if n := len(p.Runs); n > 0 && p.Runs[n-1].Format == f {
		p.Runs[n-1].Text += text
		return
	}
	p.Runs = append(p.Runs, Run{Text: text, Format: f})
}

// ToMarkdown renders a Document back to Markdown. Bold and italic run formats
// become strong/emphasis markers; heading styles become ATX headings. Other
// descriptor fields (font, size, color) have no Markdown encoding and are
// dropped, which is why the JSON codec is the lossless round-trip format.
func ToMarkdown(d *Document) string {
	var b strings.Builder
	for i := range d.Paragraphs {
		p := &d.Paragraphs[i]
		if i > 0 {
			b.WriteString("\n\n")
		}
		if lvl := headingLevel(p.Style); lvl > 0 {
			b.WriteString(strings.Repeat("#", lvl))
			b.WriteByte(' ')
			// Headings are already rendered bold by Markdown itself.
			b.WriteString(p.Text())
			continue
		}
		for _, r := range p.Runs {
			b.WriteString(markdownRun(r))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func markdownRun(r Run) string {
	text := r.Text
	if text == "" {
		return ""
	}
	// Emphasis markers must hug non-space text; move edge whitespace outside.
	lead := text[:len(text)-len(strings.TrimLeft(text, " "))]
	trail := text[len(strings.TrimRight(text, " ")):]
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	switch {
	case r.Format.Bold && r.Format.Italic:
		core = "***" + core + "***"
	case r.Format.Bold:
		core = "**" + core + "**"
	case r.Format.Italic:
		core = "*" + core + "*"
	}
	return lead + core + trail
}

func headingLevel(style string) int {
	var lvl int
	if n, err := fmt.Sscanf(style, "Heading %d", &lvl); err == nil && n == 1 && lvl >= 1 && lvl <= 6 {
		return lvl
	}
	return 0
}
