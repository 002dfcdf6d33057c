package docfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyops/copycheck/pkg/doc"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Markdown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.md", "# Title\n\nHello **bold** world.\n")

	d, err := Load(path)
	require.NoError(t, err)

	require.Len(t, d.Paragraphs, 2)
	assert.Equal(t, "Heading 1", d.Paragraphs[0].Style)
	assert.Equal(t, "Hello bold world.", d.Paragraphs[1].Text())
}

func TestLoad_UnknownExtensionTreatedAsMarkdown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.txt", "Just some text.")

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Paragraphs, 1)
	assert.Equal(t, "Just some text.", d.Text())
}

func TestLoad_HTML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.html", "<p>Call <strong>now</strong> please</p>")

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Paragraphs, 1)
	assert.Equal(t, "Call now please", d.Paragraphs[0].Text())

	var bold []string
	for _, r := range d.Paragraphs[0].Runs {
		if r.Format.Bold {
			bold = append(bold, r.Text)
		}
	}
	assert.Equal(t, []string{"now"}, bold)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestSaveAndLoad_JSONRoundTrip(t *testing.T) {
	d := &doc.Document{Paragraphs: []doc.Paragraph{
		{Runs: []doc.Run{
			{Text: "Styled", Format: doc.Format{Bold: true, Font: "Georgia", Size: 11}},
			{Text: " text", Format: doc.Format{}},
		}},
	}}

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Save(d, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestEncode_MarkdownByDefault(t *testing.T) {
	d := &doc.Document{}
	d.AddParagraph("Hello there.", doc.Format{})

	data, err := Encode(d, "out.md")
	require.NoError(t, err)
	assert.Equal(t, "Hello there.\n", string(data))
}
