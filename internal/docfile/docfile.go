// Package docfile loads and writes documents in the supported container
// formats, selected by file extension. It is the I/O collaborator around the
// core: the pipeline itself never touches the filesystem.
package docfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/copyops/copycheck/pkg/doc"
)

// Load reads a document from path. Markdown (.md, .markdown), HTML (.html,
// .htm), and the run-level JSON format (.json) are supported; anything else
// is treated as Markdown.
func Load(path string) (*doc.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch ext(path) {
	case ".json":
		return doc.FromJSON(data)
	case ".html", ".htm":
		return doc.FromHTML(data)
	default:
		return doc.FromMarkdown(data)
	}
}

// Encode renders the document in the format implied by path's extension.
func Encode(d *doc.Document, path string) ([]byte, error) {
	switch ext(path) {
	case ".json":
		return doc.ToJSON(d)
	default:
		// HTML output is not supported; normalized HTML input is written
		// back as Markdown.
		return []byte(doc.ToMarkdown(d)), nil
	}
}

// Save writes the document next to the given path in its format.
func Save(d *doc.Document, path string) error {
	data, err := Encode(d, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
