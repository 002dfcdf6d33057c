package doc

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FromHTML loads an HTML fragment or page into a Document. The HTML is first
// converted to Markdown, then loaded through the Markdown path so emphasis
// and headings survive as run formats and paragraph styles.
func FromHTML(source []byte) (*Document, error) {
	if len(source) == 0 {
		return &Document{}, nil
	}
	markdown, err := htmltomarkdown.ConvertString(string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML: %w", err)
	}
	return FromMarkdown([]byte(markdown))
}
