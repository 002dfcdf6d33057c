package doc

import (
	"encoding/json"
	"fmt"
)

// FromJSON decodes a Document from its JSON form. JSON is the lossless
// interchange format: every run boundary and descriptor field survives a
// round trip, unlike Markdown which only encodes bold/italic.
func FromJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse document JSON: %w", err)
	}
	return &d, nil
}

// ToJSON encodes the document as indented JSON.
func ToJSON(d *Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document JSON: %w", err)
	}
	return append(data, '\n'), nil
}
