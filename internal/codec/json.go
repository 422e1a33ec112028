package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"topoconvert/internal/domain"
)

// JSONExporter writes the native document format.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the exporter format identifier.
func (e *JSONExporter) Format() string {
	return "json"
}

// Export writes the document as indented JSON.
func (e *JSONExporter) Export(doc *domain.Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
