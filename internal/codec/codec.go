// Package codec serializes converted topology documents.
package codec

import (
	"fmt"
	"io"

	"topoconvert/internal/domain"
)

// Exporter writes a converted document in one output format.
type Exporter interface {
	Export(doc *domain.Document, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format identifier.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "json", "":
		return NewJSONExporter(), nil
	case "yaml":
		return NewYAMLExporter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
