package codec

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"topoconvert/internal/domain"
)

func testDocument() *domain.Document {
	doc := domain.NewDocument("lab")
	port := &domain.Port{ID: 1, Name: "FastEthernet0/0"}
	doc.Topology = domain.Topology{
		Nodes: []*domain.Node{{
			ID:         1,
			ServerID:   1,
			Type:       "C7200",
			Label:      domain.Label{Text: "R1", X: 15, Y: -25},
			Ports:      []*domain.Port{port},
			Properties: map[string]any{"name": "R1"},
		}},
		Links:   []*domain.Link{},
		Servers: []domain.Server{{Host: "127.0.0.1", ID: 1, Local: true, Port: 8000}},
	}
	return doc
}

func TestForFormat(t *testing.T) {
	t.Run("json is the default", func(t *testing.T) {
		e, err := ForFormat("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Format() != "json" {
			t.Errorf("expected json, got %s", e.Format())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		e, err := ForFormat("yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Format() != "yaml" {
			t.Errorf("expected yaml, got %s", e.Format())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := ForFormat("xml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONExporter().Export(testDocument(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "lab" || decoded["type"] != "topology" || decoded["version"] != "1.0" {
		t.Errorf("unexpected document envelope: %v", decoded)
	}
	if decoded["resources_type"] != "local" {
		t.Errorf("expected resources_type local, got %v", decoded["resources_type"])
	}

	t.Run("omits empty artwork", func(t *testing.T) {
		topo := decoded["topology"].(map[string]any)
		if _, ok := topo["notes"]; ok {
			t.Error("expected notes to be omitted when empty")
		}
	})
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLExporter().Export(testDocument(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "name: lab") {
		t.Errorf("expected document name in output:\n%s", out)
	}
	if !strings.Contains(out, "fastethernet0/0") && !strings.Contains(out, "FastEthernet0/0") {
		t.Errorf("expected port name in output:\n%s", out)
	}
}
