// Package legacy reads the old ini-style topology format: top-level
// [section] headers, nested [[block]] headers and key = value scalar
// lines. It performs shape validation only; the meaning of sections and
// keys is the converter's business.
package legacy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Block is a flat key/value mapping from one nested [[block]].
type Block map[string]string

// Section is one top-level [section]: loose scalars plus named blocks.
type Section struct {
	Scalars map[string]string
	Blocks  map[string]Block
}

// Topology is the parsed legacy file, keyed by section name.
type Topology map[string]*Section

// SectionNames returns the section names in sorted order. Conversion
// iterates sections in this order to keep node ids reproducible.
func (t Topology) SectionNames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BlockNames returns the block names of a section in sorted order.
func (s *Section) BlockNames() []string {
	names := make([]string, 0, len(s.Blocks))
	for name := range s.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and parses a legacy topology file.
func Load(path string) (Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open topology: %w", err)
	}
	defer f.Close()

	top, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return top, nil
}

// Parse parses legacy topology text. Malformed lines, empty headers and
// blocks outside a section are errors reported with line numbers.
func Parse(r io.Reader) (Topology, error) {
	top := Topology{}

	var (
		section *Section
		block   Block
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "[["):
			if !strings.HasSuffix(line, "]]") {
				return nil, fmt.Errorf("line %d: unterminated block header", lineNo)
			}
			name := strings.TrimSpace(line[2 : len(line)-2])
			if name == "" {
				return nil, fmt.Errorf("line %d: empty block header", lineNo)
			}
			if section == nil {
				return nil, fmt.Errorf("line %d: block %q outside any section", lineNo, name)
			}
			block = Block{}
			section.Blocks[name] = block

		case strings.HasPrefix(line, "["):
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated section header", lineNo)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("line %d: empty section header", lineNo)
			}
			section = &Section{
				Scalars: map[string]string{},
				Blocks:  map[string]Block{},
			}
			top[name] = section
			block = nil

		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				return nil, fmt.Errorf("line %d: expected key = value, got %q", lineNo, line)
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" {
				return nil, fmt.Errorf("line %d: empty key", lineNo)
			}
			switch {
			case block != nil:
				block[key] = value
			case section != nil:
				section.Scalars[key] = value
			default:
				return nil, fmt.Errorf("line %d: value outside any section", lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read topology: %w", err)
	}

	return top, nil
}
