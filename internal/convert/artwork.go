package convert

import (
	"fmt"
	"strconv"
	"strings"

	"topoconvert/internal/domain"
	"topoconvert/internal/legacy"
)

// artwork collects the annotation records found in the GNS3-DATA
// section. They are forwarded into the document unchanged.
type artwork struct {
	notes      []domain.Note
	ellipses   []domain.Shape
	rectangles []domain.Shape
	images     []domain.Image
}

func isArtworkBlock(key string) bool {
	return strings.HasPrefix(key, "NOTE") ||
		strings.HasPrefix(key, "SHAPE") ||
		strings.HasPrefix(key, "PIXMAP")
}

func (a *artwork) add(key string, blk legacy.Block) error {
	switch {
	case strings.HasPrefix(key, "NOTE"):
		a.notes = append(a.notes, domain.Note{
			Text:     blk["text"],
			X:        parseFloat(blk["x"]),
			Y:        parseFloat(blk["y"]),
			Color:    blk["color"],
			Rotation: parseInt(blk["rotation"]),
		})
	case strings.HasPrefix(key, "SHAPE"):
		shape := domain.Shape{
			X:           parseFloat(blk["x"]),
			Y:           parseFloat(blk["y"]),
			Width:       parseFloat(blk["width"]),
			Height:      parseFloat(blk["height"]),
			FillColor:   blk["fill_color"],
			BorderColor: blk["border_color"],
			Rotation:    parseInt(blk["rotation"]),
		}
		switch blk["type"] {
		case "ellipse":
			a.ellipses = append(a.ellipses, shape)
		case "rectangle":
			a.rectangles = append(a.rectangles, shape)
		default:
			return fmt.Errorf("artwork %q: unknown shape type %q", key, blk["type"])
		}
	case strings.HasPrefix(key, "PIXMAP"):
		a.images = append(a.images, domain.Image{
			Path: blk["path"],
			X:    parseFloat(blk["x"]),
			Y:    parseFloat(blk["y"]),
		})
	}
	return nil
}

// imagePaths lists the referenced pixmap files for the asset copier.
func (a *artwork) imagePaths() []string {
	paths := make([]string, 0, len(a.images))
	for _, img := range a.images {
		paths = append(paths, img.Path)
	}
	return paths
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
