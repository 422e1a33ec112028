package convert

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"topoconvert/internal/domain"
	"topoconvert/internal/legacy"
)

// Options configures a Converter.
type Options struct {
	// Server is the single server entry written into the document.
	// Zero value means local server 127.0.0.1:8000 with id 1.
	Server domain.Server
	Logger *logrus.Logger
}

// Converter runs one legacy topology through the transformation
// pipeline. A Converter is single-use: its allocator and link state
// belong to exactly one run.
type Converter struct {
	alloc  *Allocator
	log    *logrus.Logger
	server domain.Server

	links    []*domain.SymbolicLink
	configs  []domain.ConfigPair
	warnings []string
}

// New returns a converter ready for one run.
func New(opts Options) *Converter {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Server.Host == "" {
		opts.Server = domain.Server{Host: "127.0.0.1", ID: 1, Local: true, Port: 8000}
	}
	return &Converter{
		alloc:  NewAllocator(),
		log:    opts.Logger,
		server: opts.Server,
	}
}

// Result is the complete output of a conversion run: the assembled
// document plus the side products consumed by external collaborators.
type Result struct {
	Document *domain.Document
	Nodes    []*domain.Node
	Links    []*domain.Link
	// Configs are the startup-config rename pairs for the asset copier.
	Configs []domain.ConfigPair
	// Images are the pixmap paths referenced by the artwork.
	Images []string
	// Warnings are the soft resolution failures recorded during the run.
	Warnings []string
}

// Convert transforms a parsed legacy topology into a document named
// name. Classification and catalog errors abort the run; resolution
// failures degrade to warnings and dangling links.
func (c *Converter) Convert(top legacy.Topology, name string) (*Result, error) {
	cls, err := c.classify(top)
	if err != nil {
		return nil, fmt.Errorf("classify sections: %w", err)
	}

	nodes := make([]*domain.Node, 0, len(cls.devices))
	for _, dev := range cls.devices {
		node, err := c.synthesizeNode(dev, cls.hypervisors)
		if err != nil {
			return nil, fmt.Errorf("synthesize node %q: %w", dev.Name, err)
		}
		nodes = append(nodes, node)
	}

	links := c.finalize(nodes)

	doc := domain.NewDocument(name)
	doc.Topology = domain.Topology{
		Nodes:      nodes,
		Links:      links,
		Servers:    []domain.Server{c.server},
		Notes:      cls.artwork.notes,
		Ellipses:   cls.artwork.ellipses,
		Rectangles: cls.artwork.rectangles,
		Images:     cls.artwork.images,
	}

	c.log.WithFields(logrus.Fields{
		"nodes":    len(nodes),
		"links":    len(links),
		"warnings": len(c.warnings),
	}).Info("topology converted")

	return &Result{
		Document: doc,
		Nodes:    nodes,
		Links:    links,
		Configs:  c.configs,
		Images:   cls.artwork.imagePaths(),
		Warnings: c.warnings,
	}, nil
}

func (c *Converter) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.warnings = append(c.warnings, msg)
	c.log.Warn(msg)
}
