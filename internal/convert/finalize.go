package convert

import (
	"fmt"

	"topoconvert/internal/domain"
)

// finalize resolves every symbolic link's destination, collapses
// mirrored declarations, assigns sequential link ids and back-annotates
// the endpoint ports. This is the only place Port records are mutated
// after creation.
func (c *Converter) finalize(nodes []*domain.Node) []*domain.Link {
	resolved := make([]*domain.Link, 0, len(c.links))
	for _, sl := range c.links {
		link := &domain.Link{
			SourceNodeID: sl.SourceNodeID,
			SourcePortID: sl.SourcePortID,
		}
		link.DestinationNodeID, link.DestinationPortID = resolveDestination(sl.DestDevice, sl.DestPort, nodes)
		if link.DestinationNodeID == nil || link.DestinationPortID == nil {
			c.warnf("link from %s %s: cannot resolve destination %s %s",
				sl.SourceDevice, sl.SourcePortName, sl.DestDevice, sl.DestPort)
		}
		resolved = append(resolved, link)
	}

	// Every cable declared from both ends shows up twice. A link whose
	// destination equals an earlier link's source is the mirror of that
	// link: keep the first declaration, drop all later ones.
	seenSources := make(map[string]bool, len(resolved))
	links := make([]*domain.Link, 0, len(resolved))
	for _, l := range resolved {
		mirror := false
		if l.DestinationNodeID != nil && l.DestinationPortID != nil {
			mirror = seenSources[endpointKey(*l.DestinationNodeID, *l.DestinationPortID)]
		}
		seenSources[endpointKey(l.SourceNodeID, l.SourcePortID)] = true
		if mirror {
			continue
		}
		links = append(links, l)
	}

	for _, l := range links {
		l.ID = c.alloc.NextLinkID()
		annotatePorts(l, nodes)
	}
	return links
}

func endpointKey(nodeID, portID int) string {
	return fmt.Sprintf("%d:%d", nodeID, portID)
}

// resolveDestination maps a textual destination to node and port ids by
// linear scan. The NIO sentinel searches cloud stub ports instead. On a
// name collision the first match in node-id order wins; a missing match
// yields nil ids, a soft failure.
func resolveDestination(device, port string, nodes []*domain.Node) (*int, *int) {
	if device != domain.NIO {
		for _, n := range nodes {
			if n.Name() != device {
				continue
			}
			nodeID := n.ID
			var portID *int
			if p := n.PortByName(port); p != nil {
				id := p.ID
				portID = &id
			}
			return &nodeID, portID
		}
		return nil, nil
	}

	for _, n := range nodes {
		if n.Type != string(domain.DeviceCloud) {
			continue
		}
		if p := n.PortByName(port); p != nil && p.Stub {
			nodeID, portID := n.ID, p.ID
			return &nodeID, &portID
		}
	}
	return nil, nil
}

// annotatePorts writes the finalized link id back onto both endpoint
// ports.
func annotatePorts(l *domain.Link, nodes []*domain.Node) {
	for _, n := range nodes {
		if n.ID == l.SourceNodeID {
			if p := n.PortByID(l.SourcePortID); p != nil {
				id := l.ID
				p.LinkID = &id
			}
		}
		if l.DestinationNodeID != nil && l.DestinationPortID != nil && n.ID == *l.DestinationNodeID {
			if p := n.PortByID(*l.DestinationPortID); p != nil {
				id := l.ID
				p.LinkID = &id
			}
		}
	}
}
