package convert

import (
	"fmt"
	"strconv"
	"strings"

	"topoconvert/internal/catalog"
	"topoconvert/internal/domain"
)

// ifaceRef is a raw router interface reference, deferred until the
// node's ports exist.
type ifaceRef struct {
	from string // interface key, e.g. "f0/0"
	to   string // destination string, e.g. "R2 f0/0" or "nio_udp:..."
}

// switchPort builds a numbered switch port and its symbolic link
// eagerly. The raw value is "<type> <vlan> <dest-device> <dest-port>"
// or "<type> <vlan> <nio-target>".
func (c *Converter) switchPort(node *domain.Node, key, def string) error {
	fields := strings.Split(def, " ")

	var destDevice, destPort string
	switch len(fields) {
	case 4:
		destDevice, destPort = fields[2], fields[3]
	case 3:
		destDevice, destPort = domain.NIO, fields[2]
	default:
		return fmt.Errorf("switch port %s on %q: malformed definition %q", key, node.Name(), def)
	}

	vlan, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("switch port %s on %q: bad vlan %q", key, node.Name(), fields[1])
	}
	num, err := strconv.Atoi(key)
	if err != nil {
		return fmt.Errorf("switch port %q on %q: %w", key, node.Name(), err)
	}

	port := &domain.Port{
		ID:         c.alloc.NextPortID(),
		Name:       key,
		PortNumber: intPtr(num),
		Type:       fields[0],
		VLAN:       intPtr(vlan),
	}
	node.Ports = append(node.Ports, port)

	c.links = append(c.links, &domain.SymbolicLink{
		SourceNodeID:   node.ID,
		SourcePortID:   port.ID,
		SourcePortName: port.Name,
		SourceDevice:   node.Name(),
		DestDevice:     destDevice,
		DestPort:       expandDestPort(destPort),
	})
	return nil
}

// expandDestPort rewrites a destination port reference to its long form
// when it looks like a router interface; anything else (switch port
// numbers, NIO targets) passes through untouched.
func expandDestPort(port string) string {
	if !catalog.InterfaceRe.MatchString(port) {
		return port
	}
	long, err := catalog.ExpandInterface(port)
	if err != nil {
		return port
	}
	return long
}

// resolveRouterInterfaces turns the deferred interface references of a
// router into symbolic links. A reference whose expanded name matches
// no port degrades to source-port 0 with a warning; it never aborts the
// run.
func (c *Converter) resolveRouterInterfaces(node *domain.Node, interfaces []ifaceRef) error {
	for _, ref := range interfaces {
		longName, err := catalog.ExpandInterface(ref.from)
		if err != nil {
			return fmt.Errorf("node %q: %w", node.Name(), err)
		}

		srcPort := 0
		if p := node.PortByName(longName); p != nil {
			srcPort = p.ID
		} else {
			c.warnf("node %s: interface %s matches no computed port", node.Name(), longName)
		}

		fields := strings.Fields(ref.to)
		var destDevice, destPort string
		switch len(fields) {
		case 0:
			c.warnf("node %s: interface %s has an empty destination", node.Name(), ref.from)
			continue
		case 2:
			destDevice, destPort = fields[0], fields[1]
		default:
			destDevice, destPort = domain.NIO, fields[0]
		}

		c.links = append(c.links, &domain.SymbolicLink{
			SourceNodeID:   node.ID,
			SourcePortID:   srcPort,
			SourcePortName: longName,
			SourceDevice:   node.Name(),
			DestDevice:     destDevice,
			DestPort:       expandDestPort(destPort),
		})
	}
	return nil
}
