package convert

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"topoconvert/internal/catalog"
	"topoconvert/internal/domain"
)

// synthesizeNode builds one fully specified node from a classified
// device: identifiers, the computed port list and the carried-over
// properties. Device properties are consumed in sorted-key order so
// port-id allocation is reproducible.
func (c *Converter) synthesizeNode(dev *domain.Device, hypervisors map[int]*domain.HypervisorConfig) (*domain.Node, error) {
	node := &domain.Node{
		ID:         dev.NodeID,
		ServerID:   1,
		Label:      domain.Label{Text: dev.Name, X: 15, Y: -25},
		Ports:      []*domain.Port{},
		Properties: map[string]any{"name": dev.Name},
	}

	var (
		npe         string
		chassis     string
		connections string
		interfaces  []ifaceRef
	)

	if dev.Type == domain.DeviceRouter {
		node.RouterID = node.ID
		if dev.HypervisorID != nil {
			conf, ok := hypervisors[*dev.HypervisorID]
			if !ok {
				return nil, fmt.Errorf("router %q: missing hypervisor configuration %d", dev.Name, *dev.HypervisorID)
			}
			if conf.Image != "" {
				node.Properties["image"] = filepath.Base(conf.Image)
			}
			if conf.IdlePC != "" {
				node.Properties["idlepc"] = conf.IdlePC
			}
			if conf.RAM != "" {
				node.Properties["ram"] = scalarValue(conf.RAM)
			}
			npe = conf.NPE
			chassis = conf.Chassis
		}
	}

	for _, prop := range dev.Props {
		k, v := prop.Key, prop.Value
		switch {
		case k == "x":
			node.X = parseFloat(v)
		case k == "y":
			node.Y = parseFloat(v)
		case k == "aux" || k == "console":
			node.Properties[k] = scalarValue(v)
		case strings.HasPrefix(k, "slot"):
			// The c7200 slot 0 is supplied by the default I/O card rule.
			if dev.Model == "c7200" && k == "slot0" {
				continue
			}
			node.Properties[k] = v
		case strings.HasPrefix(k, "wic"):
			node.Properties["wic"+k[len(k)-1:]] = v
		case k == "connections":
			connections = v
		case k == "cnfg":
			renamed := fmt.Sprintf("i%d_startup-config.cfg", node.ID)
			node.Properties["startup_config"] = renamed
			c.configs = append(c.configs, domain.ConfigPair{Old: v, New: renamed})
		case catalog.InterfaceRe.MatchString(k):
			interfaces = append(interfaces, ifaceRef{from: k, to: v})
		case catalog.SwitchPortRe.MatchString(k):
			if err := c.switchPort(node, k, v); err != nil {
				return nil, err
			}
		}
	}

	switch dev.Type {
	case domain.DeviceRouter:
		node.Description = "Router " + dev.Model
		node.Type = strings.ToUpper(dev.Model)
		if err := c.routerPorts(node, dev.Model, chassis, npe); err != nil {
			return nil, err
		}
		// Interfaces resolve only now: the source port has to exist.
		if err := c.resolveRouterInterfaces(node, interfaces); err != nil {
			return nil, err
		}
	case domain.DeviceCloud:
		node.Description = string(dev.Type)
		node.Type = string(dev.Type)
		if err := c.cloudPorts(node, connections); err != nil {
			return nil, err
		}
	default:
		node.Description = string(dev.Type)
		node.Type = string(dev.Type)
	}

	return node, nil
}

// routerPorts computes the full hardware port list: motherboard ports
// from the model/chassis table, adapter cards in ascending slot order,
// the hard-coded c7200 default I/O card and any WIC cards. The 3660
// chassis seeds its Leopard-2FE into slot 0 before the slot loop runs.
func (c *Converter) routerPorts(node *domain.Node, model, chassis, npe string) error {
	if model == "c3600" {
		node.Properties["chassis"] = chassis
		if chassis == "3660" {
			if _, ok := node.Properties["slot0"]; !ok {
				node.Properties["slot0"] = "Leopard-2FE"
			}
		}
	}

	spec, err := catalog.MotherboardPorts(model, chassis)
	if err != nil {
		return fmt.Errorf("node %q: %w", node.Name(), err)
	}
	for i := 0; i < spec.Ports; i++ {
		long, err := catalog.LongName(spec.Type)
		if err != nil {
			return fmt.Errorf("node %q: %w", node.Name(), err)
		}
		node.Ports = append(node.Ports, &domain.Port{
			ID:         c.alloc.NextPortID(),
			Name:       fmt.Sprintf("%s0/%d", long, i),
			PortNumber: intPtr(i),
			SlotNumber: intPtr(0),
		})
	}

	for slot := 0; slot <= 6; slot++ {
		adapter, ok := node.Properties[fmt.Sprintf("slot%d", slot)].(string)
		if !ok {
			continue
		}
		if err := c.adapterPorts(node, adapter, slot, 0); err != nil {
			return err
		}
	}

	if model == "c7200" {
		adapter := "C7200-IO-2FE"
		if npe == "npe-g2" {
			adapter = "C7200-IO-GE-E"
		}
		if err := c.adapterPorts(node, adapter, 0, 0); err != nil {
			return err
		}
	}

	// Dynamips numbers WIC ports from a multiple of 16; the cards
	// always sit in adapter slot 0.
	for wic := 0; wic <= 2; wic++ {
		adapter, ok := node.Properties[fmt.Sprintf("wic%d", wic)].(string)
		if !ok {
			continue
		}
		if err := c.adapterPorts(node, adapter, 0, 16*(wic+1)); err != nil {
			return err
		}
	}

	return nil
}

// adapterPorts appends the ports supplied by one adapter card. base
// offsets the numeric port number without changing the display name.
func (c *Converter) adapterPorts(node *domain.Node, adapter string, slot, base int) error {
	spec, err := catalog.Adapter(adapter)
	if err != nil {
		return fmt.Errorf("node %q: %w", node.Name(), err)
	}
	long, err := catalog.LongName(spec.Type)
	if err != nil {
		return fmt.Errorf("node %q adapter %q: %w", node.Name(), adapter, err)
	}
	for i := 0; i < spec.Ports; i++ {
		node.Ports = append(node.Ports, &domain.Port{
			ID:         c.alloc.NextPortID(),
			Name:       fmt.Sprintf("%s%d/%d", long, slot, i),
			PortNumber: intPtr(base + i),
			SlotNumber: intPtr(slot),
		})
	}
	return nil
}

// cloudPorts splits the space-separated connection strings of a cloud
// device into stub ports and the nios property. Tokens are processed in
// sorted order for determinism.
func (c *Converter) cloudPorts(node *domain.Node, connections string) error {
	nios := []string{}
	if connections != "" {
		tokens := strings.Split(connections, " ")
		sort.Strings(tokens)
		for _, tok := range tokens {
			parts := strings.Split(tok, ":")
			var nio string
			switch len(parts) {
			case 4:
				nio = strings.Join(parts[2:4], ":")
			case 6:
				nio = strings.Join(parts[2:6], ":")
			default:
				return fmt.Errorf("cloud %q: unknown connection string %q", node.Name(), tok)
			}
			nios = append(nios, nio)
			node.Ports = append(node.Ports, &domain.Port{
				ID:   c.alloc.NextPortID(),
				Name: nio,
				Stub: true,
			})
		}
	}
	node.Properties["nios"] = nios
	return nil
}

// scalarValue keeps integer-shaped legacy values as integers in the
// document and everything else as strings.
func scalarValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

func intPtr(n int) *int {
	return &n
}
