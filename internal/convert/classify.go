package convert

import (
	"fmt"
	"net/netip"
	"sort"
	"strings"

	"topoconvert/internal/catalog"
	"topoconvert/internal/domain"
	"topoconvert/internal/legacy"
)

// dataSection is the artwork/metadata container. Devices found in it
// run without a hypervisor back-reference.
const dataSection = "GNS3-DATA"

// classified is the output of the section classifier: devices in
// node-id order, hypervisor configurations by synthetic id, and the
// artwork collections forwarded to the document.
type classified struct {
	devices     []*domain.Device
	hypervisors map[int]*domain.HypervisorConfig
	artwork     artwork
}

// isHypervisorSection reports whether a section name denotes a
// hypervisor instance: an IPv4/IPv6 address literal, a colon and a port.
func isHypervisorSection(name string) bool {
	addr, _, ok := strings.Cut(name, ":")
	if !ok {
		return false
	}
	_, err := netip.ParseAddr(addr)
	return err == nil
}

// classify walks the validated legacy sections in sorted order and
// separates hypervisor configuration blocks from device blocks. One
// synthetic hypervisor id is consumed per hypervisor-instance section,
// in sorted section-name order; node ids are assigned in sorted section
// then sorted block-key order.
func (c *Converter) classify(top legacy.Topology) (*classified, error) {
	out := &classified{hypervisors: map[int]*domain.HypervisorConfig{}}

	hvID := 0
	nodeID := 1
	for _, secName := range top.SectionNames() {
		isHV := isHypervisorSection(secName)
		if !isHV && secName != dataSection {
			continue
		}
		sec := top[secName]

		for _, key := range sec.BlockNames() {
			blk := sec.Blocks[key]
			switch {
			case isHV && catalog.IsChassis(key):
				conf, err := buildHypervisorConfig(hvID, key, blk)
				if err != nil {
					return nil, err
				}
				out.hypervisors[hvID] = conf

			case secName == dataSection && isArtworkBlock(key):
				if err := out.artwork.add(key, blk); err != nil {
					return nil, err
				}

			default:
				dev, err := c.classifyDevice(key, blk, nodeID, hvID, isHV, out.hypervisors)
				if err != nil {
					return nil, err
				}
				out.devices = append(out.devices, dev)
				nodeID++
			}
		}
		if isHV {
			hvID++
		}
	}

	return out, nil
}

func buildHypervisorConfig(id int, chassis string, blk legacy.Block) (*domain.HypervisorConfig, error) {
	model, err := catalog.CanonicalModel(chassis)
	if err != nil {
		return nil, fmt.Errorf("hypervisor configuration %q: %w", chassis, err)
	}
	return &domain.HypervisorConfig{
		ID:      id,
		Model:   model,
		Image:   blk["image"],
		IdlePC:  blk["idlepc"],
		RAM:     blk["ram"],
		NPE:     blk["npe"],
		Chassis: blk["chassis"],
	}, nil
}

func (c *Converter) classifyDevice(key string, blk legacy.Block, nodeID, hvID int,
	isHV bool, hypervisors map[int]*domain.HypervisorConfig) (*domain.Device, error) {

	name, devType, err := SplitDeviceName(key)
	if err != nil {
		return nil, err
	}

	dev := &domain.Device{
		Name:   name,
		Type:   devType,
		NodeID: nodeID,
	}
	if isHV {
		id := hvID
		dev.HypervisorID = &id
	}

	keys := make([]string, 0, len(blk))
	for k := range blk {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "model" {
			dev.Model = blk[k]
			continue
		}
		dev.Props = append(dev.Props, domain.Property{Key: k, Value: blk[k]})
	}

	// Routers resolve their model here: an explicit chassis identifier
	// goes through the canonical transform, otherwise the model is
	// inherited from the owning hypervisor configuration.
	if dev.Type == domain.DeviceRouter && isHV {
		if dev.Model == "" {
			conf, ok := hypervisors[hvID]
			if !ok {
				return nil, fmt.Errorf("router %q: no hypervisor configuration in section", name)
			}
			dev.Model = conf.Model
		} else {
			model, err := catalog.CanonicalModel(dev.Model)
			if err != nil {
				return nil, fmt.Errorf("router %q: %w", name, err)
			}
			dev.Model = model
		}
	}

	return dev, nil
}
