// Package catalog holds the static hardware lookup tables used when
// converting a legacy topology: motherboard port counts per router
// model/chassis, adapter and WIC card port counts, the short to long
// interface name mapping and the chassis to canonical model transform.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// PortSpec describes the ports supplied by a chassis or adapter card.
type PortSpec struct {
	Ports int
	Type  string // single-letter port-type code, key into portTypes
}

var (
	// ErrUnknownModel is returned when a model/chassis pair has no
	// motherboard entry.
	ErrUnknownModel = fmt.Errorf("unknown model or chassis")
	// ErrUnknownAdapter is returned when an adapter card name has no entry.
	ErrUnknownAdapter = fmt.Errorf("unknown adapter")
	// ErrUnknownPortType is returned when a port-type code has no long name.
	ErrUnknownPortType = fmt.Errorf("unknown port type")
	// ErrUnknownChassis is returned when a chassis identifier has no
	// canonical model.
	ErrUnknownChassis = fmt.Errorf("unknown chassis")
)

// modelMatrix maps router model -> chassis -> motherboard ports. Models
// without chassis variants use the empty-string chassis key.
var modelMatrix = map[string]map[string]PortSpec{
	"c1700": {
		"1720": {Ports: 1, Type: "F"},
		"1721": {Ports: 1, Type: "F"},
		"1750": {Ports: 1, Type: "F"},
		"1751": {Ports: 1, Type: "F"},
		"1760": {Ports: 1, Type: "F"},
	},
	"c2600": {
		"2610":   {Ports: 1, Type: "E"},
		"2611":   {Ports: 2, Type: "E"},
		"2620":   {Ports: 1, Type: "F"},
		"2621":   {Ports: 2, Type: "F"},
		"2610XM": {Ports: 1, Type: "F"},
		"2611XM": {Ports: 2, Type: "F"},
		"2620XM": {Ports: 1, Type: "F"},
		"2621XM": {Ports: 2, Type: "F"},
		"2650XM": {Ports: 1, Type: "F"},
		"2651XM": {Ports: 2, Type: "F"},
	},
	"c2691": {
		"": {Ports: 2, Type: "F"},
	},
	"c3600": {
		// The 3660 gets its FastEthernet ports from the Leopard-2FE
		// card seeded into slot 0, not from the motherboard.
		"3620": {Ports: 0},
		"3640": {Ports: 0},
		"3660": {Ports: 0},
	},
	"c3725": {
		"": {Ports: 2, Type: "F"},
	},
	"c3745": {
		"": {Ports: 2, Type: "F"},
	},
	"c7200": {
		// All 7200 ports come from the I/O controller in slot 0.
		"": {Ports: 0},
	},
}

// adapterMatrix maps adapter and WIC card names to the ports they supply.
var adapterMatrix = map[string]PortSpec{
	"C7200-IO-2FE":  {Ports: 2, Type: "F"},
	"C7200-IO-FE":   {Ports: 1, Type: "F"},
	"C7200-IO-GE-E": {Ports: 1, Type: "G"},
	"Leopard-2FE":   {Ports: 2, Type: "F"},
	"GT96100-FE":    {Ports: 2, Type: "F"},
	"NM-16ESW":      {Ports: 16, Type: "F"},
	"NM-1E":         {Ports: 1, Type: "E"},
	"NM-1FE-TX":     {Ports: 1, Type: "F"},
	"NM-4E":         {Ports: 4, Type: "E"},
	"NM-4T":         {Ports: 4, Type: "S"},
	"PA-2FE-TX":     {Ports: 2, Type: "F"},
	"PA-4E":         {Ports: 4, Type: "E"},
	"PA-4T+":        {Ports: 4, Type: "S"},
	"PA-8E":         {Ports: 8, Type: "E"},
	"PA-8T":         {Ports: 8, Type: "S"},
	"PA-A1":         {Ports: 1, Type: "A"},
	"PA-FE-TX":      {Ports: 1, Type: "F"},
	"PA-GE":         {Ports: 1, Type: "G"},
	"PA-POS-OC3":    {Ports: 1, Type: "P"},
	"WIC-1ENET":     {Ports: 1, Type: "E"},
	"WIC-1T":        {Ports: 1, Type: "S"},
	"WIC-2T":        {Ports: 2, Type: "S"},
}

// portTypes maps a short interface prefix to its long family name.
var portTypes = map[string]string{
	"G":  "GigabitEthernet",
	"M":  "Management",
	"F":  "FastEthernet",
	"E":  "Ethernet",
	"S":  "Serial",
	"A":  "ATM",
	"P":  "POS",
	"I":  "IDS-Sensor",
	"AN": "Analysis-Module",
}

// modelTransform maps legacy chassis identifiers to canonical model codes.
var modelTransform = map[string]string{
	"2691": "c2691",
	"3725": "c3725",
	"3745": "c3745",
	"7200": "c7200",
}

func init() {
	for _, chassis := range []string{"1720", "1721", "1750", "1751", "1760"} {
		modelTransform[chassis] = "c1700"
	}
	for _, chassis := range []string{"2610", "2611", "2620", "2621",
		"2610XM", "2611XM", "2620XM", "2621XM", "2650XM", "2651XM"} {
		modelTransform[chassis] = "c2600"
	}
	for _, chassis := range []string{"3620", "3640", "3660"} {
		modelTransform[chassis] = "c3600"
	}
}

// InterfaceRe matches legacy router interface keys such as "f0/0" or
// "se1/2": a known short prefix followed by slot and port numbers.
var InterfaceRe = regexp.MustCompile(
	`(?i)^(g|gi|f|fa|a|at|s|se|e|et|p|po|i|id|IDS-Sensor|an|Analysis-Module)([0-9]+)/([0-9]+)$`)

// SwitchPortRe matches a purely numeric key, the legacy form of an
// Ethernet switch port definition.
var SwitchPortRe = regexp.MustCompile(`^[0-9]+$`)

// MotherboardPorts returns the motherboard port specification for a
// model/chassis pair. Models without chassis variants are looked up with
// an empty chassis.
func MotherboardPorts(model, chassis string) (PortSpec, error) {
	chassisMap, ok := modelMatrix[model]
	if !ok {
		return PortSpec{}, fmt.Errorf("model %q: %w", model, ErrUnknownModel)
	}
	spec, ok := chassisMap[chassis]
	if !ok {
		return PortSpec{}, fmt.Errorf("model %q chassis %q: %w", model, chassis, ErrUnknownModel)
	}
	return spec, nil
}

// Adapter returns the port specification for an adapter or WIC card.
func Adapter(name string) (PortSpec, error) {
	spec, ok := adapterMatrix[name]
	if !ok {
		return PortSpec{}, fmt.Errorf("adapter %q: %w", name, ErrUnknownAdapter)
	}
	return spec, nil
}

// LongName expands a short port-type code ("F") to its long interface
// family name ("FastEthernet").
func LongName(code string) (string, error) {
	long, ok := portTypes[strings.ToUpper(code)]
	if !ok {
		return "", fmt.Errorf("code %q: %w", code, ErrUnknownPortType)
	}
	return long, nil
}

// ShortCode is the inverse of LongName. It reports the short code for a
// long interface family name.
func ShortCode(long string) (string, bool) {
	for code, name := range portTypes {
		if name == long {
			return code, true
		}
	}
	return "", false
}

// CanonicalModel translates a legacy chassis identifier into its
// canonical model code (e.g. "3640" -> "c3600").
func CanonicalModel(chassis string) (string, error) {
	model, ok := modelTransform[chassis]
	if !ok {
		return "", fmt.Errorf("chassis %q: %w", chassis, ErrUnknownChassis)
	}
	return model, nil
}

// IsChassis reports whether a legacy block key names a router chassis,
// which marks the block as a hypervisor configuration block.
func IsChassis(key string) bool {
	_, ok := modelTransform[key]
	return ok
}

// ExpandInterface rewrites a short interface reference ("f0/0") to its
// long form ("FastEthernet0/0"). The prefix is resolved against the
// port-type table, trying the whole prefix first and falling back to its
// first letter, so both "f0/0" and "fa0/0" expand to FastEthernet.
func ExpandInterface(name string) (string, error) {
	m := InterfaceRe.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("interface %q: %w", name, ErrUnknownPortType)
	}
	prefix := strings.ToUpper(m[1])
	long, ok := portTypes[prefix]
	if !ok {
		long, ok = portTypes[prefix[:1]]
	}
	if !ok {
		return "", fmt.Errorf("interface %q: %w", name, ErrUnknownPortType)
	}
	return fmt.Sprintf("%s%s/%s", long, m[2], m[3]), nil
}
