package domain

// DeviceType identifies the kind of legacy device. The set is closed:
// an unrecognized device-name prefix is a fatal classification error.
type DeviceType string

const (
	DeviceRouter           DeviceType = "Router"
	DeviceQEMU             DeviceType = "QEMU"
	DeviceVBOX             DeviceType = "VBOX"
	DeviceFrameRelaySwitch DeviceType = "FrameRelaySwitch"
	DeviceEthernetSwitch   DeviceType = "EthernetSwitch"
	DeviceEthernetHub      DeviceType = "EthernetHub"
	DeviceATMSwitch        DeviceType = "ATMSwitch"
	DeviceATMBR            DeviceType = "ATMBR"
	DeviceCloud            DeviceType = "Cloud"
)

// Property is one raw key/value pair carried over from a legacy device
// block. The synthesizer pattern-matches these in sorted-key order.
type Property struct {
	Key   string
	Value string
}

// Device is a classified legacy device awaiting node synthesis. The
// closed attribute set is typed; everything else stays in Props, sorted
// by key.
type Device struct {
	Name   string
	Type   DeviceType
	NodeID int
	// HypervisorID references the owning HypervisorConfig. Devices from
	// the GNS3-DATA section have none.
	HypervisorID *int
	// Model is the canonical model code, routers only.
	Model string
	Props []Property
}

// HypervisorConfig groups the router emulation defaults declared by one
// legacy hypervisor configuration block. Read-only once built.
type HypervisorConfig struct {
	ID      int
	Model   string
	Image   string
	IdlePC  string
	RAM     string
	NPE     string
	Chassis string
}

// ConfigPair records the rename of a startup configuration file, handed
// to the asset-copy collaborator.
type ConfigPair struct {
	Old string `json:"old"`
	New string `json:"new"`
}
