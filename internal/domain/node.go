package domain

// Port is one attachment point on a node. Router and switch ports carry
// slot/port numbering; cloud ports are stubs named after their NIO.
// LinkID is set once during link finalization and never again.
type Port struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PortNumber *int   `json:"port_number,omitempty"`
	SlotNumber *int   `json:"slot_number,omitempty"`
	Type       string `json:"type,omitempty"`
	VLAN       *int   `json:"vlan,omitempty"`
	LinkID     *int   `json:"link_id,omitempty"`
	Stub       bool   `json:"stub,omitempty"`
}

// Label is the node's display label with its offset from the node origin.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Node is one fully synthesized device in the converted topology.
// Properties is an open map because the serialized document carries
// variably shaped keys (slot0..slot6, wic0.., nios).
type Node struct {
	ID          int            `json:"id"`
	ServerID    int            `json:"server_id"`
	RouterID    int            `json:"router_id,omitempty"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Label       Label          `json:"label"`
	Ports       []*Port        `json:"ports"`
	Properties  map[string]any `json:"properties"`
}

// Name returns the display name carried in the node properties.
func (n *Node) Name() string {
	if s, ok := n.Properties["name"].(string); ok {
		return s
	}
	return ""
}

// PortByName returns the first port with the given display name, or nil.
func (n *Node) PortByName(name string) *Port {
	for _, p := range n.Ports {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PortByID returns the port with the given id, or nil.
func (n *Node) PortByID(id int) *Port {
	for _, p := range n.Ports {
		if p.ID == id {
			return p
		}
	}
	return nil
}
