package domain

// NIO is the sentinel destination device name for an externally-facing
// endpoint that is not modeled as a full device.
const NIO = "NIO"

// SymbolicLink is an unresolved connection reference: the source side is
// concrete, the destination is still textual. It exists only between
// link resolution and link finalization.
type SymbolicLink struct {
	SourceNodeID   int
	SourcePortID   int
	SourcePortName string
	SourceDevice   string
	// DestDevice is a device display name, or the NIO sentinel.
	DestDevice string
	DestPort   string
}

// Link is a finalized edge between two ports. Destination ids are nil
// when the destination could not be resolved; such links are emitted
// dangling rather than dropped.
type Link struct {
	ID                int  `json:"id"`
	SourceNodeID      int  `json:"source_node_id"`
	SourcePortID      int  `json:"source_port_id"`
	DestinationNodeID *int `json:"destination_node_id"`
	DestinationPortID *int `json:"destination_port_id"`
}
