// Package convert implements the topology transformation engine: it
// classifies raw legacy sections into devices and hypervisor
// configurations, synthesizes fully specified nodes with computed
// hardware ports, resolves textual connection references into symbolic
// links and finalizes them into a deduplicated edge list.
//
// The whole conversion is a single-threaded one-shot pass. Port and
// link ids come from an explicit Allocator so identical input always
// produces identical output.
package convert
