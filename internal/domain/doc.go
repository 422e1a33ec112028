// Package domain defines the data model of the topology conversion:
// the classified legacy devices and hypervisor configurations on the
// input side, and the normalized nodes, ports and links that make up
// the converted topology document on the output side.
package domain
