package convert

// Allocator hands out the run-global port and link ids. Ids are strictly
// sequential, never reused and never reset between devices: downstream
// fixtures rely on deterministic numbering.
type Allocator struct {
	nextPort int
	nextLink int
}

// NewAllocator returns an allocator with both counters starting at 1.
func NewAllocator() *Allocator {
	return &Allocator{nextPort: 1, nextLink: 1}
}

// NextPortID allocates the next port id.
func (a *Allocator) NextPortID() int {
	id := a.nextPort
	a.nextPort++
	return id
}

// NextLinkID allocates the next link id.
func (a *Allocator) NextLinkID() int {
	id := a.nextLink
	a.nextLink++
	return id
}
