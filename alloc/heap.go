package alloc

import "github.com/golang/glog"

// HeapAllocator is an Allocator which never refuses a reservation and lets
// the Go runtime manage memory. It only counts allocations.
//
// HeapAllocator is safe to use concurrently from multiple goroutines.
type HeapAllocator struct{ counters }

// Heap is the default allocator of the containers.
var Heap = new(HeapAllocator)

// Reserve satisfies the Allocator interface.
func (h *HeapAllocator) Reserve(size uintptr) error {
	h.reserve(size)
	return nil
}

// Release satisfies the Allocator interface.
func (h *HeapAllocator) Release(size uintptr) {
	h.release(size)
}

// Stats returns the current values of the allocator counters.
func (h *HeapAllocator) Stats() Stats {
	return h.stats()
}

// DumpState writes the counters of the Heap allocator to the glog output.
//
// Nothing is written unless tracing was enabled with EnableTracing.
func DumpState() {
	if !tracing.Load() {
		return
	}
	s := Heap.Stats()
	glog.Infof("alloc: heap allocs=%d frees=%d objects=%d bytes=%d", s.Allocs, s.Frees, s.Objects, s.Bytes)
}
