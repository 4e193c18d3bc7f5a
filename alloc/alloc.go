// Package alloc is the allocation layer shared by the containers of this
// module.
//
// Every structural object created by a container (its handle and its nodes)
// is reserved through an Allocator before it is constructed, and released
// through the same Allocator when the container drops it. The Go runtime does
// not report allocation failures to programs, so the Allocator is where limits
// are enforced: an Allocator refusing a reservation causes the container
// operation to fail with an out-of-memory error, leaving the container
// unmodified.
//
// Allocations can be traced to the glog output by calling EnableTracing. The
// trace is purely diagnostic and never changes the behavior of the containers.
package alloc

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
)

var (
	// ErrOutOfMemory is returned by allocators which refuse to reserve memory
	// for a new object.
	ErrOutOfMemory = errors.New("out of memory")
)

// Allocator is the interface implemented by the memory accounting backends of
// the containers.
type Allocator interface {
	// Reserves size bytes for a new object, or returns an error if the
	// reservation cannot be satisfied.
	Reserve(size uintptr) error

	// Releases size bytes that were previously reserved.
	Release(size uintptr)
}

var tracing atomic.Bool

// EnableTracing turns allocation tracing on or off for the whole process.
//
// Tracing is disabled by default.
func EnableTracing(enable bool) { tracing.Store(enable) }

// Tracing returns true if allocation tracing is enabled.
func Tracing() bool { return tracing.Load() }

// New reserves memory for a value of type T from a and returns a pointer to
// a new zero-value of T.
func New[T any](a Allocator) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)

	if err := a.Reserve(size); err != nil {
		if tracing.Load() {
			glog.Infof("alloc: reserve(%d) for %T failed: %v", size, (*T)(nil), err)
		}
		return nil, err
	}

	p := new(T)
	if tracing.Load() {
		glog.Infof("alloc: reserve(%d) for %T = %p", size, p, p)
	}
	return p, nil
}

// Free releases the memory of p to a. The value that p points to is reset to
// its zero-value so it does not retain references to other objects.
//
// Free does nothing if p is nil.
func Free[T any](a Allocator, p *T) {
	if p == nil {
		return
	}

	var zero T
	size := unsafe.Sizeof(zero)
	if tracing.Load() {
		glog.Infof("alloc: release(%d) for %T = %p", size, p, p)
	}

	*p = zero
	a.Release(size)
}

// Stats contains counters tracking usage of an allocator.
type Stats struct {
	Allocs   int64 // successful reservations
	Frees    int64 // releases
	Failures int64 // refused reservations
	Objects  int64 // live objects
	Bytes    int64 // live bytes
}

type counters struct {
	allocs   atomic.Int64
	frees    atomic.Int64
	failures atomic.Int64
	objects  atomic.Int64
	bytes    atomic.Int64
}

func (c *counters) reserve(size uintptr) {
	c.allocs.Add(1)
	c.objects.Add(1)
	c.bytes.Add(int64(size))
}

func (c *counters) release(size uintptr) {
	c.frees.Add(1)
	c.objects.Add(-1)
	c.bytes.Add(-int64(size))
}

func (c *counters) fail() {
	c.failures.Add(1)
}

func (c *counters) stats() Stats {
	return Stats{
		Allocs:   c.allocs.Load(),
		Frees:    c.frees.Load(),
		Failures: c.failures.Load(),
		Objects:  c.objects.Load(),
		Bytes:    c.bytes.Load(),
	}
}
