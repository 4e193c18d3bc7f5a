// Package container holds the conventions shared by the list, queue, stack and
// tree packages.
//
// The containers store pointers to values owned by the program. They own the
// nodes linking those pointers together, and never read, write or free the
// values pointed to, except by passing them to the comparison and destructor
// functions supplied by the program.
//
// All containers report failures with the same errors, which programs test
// for with errors.Is:
//
//   - ErrInvalidArgument when a required handle, payload or function is nil,
//   - ErrOutOfMemory when the allocator refused to reserve a node,
//   - ErrNotFound when removing a value that the container does not hold.
//
// Failed operations never modify the container. Inserting a value that a tree
// already holds is not an error, the tree is simply left unchanged.
//
// The types provided by the sub-packages are not safe to use concurrently from
// multiple goroutines, programs sharing containers must synchronize access.
package container

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/dslib/alloc"
)

var (
	// ErrInvalidArgument is returned when a required argument is nil.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory is returned when a container could not allocate a node.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNotFound is returned when removing a value which is not held in a
	// container.
	ErrNotFound = errors.New("not found")
)

// InvalidArgument returns an error matching ErrInvalidArgument, annotated with
// the operation that failed.
func InvalidArgument(op string) error {
	return errors.Wrap(ErrInvalidArgument, op)
}

// NotFound returns an error matching ErrNotFound, annotated with the operation
// that failed.
func NotFound(op string) error {
	return errors.Wrap(ErrNotFound, op)
}

// OutOfMemory converts an allocation error into an error matching
// ErrOutOfMemory, annotated with the operation that failed. The original error
// remains in the chain.
func OutOfMemory(err error, op string) error {
	return errors.Mark(errors.Wrap(err, op), ErrOutOfMemory)
}

// Config carries the configuration of new containers.
type Config struct {
	Allocator alloc.Allocator
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Allocator: alloc.Heap,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Allocate returns the allocator to use for containers created with c.
func (c *Config) Allocate() alloc.Allocator {
	if c == nil || c.Allocator == nil {
		return alloc.Heap
	}
	return c.Allocator
}

// Option is an interface implemented by options allowing configuration of new
// containers.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// WithAllocator is a configuration option setting the allocator that a
// container reserves its handle and nodes from.
//
// Default: alloc.Heap
func WithAllocator(a alloc.Allocator) Option {
	return option(func(config *Config) { config.Allocator = a })
}

// Output returns w, or os.Stdout if w is nil. The Visualize methods of the
// containers use it to pick their output.
func Output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Format returns the text representation of the value that p points to, or
// "NULL" if p is nil.
func Format[T any](p *T) string {
	if p == nil {
		return "NULL"
	}
	return fmt.Sprint(*p)
}
