package alloc

import "github.com/cockroachdb/errors"

const (
	// DefaultMaxBytes is the default byte budget of a Limit instance. Zero
	// means that the number of bytes is not limited.
	DefaultMaxBytes = 0

	// DefaultMaxObjects is the default object budget of a Limit instance.
	// Zero means that the number of objects is not limited.
	DefaultMaxObjects = 0
)

// Config carries the configuration for a Limit allocator.
type Config struct {
	MaxBytes   int64
	MaxObjects int64
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxBytes:   DefaultMaxBytes,
		MaxObjects: DefaultMaxObjects,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Limit instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// MaxBytes is a configuration option setting the number of bytes that can be
// live at any time in a Limit instance.
//
// Default: unlimited
func MaxBytes(size int64) Option {
	return option(func(config *Config) { config.MaxBytes = size })
}

// MaxObjects is a configuration option setting the number of objects that can
// be live at any time in a Limit instance.
//
// Default: unlimited
func MaxObjects(count int64) Option {
	return option(func(config *Config) { config.MaxObjects = count })
}

// Limit is an Allocator enforcing a budget on the live objects and bytes that
// were reserved through it. Reservations exceeding the budget fail with
// ErrOutOfMemory.
//
// Limit is not safe to use concurrently from multiple goroutines.
type Limit struct {
	maxBytes   int64
	maxObjects int64
	counters
}

// NewLimit constructs a new Limit instance, using the list of options passed
// as arguments to configure the budget.
func NewLimit(options ...Option) *Limit {
	config := DefaultConfig()
	config.Apply(options...)
	return NewLimitWithConfig(config)
}

// NewLimitWithConfig is like NewLimit but uses a Config instance to pass the
// configuration instead of a list of options.
func NewLimitWithConfig(config *Config) *Limit {
	maxBytes := config.MaxBytes
	if maxBytes < 0 {
		maxBytes = 0
	}
	maxObjects := config.MaxObjects
	if maxObjects < 0 {
		maxObjects = 0
	}
	return &Limit{
		maxBytes:   maxBytes,
		maxObjects: maxObjects,
	}
}

// Reserve satisfies the Allocator interface.
func (l *Limit) Reserve(size uintptr) error {
	if l.maxObjects != 0 && l.objects.Load()+1 > l.maxObjects {
		l.fail()
		return errors.Wrapf(ErrOutOfMemory, "object budget of %d exhausted", l.maxObjects)
	}
	if l.maxBytes != 0 && l.bytes.Load()+int64(size) > l.maxBytes {
		l.fail()
		return errors.Wrapf(ErrOutOfMemory, "cannot reserve %d bytes with %d/%d in use", size, l.bytes.Load(), l.maxBytes)
	}
	l.reserve(size)
	return nil
}

// Release satisfies the Allocator interface.
func (l *Limit) Release(size uintptr) {
	l.release(size)
}

// Stats returns the current values of the allocator counters.
func (l *Limit) Stats() Stats {
	return l.stats()
}
