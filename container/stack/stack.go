// Package stack contains the implementation of a LIFO stack holding pointers
// to values owned by the program.
package stack

import (
	"fmt"
	"io"

	"github.com/segmentio/dslib/alloc"
	"github.com/segmentio/dslib/container"
)

// Stack is a last-in first-out container of pointers to values of type T.
//
// The zero-value is a valid empty stack allocating elements from alloc.Heap.
type Stack[T any] struct {
	top   *element[T]
	size  int
	alloc alloc.Allocator
}

type element[T any] struct {
	next    *element[T]
	payload *T
}

// New constructs a new empty stack, using the list of options passed as
// arguments to configure it.
func New[T any](options ...container.Option) (*Stack[T], error) {
	config := container.DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the stack
// configuration instead of a list of options.
func NewWithConfig[T any](config *container.Config) (*Stack[T], error) {
	a := config.Allocate()
	s, err := alloc.New[Stack[T]](a)
	if err != nil {
		return nil, container.OutOfMemory(err, "stack: new")
	}
	s.alloc = a
	return s, nil
}

// Destroy releases all the elements of the stack, then the stack itself. If
// free is not nil, it is called with each value, from top to bottom.
//
// The stack must not be used after being destroyed.
func (s *Stack[T]) Destroy(free func(*T)) error {
	if s == nil {
		return container.InvalidArgument("stack: destroy")
	}

	a := s.allocator()
	for e := s.top; e != nil; {
		next := e.next
		if free != nil && e.payload != nil {
			free(e.payload)
		}
		alloc.Free(a, e)
		e = next
	}

	s.top, s.size = nil, 0
	if s.alloc != nil {
		alloc.Free(s.alloc, s)
	}
	return nil
}

// Len returns the number of values in the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Empty returns true if the stack holds no values.
func (s *Stack[T]) Empty() bool {
	return s == nil || s.top == nil
}

// Push pushes payload on top of the stack.
func (s *Stack[T]) Push(payload *T) error {
	if s == nil || payload == nil {
		return container.InvalidArgument("stack: push")
	}
	e, err := alloc.New[element[T]](s.allocator())
	if err != nil {
		return container.OutOfMemory(err, "stack: push")
	}
	e.payload = payload
	e.next = s.top
	s.top = e
	s.size++
	return nil
}

// Pop removes the value on top of the stack and returns it, or returns nil if
// the stack was empty.
func (s *Stack[T]) Pop() *T {
	if s == nil || s.top == nil {
		return nil
	}
	e := s.top
	payload := e.payload
	s.top = e.next
	s.size--
	alloc.Free(s.allocator(), e)
	return payload
}

// Peek returns the value on top of the stack without removing it, or nil if
// the stack is empty.
func (s *Stack[T]) Peek() *T {
	if s == nil || s.top == nil {
		return nil
	}
	return s.top.payload
}

// Visualize writes a text representation of the stack to w, or to os.Stdout
// if w is nil. Values are listed from top to bottom.
func (s *Stack[T]) Visualize(w io.Writer) {
	w = container.Output(w)

	if s == nil {
		fmt.Fprintln(w, "Stack: NULL")
		return
	}

	if s.top == nil {
		fmt.Fprintf(w, "Stack: [empty] (size: %d)\n", s.size)
		return
	}

	fmt.Fprintf(w, "Stack: (size: %d)\n", s.size)
	i := 0
	for e := s.top; e != nil; e = e.next {
		fmt.Fprintf(w, "  [%d]: %s", i, container.Format(e.payload))
		if i == 0 {
			fmt.Fprint(w, " [TOP]")
		}
		fmt.Fprintln(w)
		i++
	}
	fmt.Fprintln(w)
}

func (s *Stack[T]) allocator() alloc.Allocator {
	if s.alloc == nil {
		return alloc.Heap
	}
	return s.alloc
}
