// Package list contains the implementation of a singly-linked list holding
// pointers to values owned by the program.
//
// The list supports insertion at both ends, removal at the front, and linear
// search and removal of values matching a comparison function:
//
//	l, err := list.New[string]()
//	if err != nil {
//		...
//	}
//	defer l.Destroy(nil)
//
//	a, b := "A", "B"
//	l.PushBack(&a)
//	l.PushBack(&b)
//
//	for !l.Empty() {
//		s := l.PopFront()
//		...
//	}
package list

import (
	"fmt"
	"io"

	"github.com/segmentio/dslib/alloc"
	"github.com/segmentio/dslib/container"
)

// List values are containers of pointers to values of type T, which support
// insertion at the front and back of the list and removal at the front in
// O(1).
//
// The zero-value is a valid empty list allocating elements from alloc.Heap.
type List[T any] struct {
	head  *element[T]
	tail  *element[T]
	size  int
	alloc alloc.Allocator
}

type element[T any] struct {
	next    *element[T]
	payload *T
}

// New constructs a new empty list, using the list of options passed as
// arguments to configure it.
func New[T any](options ...container.Option) (*List[T], error) {
	config := container.DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the list
// configuration instead of a list of options.
func NewWithConfig[T any](config *container.Config) (*List[T], error) {
	a := config.Allocate()
	l, err := alloc.New[List[T]](a)
	if err != nil {
		return nil, container.OutOfMemory(err, "list: new")
	}
	l.alloc = a
	return l, nil
}

// Destroy releases all the elements of the list, then the list itself. If free
// is not nil, it is called with each value of the list, from front to back.
//
// The list must not be used after being destroyed.
func (l *List[T]) Destroy(free func(*T)) error {
	if l == nil {
		return container.InvalidArgument("list: destroy")
	}

	a := l.allocator()
	for e := l.head; e != nil; {
		next := e.next
		if free != nil && e.payload != nil {
			free(e.payload)
		}
		alloc.Free(a, e)
		e = next
	}

	l.head, l.tail, l.size = nil, nil, 0
	if l.alloc != nil {
		alloc.Free(l.alloc, l)
	}
	return nil
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Empty returns true if the list holds no values.
func (l *List[T]) Empty() bool {
	return l == nil || l.head == nil
}

// Front returns the value at the front of the list, or nil if the list is
// empty.
func (l *List[T]) Front() *T {
	if l == nil || l.head == nil {
		return nil
	}
	return l.head.payload
}

// Back returns the value at the back of the list, or nil if the list is empty.
func (l *List[T]) Back() *T {
	if l == nil || l.tail == nil {
		return nil
	}
	return l.tail.payload
}

// PushFront inserts payload at the front of the list.
func (l *List[T]) PushFront(payload *T) error {
	if l == nil || payload == nil {
		return container.InvalidArgument("list: push front")
	}
	e, err := alloc.New[element[T]](l.allocator())
	if err != nil {
		return container.OutOfMemory(err, "list: push front")
	}
	e.payload = payload
	e.next = l.head
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.size++
	return nil
}

// PushBack inserts payload at the back of the list.
func (l *List[T]) PushBack(payload *T) error {
	if l == nil || payload == nil {
		return container.InvalidArgument("list: push back")
	}
	e, err := alloc.New[element[T]](l.allocator())
	if err != nil {
		return container.OutOfMemory(err, "list: push back")
	}
	e.payload = payload
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
	return nil
}

// PopFront removes the value at the front of the list and returns it, or
// returns nil if the list was empty.
func (l *List[T]) PopFront() *T {
	if l == nil || l.head == nil {
		return nil
	}
	e := l.head
	payload := e.payload
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	alloc.Free(l.allocator(), e)
	return payload
}

// Find returns the first value of the list for which cmp(value, target)
// returns zero, or nil if there are none or any of the arguments is nil.
//
// Complexity: O(n)
func (l *List[T]) Find(target *T, cmp func(a, b *T) int) *T {
	if l == nil || target == nil || cmp == nil {
		return nil
	}
	for e := l.head; e != nil; e = e.next {
		if cmp(e.payload, target) == 0 {
			return e.payload
		}
	}
	return nil
}

// Remove removes the first value of the list for which cmp(value, target)
// returns zero. The value itself is not freed.
//
// The method returns an error matching container.ErrNotFound if no value
// matched.
//
// Complexity: O(n)
func (l *List[T]) Remove(target *T, cmp func(a, b *T) int) error {
	if l == nil || target == nil || cmp == nil {
		return container.InvalidArgument("list: remove")
	}

	prev := (*element[T])(nil)
	for e := l.head; e != nil; prev, e = e, e.next {
		if cmp(e.payload, target) != 0 {
			continue
		}
		if prev == nil {
			l.head = e.next
		} else {
			prev.next = e.next
		}
		if e == l.tail {
			l.tail = prev
		}
		l.size--
		alloc.Free(l.allocator(), e)
		return nil
	}

	return container.NotFound("list: remove")
}

// Visualize writes a text representation of the list to w, or to os.Stdout if
// w is nil.
func (l *List[T]) Visualize(w io.Writer) {
	w = container.Output(w)

	if l == nil {
		fmt.Fprintln(w, "List: NULL")
		return
	}

	if l.head == nil {
		fmt.Fprintf(w, "List: [empty] (size: %d)\n", l.size)
		return
	}

	fmt.Fprintf(w, "List: (size: %d)\n", l.size)
	i := 0
	for e := l.head; e != nil; e = e.next {
		fmt.Fprintf(w, "  [%d]: %s", i, container.Format(e.payload))
		if e == l.head {
			fmt.Fprint(w, " [HEAD]")
		}
		if e == l.tail {
			fmt.Fprint(w, " [TAIL]")
		}
		fmt.Fprintln(w)
		i++
	}
	fmt.Fprintln(w)
}

func (l *List[T]) allocator() alloc.Allocator {
	if l.alloc == nil {
		return alloc.Heap
	}
	return l.alloc
}
