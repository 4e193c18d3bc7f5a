// Package queue contains the implementation of a FIFO queue holding pointers
// to values owned by the program.
package queue

import (
	"fmt"
	"io"

	"github.com/segmentio/dslib/alloc"
	"github.com/segmentio/dslib/container"
)

// Queue is a first-in first-out container of pointers to values of type T.
//
// The zero-value is a valid empty queue allocating elements from alloc.Heap.
type Queue[T any] struct {
	front *element[T]
	rear  *element[T]
	size  int
	alloc alloc.Allocator
}

type element[T any] struct {
	next    *element[T]
	payload *T
}

// New constructs a new empty queue, using the list of options passed as
// arguments to configure it.
func New[T any](options ...container.Option) (*Queue[T], error) {
	config := container.DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the queue
// configuration instead of a list of options.
func NewWithConfig[T any](config *container.Config) (*Queue[T], error) {
	a := config.Allocate()
	q, err := alloc.New[Queue[T]](a)
	if err != nil {
		return nil, container.OutOfMemory(err, "queue: new")
	}
	q.alloc = a
	return q, nil
}

// Destroy releases all the elements of the queue, then the queue itself. If
// free is not nil, it is called with each value, from front to rear.
//
// The queue must not be used after being destroyed.
func (q *Queue[T]) Destroy(free func(*T)) error {
	if q == nil {
		return container.InvalidArgument("queue: destroy")
	}

	a := q.allocator()
	for e := q.front; e != nil; {
		next := e.next
		if free != nil && e.payload != nil {
			free(e.payload)
		}
		alloc.Free(a, e)
		e = next
	}

	q.front, q.rear, q.size = nil, nil, 0
	if q.alloc != nil {
		alloc.Free(q.alloc, q)
	}
	return nil
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Empty returns true if the queue holds no values.
func (q *Queue[T]) Empty() bool {
	return q == nil || q.front == nil
}

// Enqueue appends payload at the rear of the queue.
func (q *Queue[T]) Enqueue(payload *T) error {
	if q == nil || payload == nil {
		return container.InvalidArgument("queue: enqueue")
	}
	e, err := alloc.New[element[T]](q.allocator())
	if err != nil {
		return container.OutOfMemory(err, "queue: enqueue")
	}
	e.payload = payload
	if q.rear == nil {
		q.front = e
	} else {
		q.rear.next = e
	}
	q.rear = e
	q.size++
	return nil
}

// Dequeue removes the value at the front of the queue and returns it, or
// returns nil if the queue was empty.
func (q *Queue[T]) Dequeue() *T {
	if q == nil || q.front == nil {
		return nil
	}
	e := q.front
	payload := e.payload
	q.front = e.next
	if q.front == nil {
		q.rear = nil
	}
	q.size--
	alloc.Free(q.allocator(), e)
	return payload
}

// Peek returns the value at the front of the queue without removing it, or
// nil if the queue is empty.
func (q *Queue[T]) Peek() *T {
	if q == nil || q.front == nil {
		return nil
	}
	return q.front.payload
}

// Visualize writes a text representation of the queue to w, or to os.Stdout
// if w is nil. Values are listed from front to rear.
func (q *Queue[T]) Visualize(w io.Writer) {
	w = container.Output(w)

	if q == nil {
		fmt.Fprintln(w, "Queue: NULL")
		return
	}

	if q.front == nil {
		fmt.Fprintf(w, "Queue: [empty] (size: %d)\n", q.size)
		return
	}

	fmt.Fprintf(w, "Queue: (size: %d)\n", q.size)
	i := 0
	for e := q.front; e != nil; e = e.next {
		fmt.Fprintf(w, "  [%d]: %s", i, container.Format(e.payload))
		if i == 0 {
			fmt.Fprint(w, " [FRONT]")
		}
		if e == q.rear {
			fmt.Fprint(w, " [REAR]")
		}
		fmt.Fprintln(w)
		i++
	}
	fmt.Fprintln(w)
}

func (q *Queue[T]) allocator() alloc.Allocator {
	if q.alloc == nil {
		return alloc.Heap
	}
	return q.alloc
}
