package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/dslib/compare"
	"github.com/segmentio/dslib/container"
	"github.com/segmentio/dslib/container/list"
	"github.com/segmentio/dslib/container/queue"
	"github.com/segmentio/dslib/container/stack"
	"github.com/segmentio/dslib/container/tree"
	"github.com/spf13/cobra"
)

var demoCmds = []*cobra.Command{
	{
		Use:   "list",
		Short: "push, find, pop and remove values in a linked list",
		RunE:  func(cmd *cobra.Command, args []string) error { return runList(cmd.OutOrStdout()) },
	},
	{
		Use:   "stack",
		Short: "push, peek and pop values on a stack",
		RunE:  func(cmd *cobra.Command, args []string) error { return runStack(cmd.OutOrStdout()) },
	},
	{
		Use:   "queue",
		Short: "enqueue, peek and dequeue values in a queue",
		RunE:  func(cmd *cobra.Command, args []string) error { return runQueue(cmd.OutOrStdout()) },
	},
	{
		Use:   "tree",
		Short: "insert, find and remove values in a binary search tree",
		RunE:  func(cmd *cobra.Command, args []string) error { return runTree(cmd.OutOrStdout()) },
	},
}

func ints(values ...int) []*int {
	ptrs := make([]*int, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	return ptrs
}

func runList(out io.Writer) error {
	fmt.Fprintln(out, "===== List =====")

	l, err := list.New[int](options()...)
	if err != nil {
		return err
	}

	v := ints(10, 20, 30)
	for _, p := range v[:2] {
		if err := l.PushFront(p); err != nil {
			return errors.Wrapf(err, "push front %d", *p)
		}
	}
	if err := l.PushBack(v[2]); err != nil {
		return errors.Wrapf(err, "push back %d", *v[2])
	}
	l.Visualize(out)

	k := 20
	if p := l.Find(&k, compare.Pointers[int]); p != nil {
		fmt.Fprintf(out, "find %d: found\n", k)
	} else {
		fmt.Fprintf(out, "find %d: not found\n", k)
	}

	if p := l.PopFront(); p != nil {
		fmt.Fprintf(out, "pop front: %d\n", *p)
	}

	k = 30
	if err := l.Remove(&k, compare.Pointers[int]); err != nil {
		return errors.Wrapf(err, "remove %d", k)
	}
	fmt.Fprintf(out, "remove %d: ok\n", k)
	l.Visualize(out)

	return l.Destroy(nil)
}

func runStack(out io.Writer) error {
	fmt.Fprintln(out, "===== Stack =====")

	s, err := stack.New[int](options()...)
	if err != nil {
		return err
	}

	for _, p := range ints(1, 2, 3) {
		if err := s.Push(p); err != nil {
			return errors.Wrapf(err, "push %d", *p)
		}
	}
	s.Visualize(out)

	if p := s.Peek(); p != nil {
		fmt.Fprintf(out, "peek: %d\n", *p)
	}
	for !s.Empty() {
		fmt.Fprintf(out, "pop: %d\n", *s.Pop())
	}
	s.Visualize(out)

	return s.Destroy(nil)
}

func runQueue(out io.Writer) error {
	fmt.Fprintln(out, "===== Queue =====")

	q, err := queue.New[int](options()...)
	if err != nil {
		return err
	}

	for _, p := range ints(1, 2, 3) {
		if err := q.Enqueue(p); err != nil {
			return errors.Wrapf(err, "enqueue %d", *p)
		}
	}
	q.Visualize(out)

	if p := q.Peek(); p != nil {
		fmt.Fprintf(out, "peek: %d\n", *p)
	}
	for !q.Empty() {
		fmt.Fprintf(out, "dequeue: %d\n", *q.Dequeue())
	}
	q.Visualize(out)

	return q.Destroy(nil)
}

func runTree(out io.Writer) error {
	fmt.Fprintln(out, "===== Tree =====")

	t, err := tree.New[int](options()...)
	if err != nil {
		return err
	}

	cmp := compare.Pointers[int]
	for _, p := range ints(50, 30, 70, 20, 40) {
		if err := t.Insert(p, cmp); err != nil {
			return errors.Wrapf(err, "insert %d", *p)
		}
	}
	t.Visualize(out)

	dup := 50
	if err := t.Insert(&dup, cmp); err != nil {
		return errors.Wrapf(err, "insert %d", dup)
	}
	fmt.Fprintf(out, "insert %d again: size=%d\n", dup, t.Len())

	for _, k := range []int{30, 70, 99} {
		switch err := t.Remove(&k, cmp); {
		case err == nil:
			fmt.Fprintf(out, "remove %d: ok, size=%d\n", k, t.Len())
		case errors.Is(err, container.ErrNotFound):
			fmt.Fprintf(out, "remove %d: not found\n", k)
		default:
			return errors.Wrapf(err, "remove %d", k)
		}
	}
	t.Visualize(out)

	for _, k := range []int{20, 40} {
		if p := t.Find(&k, cmp); p != nil {
			fmt.Fprintf(out, "find %d: found\n", k)
		}
	}

	freed := 0
	if err := t.Destroy(func(*int) { freed++ }); err != nil {
		return err
	}
	fmt.Fprintf(out, "destroy: released %d values\n", freed)
	return nil
}
