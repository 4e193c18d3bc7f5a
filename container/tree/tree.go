// Package tree contains the implementation of an unbalanced binary search tree
// holding pointers to values owned by the program.
//
// The tree does not keep a comparison function: one is passed to each call of
// Insert, Find and Remove. Programs must use the same function for the whole
// lifetime of a tree, mixing orderings silently breaks the tree.
//
//	t, err := tree.New[int]()
//	if err != nil {
//		...
//	}
//	defer t.Destroy(nil)
//
//	for i := range values {
//		if err := t.Insert(&values[i], compare.Pointers[int]); err != nil {
//			...
//		}
//	}
//
// No rebalancing is performed, inserting values in sorted order degrades the
// tree into a linked list, and the cost of operations becomes O(n).
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/segmentio/dslib/alloc"
	"github.com/segmentio/dslib/container"
)

// Tree is a binary search tree of values of type T.
//
// The tree owns its nodes, the program owns the values that the payload
// pointers refer to. Removing a value or destroying the tree never frees the
// values unless a destructor is passed to Destroy.
//
// The zero-value is a valid empty tree allocating nodes from alloc.Heap.
type Tree[T any] struct {
	root  *node[T]
	size  int
	alloc alloc.Allocator
}

type node[T any] struct {
	left    *node[T]
	right   *node[T]
	payload *T
}

// New constructs a new empty tree, using the list of options passed as
// arguments to configure it.
func New[T any](options ...container.Option) (*Tree[T], error) {
	config := container.DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the tree
// configuration instead of a list of options.
func NewWithConfig[T any](config *container.Config) (*Tree[T], error) {
	a := config.Allocate()
	t, err := alloc.New[Tree[T]](a)
	if err != nil {
		return nil, container.OutOfMemory(err, "tree: new")
	}
	t.alloc = a
	return t, nil
}

// Destroy releases all the nodes of the tree, then the tree itself. If free is
// not nil, it is called with the payload of each node before the node gets
// released, children first.
//
// The tree must not be used after being destroyed.
//
// Complexity: O(n)
func (t *Tree[T]) Destroy(free func(*T)) error {
	if t == nil {
		return container.InvalidArgument("tree: destroy")
	}

	a := t.allocator()
	// Post-order walk using an explicit stack, the depth of the tree is only
	// bounded by its size.
	stack := make([]*node[T], 0, 32)
	last := (*node[T])(nil)

	for n := t.root; n != nil || len(stack) != 0; {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}

		stack = stack[:len(stack)-1]
		if free != nil && top.payload != nil {
			free(top.payload)
		}
		alloc.Free(a, top)
		last = top
	}

	t.root, t.size = nil, 0
	if t.alloc != nil {
		alloc.Free(t.alloc, t)
	}
	return nil
}

// Len returns the number of values in the tree.
//
// Complexity: O(1)
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Empty returns true if the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t == nil || t.root == nil
}

// Insert inserts payload in the tree, at the position determined by cmp.
//
// If the tree already holds a value comparing equal to payload, the tree is
// left unchanged and the method returns nil: the value already present is not
// replaced.
//
// The method returns an error matching container.ErrInvalidArgument if any of
// its arguments is nil, or container.ErrOutOfMemory if a node could not be
// allocated. The tree is not modified when an error is returned.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[T]) Insert(payload *T, cmp func(a, b *T) int) error {
	if t == nil || payload == nil || cmp == nil {
		return container.InvalidArgument("tree: insert")
	}

	n, err := alloc.New[node[T]](t.allocator())
	if err != nil {
		return container.OutOfMemory(err, "tree: insert")
	}
	n.payload = payload

	if t.root == nil {
		t.root = n
		t.size++
		return nil
	}

	for p := t.root; ; {
		switch c := cmp(payload, p.payload); {
		case c < 0:
			if p.left == nil {
				p.left = n
				t.size++
				return nil
			}
			p = p.left
		case c > 0:
			if p.right == nil {
				p.right = n
				t.size++
				return nil
			}
			p = p.right
		default:
			alloc.Free(t.allocator(), n)
			return nil
		}
	}
}

// Find returns the payload held in the tree which compares equal to target
// according to cmp. The method returns nil if no such value exists, or if any
// of its arguments is nil.
//
// The returned pointer is the one that was passed to Insert.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[T]) Find(target *T, cmp func(a, b *T) int) *T {
	if t == nil || target == nil || cmp == nil {
		return nil
	}

	for n := t.root; n != nil; {
		switch c := cmp(target, n.payload); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.payload
		}
	}

	return nil
}

// Remove removes the value comparing equal to target according to cmp from
// the tree. The removed value is not freed, it remains owned by the program.
//
// The method returns an error matching container.ErrInvalidArgument if any of
// its arguments is nil, or container.ErrNotFound if the tree holds no such
// value. The tree is not modified when an error is returned.
//
// Complexity: O(h) where h is the height of the tree
func (t *Tree[T]) Remove(target *T, cmp func(a, b *T) int) error {
	if t == nil || target == nil || cmp == nil {
		return container.InvalidArgument("tree: remove")
	}

	parent, n := (*node[T])(nil), t.root
	for n != nil {
		c := cmp(target, n.payload)
		if c == 0 {
			break
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	if n == nil {
		return container.NotFound("tree: remove")
	}

	a := t.allocator()

	if n.left == nil || n.right == nil {
		// Leaf or single child: the child (if any) takes the place of n.
		child := n.left
		if child == nil {
			child = n.right
		}
		t.replace(parent, n, child)
		alloc.Free(a, n)
	} else {
		// Two children: n keeps its position and receives the payload of its
		// in-order successor, which is unlinked instead. The successor is the
		// leftmost node of the right subtree, it has no left child.
		succParent, succ := n, n.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}

		n.payload = succ.payload

		if succParent == n {
			succParent.right = succ.right
		} else {
			succParent.left = succ.right
		}
		alloc.Free(a, succ)
	}

	t.size--
	return nil
}

// Visualize writes a text representation of the tree to w, or to os.Stdout
// if w is nil. The tree is printed sideways: the root on the left, larger
// values above smaller ones.
//
// The output is intended for debugging, its format may change.
func (t *Tree[T]) Visualize(w io.Writer) {
	w = container.Output(w)

	if t == nil {
		fmt.Fprintln(w, "Tree: NULL")
		return
	}

	if t.root == nil {
		fmt.Fprintf(w, "Tree: [empty] (size: %d)\n", t.size)
		return
	}

	fmt.Fprintf(w, "Tree: (size: %d)\n", t.size)
	fmt.Fprintln(w, "Root at left, leaves at right:")
	visualize(w, t.root, 0)
	fmt.Fprintln(w)
}

func visualize[T any](w io.Writer, n *node[T], depth int) {
	if n == nil {
		return
	}
	visualize(w, n.right, depth+1)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), container.Format(n.payload))
	visualize(w, n.left, depth+1)
}

func (t *Tree[T]) replace(parent, n, child *node[T]) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
}

func (t *Tree[T]) allocator() alloc.Allocator {
	if t.alloc == nil {
		return alloc.Heap
	}
	return t.alloc
}
