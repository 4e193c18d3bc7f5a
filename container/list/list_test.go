package list

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/dslib/alloc"
	"github.com/segmentio/dslib/compare"
	"github.com/segmentio/dslib/container"
	"github.com/stretchr/testify/require"
)

var cmpInt = compare.Pointers[int]

func newList(t *testing.T, options ...container.Option) *List[int] {
	t.Helper()
	l, err := New[int](options...)
	require.NoError(t, err)
	return l
}

func TestPushFront(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	values := make([]int, 10)
	for i := range values {
		values[i] = i
		require.NoError(t, list.PushFront(&values[i]))
	}

	assertList(t, list, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0)
}

func TestPushBack(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	values := make([]int, 10)
	for i := range values {
		values[i] = i
		require.NoError(t, list.PushBack(&values[i]))
	}

	assertList(t, list, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestPopFront(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	values := make([]int, 10)
	for i := range values {
		values[i] = i
		list.PushBack(&values[i])
	}

	for i := range values {
		p := list.PopFront()
		require.Same(t, &values[i], p)
		assertList(t, list, values[i+1:]...)
	}

	require.Nil(t, list.PopFront())
	assertList(t, list)

	// The list is usable again once emptied.
	require.NoError(t, list.PushBack(&values[0]))
	assertList(t, list, 0)
}

func TestRemove(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	values := make([]int, 10)
	for i := range values {
		values[i] = i
		list.PushBack(&values[i])
	}

	k := 0
	require.NoError(t, list.Remove(&k, cmpInt))
	assertList(t, list, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	k = 4
	require.NoError(t, list.Remove(&k, cmpInt))
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8, 9)

	k = 9
	require.NoError(t, list.Remove(&k, cmpInt))
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8)

	k = 42
	err := list.Remove(&k, cmpInt)
	require.True(t, errors.Is(err, container.ErrNotFound), "unexpected error: %v", err)
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8)

	// Appending after removing the tail links to the new tail.
	require.NoError(t, list.PushBack(&values[9]))
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8, 9)
}

func TestRemoveFirstMatch(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	values := []int{1, 2, 1}
	for i := range values {
		list.PushBack(&values[i])
	}

	k := 1
	require.Same(t, &values[0], list.Find(&k, cmpInt))
	require.NoError(t, list.Remove(&k, cmpInt))
	require.Same(t, &values[2], list.Find(&k, cmpInt))
	assertList(t, list, 2, 1)
}

func TestRemoveOnlyElement(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	v := 7
	list.PushBack(&v)
	require.NoError(t, list.Remove(&v, cmpInt))
	assertList(t, list)
	require.True(t, list.Empty())
}

func TestFind(t *testing.T) {
	list := newList(t)
	defer list.Destroy(nil)

	values := []int{10, 20, 30}
	for i := range values {
		list.PushBack(&values[i])
	}

	k := 20
	require.Same(t, &values[1], list.Find(&k, cmpInt))
	require.Nil(t, list.Find(&k, nil))
	require.Nil(t, list.Find(nil, cmpInt))

	k = 25
	require.Nil(t, list.Find(&k, cmpInt))
}

func TestInvalidArguments(t *testing.T) {
	var nilList *List[int]
	v := 1

	require.True(t, errors.Is(nilList.PushFront(&v), container.ErrInvalidArgument))
	require.True(t, errors.Is(nilList.PushBack(&v), container.ErrInvalidArgument))
	require.True(t, errors.Is(nilList.Remove(&v, cmpInt), container.ErrInvalidArgument))
	require.True(t, errors.Is(nilList.Destroy(nil), container.ErrInvalidArgument))
	require.Nil(t, nilList.PopFront())
	require.Nil(t, nilList.Front())
	require.Nil(t, nilList.Back())
	require.Nil(t, nilList.Find(&v, cmpInt))
	require.Zero(t, nilList.Len())
	require.True(t, nilList.Empty())

	list := newList(t)
	defer list.Destroy(nil)
	require.True(t, errors.Is(list.PushFront(nil), container.ErrInvalidArgument))
	require.True(t, errors.Is(list.PushBack(nil), container.ErrInvalidArgument))
	require.True(t, errors.Is(list.Remove(&v, nil), container.ErrInvalidArgument))
	assertList(t, list)
}

func TestOutOfMemory(t *testing.T) {
	a := alloc.NewLimit(alloc.MaxObjects(3))
	list := newList(t, container.WithAllocator(a))
	defer list.Destroy(nil)

	values := []int{1, 2, 3}
	require.NoError(t, list.PushBack(&values[0]))
	require.NoError(t, list.PushBack(&values[1]))

	err := list.PushBack(&values[2])
	require.True(t, errors.Is(err, container.ErrOutOfMemory), "unexpected error: %v", err)
	err = list.PushFront(&values[2])
	require.True(t, errors.Is(err, container.ErrOutOfMemory), "unexpected error: %v", err)
	assertList(t, list, 1, 2)

	list.PopFront()
	require.NoError(t, list.PushBack(&values[2]))
	assertList(t, list, 2, 3)
}

func TestDestroy(t *testing.T) {
	a := alloc.NewLimit()
	list := newList(t, container.WithAllocator(a))

	values := []int{1, 2, 3, 4}
	for i := range values {
		list.PushBack(&values[i])
	}

	freed := []int{}
	require.NoError(t, list.Destroy(func(p *int) { freed = append(freed, *p) }))
	require.Equal(t, values, freed)

	s := a.Stats()
	require.EqualValues(t, 5, s.Allocs)
	require.Equal(t, s.Allocs, s.Frees)
	require.Zero(t, s.Objects)
}

func TestVisualize(t *testing.T) {
	b := new(bytes.Buffer)
	(*List[int])(nil).Visualize(b)
	require.Equal(t, "List: NULL\n", b.String())

	list := newList(t)
	defer list.Destroy(nil)

	b.Reset()
	list.Visualize(b)
	require.Equal(t, "List: [empty] (size: 0)\n", b.String())

	values := []int{20, 10, 30}
	list.PushBack(&values[0])
	list.PushFront(&values[1])
	list.PushBack(&values[2])

	b.Reset()
	list.Visualize(b)
	require.Equal(t, "List: (size: 3)\n"+
		"  [0]: 10 [HEAD]\n"+
		"  [1]: 20\n"+
		"  [2]: 30 [TAIL]\n"+
		"\n", b.String())

	list.PopFront()
	list.PopFront()
	b.Reset()
	list.Visualize(b)
	require.Equal(t, "List: (size: 1)\n  [0]: 30 [HEAD] [TAIL]\n\n", b.String())
}

func assertList(t *testing.T, l *List[int], v ...int) {
	t.Helper()

	if len(v) == 0 {
		if front := l.Front(); front != nil {
			t.Errorf("front of list mismatch, expected <nil> but found %d", *front)
		}
		if back := l.Back(); back != nil {
			t.Errorf("back of list mismatch, expected <nil> but found %d", *back)
		}
	} else {
		if front := l.Front(); front == nil {
			t.Errorf("front of list mismatch, expected %d but found <nil>", v[0])
		} else if *front != v[0] {
			t.Errorf("front of list mismatch, expected %d but found %d", v[0], *front)
		}

		if back := l.Back(); back == nil {
			t.Errorf("back of list mismatch, expected %d but found <nil>", v[len(v)-1])
		} else if *back != v[len(v)-1] {
			t.Errorf("back of list mismatch, expected %d but found %d", v[len(v)-1], *back)
		}
	}

	i := 0
	for e := l.head; e != nil; i, e = i+1, e.next {
		if i >= len(v) {
			t.Errorf("list contains too many elements, expected %d but found %d", len(v), i+1)
			break
		}
		if *e.payload != v[i] {
			t.Errorf("list element at index %d mismatch, expected %d but found %d", i, v[i], *e.payload)
			break
		}
	}

	if n := l.Len(); n != len(v) {
		t.Errorf("list length mismatch, expected %d but found %d", len(v), n)
	}
	if l.Empty() != (len(v) == 0) {
		t.Errorf("list emptiness mismatch, expected %t", len(v) == 0)
	}
}
