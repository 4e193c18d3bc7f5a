package compare

import (
	"testing"
	"testing/quick"
)

func TestFunction(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{a: 1, b: 2, want: -1},
		{a: 2, b: 1, want: +1},
		{a: 3, b: 3, want: 0},
	}

	for _, test := range tests {
		if got := Function(test.a, test.b); got != test.want {
			t.Errorf("wrong comparison of %d and %d: got=%d want=%d", test.a, test.b, got, test.want)
		}
	}
}

func TestPointers(t *testing.T) {
	f := func(a, b string) bool {
		return Pointers(&a, &b) == Function(a, b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReverse(t *testing.T) {
	reverse := Reverse(Function[int64])
	f := func(a, b int64) bool {
		return reverse(a, b) == -Function(a, b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
