package calendar

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/slices"
)

// Element is the constraint for collection members: a comparable granule.
type Element interface {
	comparable
	Span
}

// Collection is an immutable, sorted, duplicate-free list of granules of one type.
//
// Every collection carries the name of its concrete type ("Days", "Weeks",
// ...), so a Days and a plain Collection[Day] with the same contents are not
// equal.
type Collection[T Element] struct {
	name   string
	values []T
}

// NewCollection sorts values by interval order and drops duplicates.
func NewCollection[T Element](values []T) Collection[T] {
	return newCollection("Collection", values)
}

func newCollection[T Element](name string, values []T) Collection[T] {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, compareSpans[T])
	return Collection[T]{name: name, values: slices.Compact(sorted)}
}

func compareSpans[T Span](a, b T) int {
	return a.Bounds().Compare(b.Bounds())
}

func (c Collection[T]) Len() int {
	return len(c.values)
}

func (c Collection[T]) Contains(x T) bool {
	i, found := slices.BinarySearchFunc(c.values, x, compareSpans[T])
	return found && c.values[i] == x
}

// Get returns the element at index i. Negative indexes count from the end,
// so Get(-1) is the last element.
func (c Collection[T]) Get(i int) (T, error) {
	n := len(c.values)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		var zero T
		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, n)
	}
	return c.values[i], nil
}

// Slice returns the elements in [i, j) as a collection of the same type.
// Negative bounds count from the end and out-of-range bounds are clamped.
func (c Collection[T]) Slice(i, j int) Collection[T] {
	n := len(c.values)
	i, j = clampIndex(i, n), clampIndex(j, n)
	if j < i {
		j = i
	}
	return Collection[T]{name: c.name, values: slices.Clone(c.values[i:j])}
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// All iterates over the elements in order. Each call starts a fresh,
// independent iteration.
func (c Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of the sorted elements.
func (c Collection[T]) Values() []T {
	return slices.Clone(c.values)
}

// Equal reports whether both collections have the same concrete type and elements.
func (c Collection[T]) Equal(other Collection[T]) bool {
	return c.name == other.name && slices.Equal(c.values, other.values)
}

// Reversed always fails: collections only iterate forwards.
func (c Collection[T]) Reversed() (Collection[T], error) {
	return Collection[T]{}, fmt.Errorf("%w: %s cannot be reversed", ErrUnsupported, c.name)
}

// String returns "{v1, v2, ...}".
func (c Collection[T]) String() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// GoString returns the type name and elements, e.g. Months([Month(2025, 11), Month(2025, 12)]).
func (c Collection[T]) GoString() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = v.GoString()
	}
	return c.name + "([" + strings.Join(parts, ", ") + "])"
}
