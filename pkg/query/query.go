/*
Package query provides an eager, chainable sequence algebra over in-memory
collections, in the style of LINQ-to-objects.

A Query wraps an immutable snapshot of its elements. Every operator fully
evaluates and returns a brand-new snapshot; no operator mutates its source,
so earlier handles in a chain stay valid after later steps run. The engine
targets small in-memory collections (playground scripts over parsed JSON),
so eager evaluation is a deliberate trade for predictability over fusion.

Type-preserving operators are methods; operators that change the element
type (Select, GroupBy, Join, Scan, ...) are package functions taking the
query as their first argument, since Go methods cannot introduce type
parameters.
*/
package query

// Query is an ordered, finite sequence of elements.
type Query[T any] struct {
	items []T
}

// From copies a finite slice into a new sequence. The input is never
// aliased: later mutation of src does not affect the query.
func From[T any](src []T) Query[T] {
	items := make([]T, len(src))
	copy(items, src)
	return Query[T]{items: items}
}

// Of builds a sequence from its arguments.
func Of[T any](items ...T) Query[T] {
	return From(items)
}

// Empty returns a sequence with no elements.
func Empty[T any]() Query[T] {
	return Query[T]{}
}

// Range returns the count integers starting at start.
func Range(start, count int) Query[int] {
	if count <= 0 {
		return Empty[int]()
	}
	items := make([]int, count)
	for i := range items {
		items[i] = start + i
	}
	return Query[int]{items: items}
}

// Repeat returns a sequence of count copies of value.
func Repeat[T any](value T, count int) Query[T] {
	if count <= 0 {
		return Empty[T]()
	}
	items := make([]T, count)
	for i := range items {
		items[i] = value
	}
	return Query[T]{items: items}
}

// Concat concatenates any number of slices into one sequence, in order.
func Concat[T any](sources ...[]T) Query[T] {
	total := 0
	for _, s := range sources {
		total += len(s)
	}
	items := make([]T, 0, total)
	for _, s := range sources {
		items = append(items, s...)
	}
	return Query[T]{items: items}
}

// Sequence materializes count elements produced by gen(0..count-1).
// Generation is strict; the caller guarantees gen is total over the range.
func Sequence[T any](gen func(i int) T, count int) Query[T] {
	if count <= 0 {
		return Empty[T]()
	}
	items := make([]T, count)
	for i := range items {
		items[i] = gen(i)
	}
	return Query[T]{items: items}
}

// Count returns the number of elements.
func (q Query[T]) Count() int {
	return len(q.items)
}

// CountBy returns the number of elements satisfying pred.
func (q Query[T]) CountBy(pred func(T) bool) int {
	n := 0
	for _, v := range q.items {
		if pred(v) {
			n++
		}
	}
	return n
}

// Append returns a new sequence with items added at the end.
func (q Query[T]) Append(items ...T) Query[T] {
	out := make([]T, 0, len(q.items)+len(items))
	out = append(out, q.items...)
	out = append(out, items...)
	return Query[T]{items: out}
}

// Prepend returns a new sequence with items added at the front.
func (q Query[T]) Prepend(items ...T) Query[T] {
	out := make([]T, 0, len(q.items)+len(items))
	out = append(out, items...)
	out = append(out, q.items...)
	return Query[T]{items: out}
}

// ConcatWith appends another sequence after this one.
func (q Query[T]) ConcatWith(other Query[T]) Query[T] {
	return q.Append(other.items...)
}

// Reverse returns the sequence in opposite order.
func (q Query[T]) Reverse() Query[T] {
	out := make([]T, len(q.items))
	for i, v := range q.items {
		out[len(out)-1-i] = v
	}
	return Query[T]{items: out}
}

// ForEach invokes fn for every element in order.
func (q Query[T]) ForEach(fn func(T)) {
	for _, v := range q.items {
		fn(v)
	}
}
