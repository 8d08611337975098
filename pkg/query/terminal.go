package query

import "fmt"

// ToSlice materializes the sequence as a fresh slice. The result is a
// copy; mutating it never affects the query.
func (q Query[T]) ToSlice() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// ToList is an alias for ToSlice.
func (q Query[T]) ToList() []T {
	return q.ToSlice()
}

// ToMap materializes into a map keyed by keySel. Later elements with a
// duplicate key overwrite earlier ones.
func ToMap[T any, K comparable, V any](q Query[T], keySel func(T) K, valSel func(T) V) map[K]V {
	out := make(map[K]V, len(q.items))
	for _, v := range q.items {
		out[keySel(v)] = valSel(v)
	}
	return out
}

// ToRecord is ToMap specialized to string keys, matching the shape of a
// JSON object.
func ToRecord[T, V any](q Query[T], keySel func(T) string, valSel func(T) V) map[string]V {
	return ToMap(q, keySel, valSel)
}

// ToSet materializes the computed keys into a membership set.
func ToSet[T any, K comparable](q Query[T], keySel func(T) K) map[K]struct{} {
	out := make(map[K]struct{}, len(q.items))
	for _, v := range q.items {
		out[keySel(v)] = struct{}{}
	}
	return out
}

// First returns the first element, false when the sequence is empty.
func (q Query[T]) First() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[0], true
}

// FirstOrDefault returns the first element or the zero value.
func (q Query[T]) FirstOrDefault() T {
	v, _ := q.First()
	return v
}

// Last returns the final element, false when the sequence is empty.
func (q Query[T]) Last() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// LastOrDefault returns the final element or the zero value.
func (q Query[T]) LastOrDefault() T {
	v, _ := q.Last()
	return v
}

// Single returns the sole element. Zero or multiple elements is a
// contract violation in the calling chain and surfaces as an error.
func (q Query[T]) Single() (T, error) {
	var zero T
	switch len(q.items) {
	case 0:
		return zero, fmt.Errorf("query: Single on empty sequence")
	case 1:
		return q.items[0], nil
	}
	return zero, fmt.Errorf("query: Single on sequence of %d elements", len(q.items))
}

// SingleOrDefault returns the sole element, the zero value for an empty
// sequence, and an error when more than one element is present.
func (q Query[T]) SingleOrDefault() (T, error) {
	var zero T
	switch len(q.items) {
	case 0:
		return zero, nil
	case 1:
		return q.items[0], nil
	}
	return zero, fmt.Errorf("query: SingleOrDefault on sequence of %d elements", len(q.items))
}

// Any reports whether the sequence has at least one element.
func (q Query[T]) Any() bool {
	return len(q.items) > 0
}

// AnyMatch reports whether any element satisfies pred.
func (q Query[T]) AnyMatch(pred func(T) bool) bool {
	for _, v := range q.items {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred; vacuously true for
// an empty sequence.
func (q Query[T]) All(pred func(T) bool) bool {
	for _, v := range q.items {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Contains reports whether any element equals value under the default
// comparer.
func (q Query[T]) Contains(value T) bool {
	for _, v := range q.items {
		if equal(v, value) {
			return true
		}
	}
	return false
}

// SequenceEqual reports whether both sequences have the same length and
// pairwise comparer-equal elements.
func (q Query[T]) SequenceEqual(other Query[T]) bool {
	if len(q.items) != len(other.items) {
		return false
	}
	for i, v := range q.items {
		if !equal(v, other.items[i]) {
			return false
		}
	}
	return true
}

// CopyTo writes the sequence into an externally-owned buffer starting at
// offset and returns the number of elements written. This is the only
// mutating terminal; it exists to interoperate with caller-owned slices.
func (q Query[T]) CopyTo(dst []T, offset int) int {
	if offset < 0 || offset >= len(dst) {
		return 0
	}
	return copy(dst[offset:], q.items)
}
