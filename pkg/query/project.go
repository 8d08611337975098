package query

// Select maps every element through sel, 1:1, preserving order.
func Select[T, R any](q Query[T], sel func(T) R) Query[R] {
	out := make([]R, len(q.items))
	for i, v := range q.items {
		out[i] = sel(v)
	}
	return Query[R]{items: out}
}

// SelectIndexed is Select with the element position supplied to sel.
func SelectIndexed[T, R any](q Query[T], sel func(T, int) R) Query[R] {
	out := make([]R, len(q.items))
	for i, v := range q.items {
		out[i] = sel(v, i)
	}
	return Query[R]{items: out}
}

// SelectMany maps every element to a slice and flattens the results into
// one sequence, outer order first, inner order within.
func SelectMany[T, R any](q Query[T], sel func(T) []R) Query[R] {
	var out []R
	for _, v := range q.items {
		out = append(out, sel(v)...)
	}
	return Query[R]{items: out}
}

// Flatten removes a single level of nesting.
func Flatten[T any](q Query[[]T]) Query[T] {
	var out []T
	for _, inner := range q.items {
		out = append(out, inner...)
	}
	return Query[T]{items: out}
}

// Property builds a selector that projects a named key out of map-shaped
// rows, the convenience form for querying parsed JSON objects. Missing
// keys project nil.
func Property(name string) func(map[string]any) any {
	return func(row map[string]any) any {
		return row[name]
	}
}

// Grouping pairs a computed key with the ordered elements sharing it.
type Grouping[K comparable, T any] struct {
	Key   K
	Items Query[T]
}

// GroupBy partitions the sequence by computed key. Groups appear in
// first-occurrence order of their key; elements keep their original
// relative order within a group.
func GroupBy[T any, K comparable](q Query[T], key func(T) K) Query[Grouping[K, T]] {
	order := []K{}
	buckets := make(map[K][]T)
	for _, v := range q.items {
		k := key(v)
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], v)
	}
	out := make([]Grouping[K, T], len(order))
	for i, k := range order {
		out[i] = Grouping[K, T]{Key: k, Items: Query[T]{items: buckets[k]}}
	}
	return Query[Grouping[K, T]]{items: out}
}
