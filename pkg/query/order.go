package query

import "sort"

// OrderBy sorts ascending by the computed key under the default comparer.
// The sort is stable: elements with equal keys keep their original
// relative order.
func (q Query[T]) OrderBy(key func(T) any) Query[T] {
	return q.sortBy(key, false)
}

// OrderByDescending sorts descending by the computed key, stably.
func (q Query[T]) OrderByDescending(key func(T) any) Query[T] {
	return q.sortBy(key, true)
}

// ThenBy re-sorts the whole sequence stably by the given key. The
// previous ordering survives only among elements whose new keys compare
// equal, so OrderBy(a).ThenBy(b) orders by b first with a as tiebreak.
func (q Query[T]) ThenBy(key func(T) any) Query[T] {
	return q.sortBy(key, false)
}

// ThenByDescending is ThenBy with a descending secondary key.
func (q Query[T]) ThenByDescending(key func(T) any) Query[T] {
	return q.sortBy(key, true)
}

func (q Query[T]) sortBy(key func(T) any, desc bool) Query[T] {
	type keyed struct {
		key   any
		value T
	}
	pairs := make([]keyed, len(q.items))
	for i, v := range q.items {
		// Keys are computed once up front, not inside the comparator.
		pairs[i] = keyed{key: key(v), value: v}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if desc {
			return Compare(pairs[i].key, pairs[j].key) > 0
		}
		return Compare(pairs[i].key, pairs[j].key) < 0
	})
	out := make([]T, len(pairs))
	for i, p := range pairs {
		out[i] = p.value
	}
	return Query[T]{items: out}
}
