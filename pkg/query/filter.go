package query

// Where keeps the elements satisfying pred, preserving order.
func (q Query[T]) Where(pred func(T) bool) Query[T] {
	var out []T
	for _, v := range q.items {
		if pred(v) {
			out = append(out, v)
		}
	}
	return Query[T]{items: out}
}

// WhereNotNull drops nil elements. Elements of non-nillable types are
// always kept.
func (q Query[T]) WhereNotNull() Query[T] {
	var out []T
	for _, v := range q.items {
		if !isNil(v) {
			out = append(out, v)
		}
	}
	return Query[T]{items: out}
}

// OfType keeps the elements of a Query[any] assignable to R, narrowing
// the element type.
func OfType[R any](q Query[any]) Query[R] {
	var out []R
	for _, v := range q.items {
		if r, ok := v.(R); ok {
			out = append(out, r)
		}
	}
	return Query[R]{items: out}
}

// Distinct keeps the first occurrence of each element, compared by the
// default comparer's identity (first-occurrence order preserved).
func (q Query[T]) Distinct() Query[T] {
	return q.DistinctBy(func(v T) any { return v })
}

// DistinctBy keeps the first element seen per computed key.
func (q Query[T]) DistinctBy(key func(T) any) Query[T] {
	seen := make(map[any]struct{}, len(q.items))
	var out []T
	for _, v := range q.items {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return Query[T]{items: out}
}

// Union returns the distinct elements of both sequences, this sequence's
// elements first.
func (q Query[T]) Union(other Query[T]) Query[T] {
	return q.UnionBy(other, func(v T) any { return v })
}

// UnionBy is Union with distinctness decided by a computed key.
func (q Query[T]) UnionBy(other Query[T], key func(T) any) Query[T] {
	return q.ConcatWith(other).DistinctBy(key)
}

// Intersect keeps the elements also present in other, first occurrence
// per key, in this sequence's order.
func (q Query[T]) Intersect(other Query[T]) Query[T] {
	return q.IntersectBy(other, func(v T) any { return v })
}

// IntersectBy is Intersect with membership decided by a computed key.
func (q Query[T]) IntersectBy(other Query[T], key func(T) any) Query[T] {
	members := make(map[any]struct{}, len(other.items))
	for _, v := range other.items {
		members[key(v)] = struct{}{}
	}
	seen := make(map[any]struct{})
	var out []T
	for _, v := range q.items {
		k := key(v)
		if _, in := members[k]; !in {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return Query[T]{items: out}
}

// Except keeps the elements not present in other, first occurrence per
// key, in this sequence's order.
func (q Query[T]) Except(other Query[T]) Query[T] {
	return q.ExceptBy(other, func(v T) any { return v })
}

// ExceptBy is Except with membership decided by a computed key.
func (q Query[T]) ExceptBy(other Query[T], key func(T) any) Query[T] {
	members := make(map[any]struct{}, len(other.items))
	for _, v := range other.items {
		members[key(v)] = struct{}{}
	}
	seen := make(map[any]struct{})
	var out []T
	for _, v := range q.items {
		k := key(v)
		if _, in := members[k]; in {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return Query[T]{items: out}
}
