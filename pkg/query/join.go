package query

// Join performs an inner equi-join. The inner sequence is hashed by key
// first, so total work is linear in both inputs plus matches, never a
// nested loop. Result order follows the outer sequence, then the inner
// matches in their original order.
func Join[TO, TI any, K comparable, R any](
	outer Query[TO], inner Query[TI],
	outerKey func(TO) K, innerKey func(TI) K,
	result func(TO, TI) R,
) Query[R] {
	index := indexBy(inner.items, innerKey)
	var out []R
	for _, o := range outer.items {
		for _, i := range index[outerKey(o)] {
			out = append(out, result(o, i))
		}
	}
	return Query[R]{items: out}
}

// LeftJoin is Join, but outer elements with no match are still emitted
// once, paired with a nil inner.
func LeftJoin[TO, TI any, K comparable, R any](
	outer Query[TO], inner Query[TI],
	outerKey func(TO) K, innerKey func(TI) K,
	result func(TO, *TI) R,
) Query[R] {
	index := indexBy(inner.items, innerKey)
	var out []R
	for _, o := range outer.items {
		matches := index[outerKey(o)]
		if len(matches) == 0 {
			out = append(out, result(o, nil))
			continue
		}
		for _, i := range matches {
			match := i
			out = append(out, result(o, &match))
		}
	}
	return Query[R]{items: out}
}

// GroupJoin pairs each outer element with its entire (possibly empty)
// matching inner group.
func GroupJoin[TO, TI any, K comparable, R any](
	outer Query[TO], inner Query[TI],
	outerKey func(TO) K, innerKey func(TI) K,
	result func(TO, Query[TI]) R,
) Query[R] {
	index := indexBy(inner.items, innerKey)
	out := make([]R, len(outer.items))
	for n, o := range outer.items {
		out[n] = result(o, Query[TI]{items: index[outerKey(o)]})
	}
	return Query[R]{items: out}
}

// CrossJoin is the full cartesian product, outer-major order. It is
// intentionally quadratic.
func CrossJoin[TA, TB, R any](a Query[TA], b Query[TB], result func(TA, TB) R) Query[R] {
	out := make([]R, 0, len(a.items)*len(b.items))
	for _, av := range a.items {
		for _, bv := range b.items {
			out = append(out, result(av, bv))
		}
	}
	return Query[R]{items: out}
}

func indexBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	index := make(map[K][]T, len(items))
	for _, v := range items {
		k := key(v)
		index[k] = append(index[k], v)
	}
	return index
}
