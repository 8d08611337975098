package query

import "math"

// Sum totals the selected numeric values. An empty sequence sums to 0.
func (q Query[T]) Sum(sel func(T) float64) float64 {
	total := 0.0
	for _, v := range q.items {
		total += sel(v)
	}
	return total
}

// Average is the arithmetic mean of the selected values; NaN for an
// empty sequence.
func (q Query[T]) Average(sel func(T) float64) float64 {
	if len(q.items) == 0 {
		return math.NaN()
	}
	return q.Sum(sel) / float64(len(q.items))
}

// Max returns the largest selected value, false if the sequence is empty.
func (q Query[T]) Max(sel func(T) float64) (float64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	best := sel(q.items[0])
	for _, v := range q.items[1:] {
		if n := sel(v); n > best {
			best = n
		}
	}
	return best, true
}

// Min returns the smallest selected value, false if the sequence is empty.
func (q Query[T]) Min(sel func(T) float64) (float64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	best := sel(q.items[0])
	for _, v := range q.items[1:] {
		if n := sel(v); n < best {
			best = n
		}
	}
	return best, true
}

// MaxBy returns the element whose key is largest under the default
// comparer; false if the sequence is empty. Ties keep the earliest.
func (q Query[T]) MaxBy(key func(T) any) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	best := q.items[0]
	bestKey := key(best)
	for _, v := range q.items[1:] {
		if k := key(v); Compare(k, bestKey) > 0 {
			best, bestKey = v, k
		}
	}
	return best, true
}

// MinBy returns the element whose key is smallest under the default
// comparer; false if the sequence is empty. Ties keep the earliest.
func (q Query[T]) MinBy(key func(T) any) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	best := q.items[0]
	bestKey := key(best)
	for _, v := range q.items[1:] {
		if k := key(v); Compare(k, bestKey) < 0 {
			best, bestKey = v, k
		}
	}
	return best, true
}

// Fold is the seeded left fold, reducing the sequence into an
// accumulator of a possibly different type.
func Fold[T, R any](q Query[T], seed R, fn func(R, T) R) R {
	acc := seed
	for _, v := range q.items {
		acc = fn(acc, v)
	}
	return acc
}

// Aggregate folds without a seed: the first element becomes the implicit
// accumulator and the rest fold onto it. An empty sequence yields the
// zero value and false, not an error.
func (q Query[T]) Aggregate(fn func(T, T) T) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	acc := q.items[0]
	for _, v := range q.items[1:] {
		acc = fn(acc, v)
	}
	return acc, true
}
