package query

// Chunk partitions the sequence into consecutive groups of size; the
// last group may be shorter. size < 1 yields an empty result.
func Chunk[T any](q Query[T], size int) Query[[]T] {
	if size < 1 {
		return Empty[[]T]()
	}
	var out [][]T
	for start := 0; start < len(q.items); start += size {
		end := start + size
		if end > len(q.items) {
			end = len(q.items)
		}
		chunk := make([]T, end-start)
		copy(chunk, q.items[start:end])
		out = append(out, chunk)
	}
	return Query[[]T]{items: out}
}

// Batch is an alias for Chunk.
func Batch[T any](q Query[T], size int) Query[[]T] {
	return Chunk(q, size)
}

// Window produces the overlapping sliding windows of the given size,
// n-size+1 of them; empty when size exceeds the sequence length or is
// not positive.
func Window[T any](q Query[T], size int) Query[[]T] {
	if size < 1 || size > len(q.items) {
		return Empty[[]T]()
	}
	out := make([][]T, 0, len(q.items)-size+1)
	for start := 0; start+size <= len(q.items); start++ {
		window := make([]T, size)
		copy(window, q.items[start:start+size])
		out = append(out, window)
	}
	return Query[[]T]{items: out}
}

// Pairwise maps each adjacent pair of elements through sel, yielding
// n-1 results.
func Pairwise[T, R any](q Query[T], sel func(a, b T) R) Query[R] {
	if len(q.items) < 2 {
		return Empty[R]()
	}
	out := make([]R, len(q.items)-1)
	for i := 0; i+1 < len(q.items); i++ {
		out[i] = sel(q.items[i], q.items[i+1])
	}
	return Query[R]{items: out}
}

// Scan emits the running left-fold prefix sequence: one accumulator per
// input element, excluding the initial seed.
func Scan[T, R any](q Query[T], seed R, fn func(R, T) R) Query[R] {
	out := make([]R, len(q.items))
	acc := seed
	for i, v := range q.items {
		acc = fn(acc, v)
		out[i] = acc
	}
	return Query[R]{items: out}
}

// Partition splits the sequence into (matching, non-matching), each
// preserving original relative order.
func (q Query[T]) Partition(pred func(T) bool) (Query[T], Query[T]) {
	var hit, miss []T
	for _, v := range q.items {
		if pred(v) {
			hit = append(hit, v)
		} else {
			miss = append(miss, v)
		}
	}
	return Query[T]{items: hit}, Query[T]{items: miss}
}
