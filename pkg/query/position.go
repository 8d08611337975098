package query

// Skip drops the first n elements. Skipping past the end yields empty.
func (q Query[T]) Skip(n int) Query[T] {
	if n < 0 {
		n = 0
	}
	if n >= len(q.items) {
		return Empty[T]()
	}
	out := make([]T, len(q.items)-n)
	copy(out, q.items[n:])
	return Query[T]{items: out}
}

// Take keeps the first n elements.
func (q Query[T]) Take(n int) Query[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if n > len(q.items) {
		n = len(q.items)
	}
	out := make([]T, n)
	copy(out, q.items[:n])
	return Query[T]{items: out}
}

// SkipWhile drops the leading elements satisfying pred, keeping
// everything from the first failure onward.
func (q Query[T]) SkipWhile(pred func(T) bool) Query[T] {
	start := 0
	for start < len(q.items) && pred(q.items[start]) {
		start++
	}
	return q.Skip(start)
}

// TakeWhile keeps the leading elements satisfying pred, stopping at the
// first failure.
func (q Query[T]) TakeWhile(pred func(T) bool) Query[T] {
	end := 0
	for end < len(q.items) && pred(q.items[end]) {
		end++
	}
	return q.Take(end)
}

// SkipLast drops the final n elements.
func (q Query[T]) SkipLast(n int) Query[T] {
	if n < 0 {
		n = 0
	}
	return q.Take(len(q.items) - n)
}

// TakeLast keeps the final n elements.
func (q Query[T]) TakeLast(n int) Query[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return q.Skip(len(q.items) - n)
}

// ElementAt returns the element at index i, false when out of range.
func (q Query[T]) ElementAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(q.items) {
		return zero, false
	}
	return q.items[i], true
}

// Lead shifts the sequence forward by n positions: element i of the
// result is the source element i+n, with def padding the exposed tail.
// The length is preserved.
func (q Query[T]) Lead(n int, def T) Query[T] {
	return q.shift(n, def)
}

// Lag shifts the sequence backward by n positions: element i of the
// result is the source element i-n, with def padding the exposed head.
// The length is preserved.
func (q Query[T]) Lag(n int, def T) Query[T] {
	return q.shift(-n, def)
}

func (q Query[T]) shift(n int, def T) Query[T] {
	out := make([]T, len(q.items))
	for i := range out {
		src := i + n
		if src >= 0 && src < len(q.items) {
			out[i] = q.items[src]
		} else {
			out[i] = def
		}
	}
	return Query[T]{items: out}
}
