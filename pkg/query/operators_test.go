package query

import (
	"fmt"
	"reflect"
	"testing"
)

func TestOrderByIsStable(t *testing.T) {
	type row struct {
		key int
		tag string
	}
	rows := Of(
		row{2, "a"}, row{1, "b"}, row{2, "c"}, row{1, "d"},
	)

	sorted := rows.OrderBy(func(r row) any { return r.key }).ToSlice()
	expected := []row{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}
	if !reflect.DeepEqual(sorted, expected) {
		t.Errorf("stable OrderBy: got %v", sorted)
	}
}

func TestOrderByComparerContract(t *testing.T) {
	// nil sorts before defined values; numbers numerically; strings
	// lexicographically.
	mixed := Of[any](3.0, nil, 1.0, 2.0)
	got := mixed.OrderBy(func(v any) any { return v }).ToSlice()
	expected := []any{nil, 1.0, 2.0, 3.0}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("nil-first numeric order: got %v", got)
	}

	words := Of("pear", "apple", "fig")
	if got := words.OrderBy(func(s string) any { return s }).ToSlice(); !reflect.DeepEqual(got, []string{"apple", "fig", "pear"}) {
		t.Errorf("string order: got %v", got)
	}
}

// ThenBy re-sorts the whole sequence and composes with a prior OrderBy
// only through sort stability: secondary key first, then primary.
func TestOrderByThenBy(t *testing.T) {
	type row struct{ a, b int }
	rows := Of(row{2, 1}, row{1, 2}, row{2, 2}, row{1, 1})

	got := rows.
		OrderBy(func(r row) any { return r.b }).
		ThenBy(func(r row) any { return r.a }).
		ToSlice()

	expected := []row{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("OrderBy+ThenBy: got %v", got)
	}
}

func TestOrderByDescending(t *testing.T) {
	got := Of(1, 3, 2).OrderByDescending(func(v int) any { return v }).ToSlice()
	if !reflect.DeepEqual(got, []int{3, 2, 1}) {
		t.Errorf("OrderByDescending: got %v", got)
	}
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy(Of(1, 2, 3, 4, 5), func(v int) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	}).ToSlice()

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Key iteration order follows first occurrence: 1 is odd.
	if groups[0].Key != "odd" || !reflect.DeepEqual(groups[0].Items.ToSlice(), []int{1, 3, 5}) {
		t.Errorf("odd group: %v %v", groups[0].Key, groups[0].Items.ToSlice())
	}
	if groups[1].Key != "even" || !reflect.DeepEqual(groups[1].Items.ToSlice(), []int{2, 4}) {
		t.Errorf("even group: %v %v", groups[1].Key, groups[1].Items.ToSlice())
	}
}

type user struct {
	id   int
	name string
}

type post struct {
	userID int
	title  string
}

func TestJoin(t *testing.T) {
	users := Of(user{1, "ann"}, user{2, "bob"}, user{3, "cat"})
	posts := Of(post{1, "p1"}, post{2, "p2"}, post{1, "p3"})

	joined := Join(users, posts,
		func(u user) int { return u.id },
		func(p post) int { return p.userID },
		func(u user, p post) string { return u.name + ":" + p.title },
	).ToSlice()

	expected := []string{"ann:p1", "ann:p3", "bob:p2"}
	if !reflect.DeepEqual(joined, expected) {
		t.Errorf("Join: got %v", joined)
	}
}

// Join must hash the inner sequence: key selector call counts stay
// linear in the input sizes, not quadratic.
func TestJoinKeySelectorCallCount(t *testing.T) {
	const n = 500
	outer := Range(0, n)
	inner := Range(0, n)

	outerCalls, innerCalls := 0, 0
	Join(outer, inner,
		func(v int) int { outerCalls++; return v },
		func(v int) int { innerCalls++; return v },
		func(a, b int) int { return a + b },
	)

	if outerCalls != n || innerCalls != n {
		t.Errorf("expected %d+%d selector calls, got %d+%d", n, n, outerCalls, innerCalls)
	}
}

func TestLeftJoin(t *testing.T) {
	users := Of(user{1, "ann"}, user{9, "zed"})
	posts := Of(post{1, "p1"})

	joined := LeftJoin(users, posts,
		func(u user) int { return u.id },
		func(p post) int { return p.userID },
		func(u user, p *post) string {
			if p == nil {
				return u.name + ":none"
			}
			return u.name + ":" + p.title
		},
	).ToSlice()

	if !reflect.DeepEqual(joined, []string{"ann:p1", "zed:none"}) {
		t.Errorf("LeftJoin: got %v", joined)
	}
}

func TestGroupJoin(t *testing.T) {
	users := Of(user{1, "ann"}, user{2, "bob"})
	posts := Of(post{1, "p1"}, post{1, "p3"})

	counts := GroupJoin(users, posts,
		func(u user) int { return u.id },
		func(p post) int { return p.userID },
		func(u user, group Query[post]) int { return group.Count() },
	).ToSlice()

	if !reflect.DeepEqual(counts, []int{2, 0}) {
		t.Errorf("GroupJoin counts: got %v", counts)
	}
}

func TestCrossJoin(t *testing.T) {
	got := CrossJoin(Of(1, 2), Of("a", "b"), func(n int, s string) string {
		return fmt.Sprintf("%d%s", n, s)
	}).ToSlice()

	if !reflect.DeepEqual(got, []string{"1a", "1b", "2a", "2b"}) {
		t.Errorf("CrossJoin: got %v", got)
	}
}

func TestChunkAndWindow(t *testing.T) {
	chunks := Chunk(Of(1, 2, 3, 4, 5), 2).ToSlice()
	if !reflect.DeepEqual(chunks, [][]int{{1, 2}, {3, 4}, {5}}) {
		t.Errorf("Chunk(2): got %v", chunks)
	}

	windows := Window(Of(1, 2, 3, 4), 2).ToSlice()
	if !reflect.DeepEqual(windows, [][]int{{1, 2}, {2, 3}, {3, 4}}) {
		t.Errorf("Window(2): got %v", windows)
	}

	if got := Window(Of(1, 2), 3).ToSlice(); len(got) != 0 {
		t.Errorf("Window larger than sequence should be empty, got %v", got)
	}
}

func TestPairwiseScanPartition(t *testing.T) {
	diffs := Pairwise(Of(1, 4, 9, 16), func(a, b int) int { return b - a }).ToSlice()
	if !reflect.DeepEqual(diffs, []int{3, 5, 7}) {
		t.Errorf("Pairwise: got %v", diffs)
	}

	// Scan emits n running totals, excluding the seed itself.
	running := Scan(Of(1, 2, 3), 0, func(acc, v int) int { return acc + v }).ToSlice()
	if !reflect.DeepEqual(running, []int{1, 3, 6}) {
		t.Errorf("Scan: got %v", running)
	}

	hit, miss := Of(1, 2, 3, 4, 5).Partition(func(v int) bool { return v%2 == 0 })
	if !reflect.DeepEqual(hit.ToSlice(), []int{2, 4}) || !reflect.DeepEqual(miss.ToSlice(), []int{1, 3, 5}) {
		t.Errorf("Partition: got %v / %v", hit.ToSlice(), miss.ToSlice())
	}
}

func TestPositional(t *testing.T) {
	q := Of(1, 2, 3, 4, 5)

	testCases := []struct {
		got         []int
		expected    []int
		description string
	}{
		{q.Skip(2).ToSlice(), []int{3, 4, 5}, "Skip"},
		{q.Take(2).ToSlice(), []int{1, 2}, "Take"},
		{q.Skip(9).ToSlice(), []int{}, "Skip past end"},
		{q.Take(9).ToSlice(), []int{1, 2, 3, 4, 5}, "Take past end"},
		{q.SkipWhile(func(v int) bool { return v < 3 }).ToSlice(), []int{3, 4, 5}, "SkipWhile"},
		{q.TakeWhile(func(v int) bool { return v < 3 }).ToSlice(), []int{1, 2}, "TakeWhile"},
		{q.SkipLast(2).ToSlice(), []int{1, 2, 3}, "SkipLast"},
		{q.TakeLast(2).ToSlice(), []int{4, 5}, "TakeLast"},
		{q.Reverse().ToSlice(), []int{5, 4, 3, 2, 1}, "Reverse"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if !reflect.DeepEqual(tc.got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, tc.got)
			}
		})
	}
}

func TestLeadLag(t *testing.T) {
	q := Of(1, 2, 3, 4)

	if got := q.Lead(1, 0).ToSlice(); !reflect.DeepEqual(got, []int{2, 3, 4, 0}) {
		t.Errorf("Lead(1): got %v", got)
	}
	if got := q.Lag(2, -1).ToSlice(); !reflect.DeepEqual(got, []int{-1, -1, 1, 2}) {
		t.Errorf("Lag(2): got %v", got)
	}
	if got := q.Lead(9, 0).Count(); got != 4 {
		t.Errorf("Lead preserves length, got %d", got)
	}
}

func TestOfTypeAndWhereNotNull(t *testing.T) {
	mixed := Of[any](1.0, "two", nil, 3.0, true)

	nums := OfType[float64](mixed).ToSlice()
	if !reflect.DeepEqual(nums, []float64{1, 3}) {
		t.Errorf("OfType[float64]: got %v", nums)
	}

	if got := mixed.WhereNotNull().Count(); got != 4 {
		t.Errorf("WhereNotNull: got %d elements", got)
	}
}

func TestPropertySelector(t *testing.T) {
	rows := Of(
		map[string]any{"name": "ann", "age": 31.0},
		map[string]any{"name": "bob", "age": 28.0},
	)

	names := Select(rows, Property("name")).ToSlice()
	if !reflect.DeepEqual(names, []any{"ann", "bob"}) {
		t.Errorf("Property selector: got %v", names)
	}
}

func TestMinMaxBy(t *testing.T) {
	words := Of("bb", "a", "ccc")

	if v, ok := words.MaxBy(func(s string) any { return len(s) }); !ok || v != "ccc" {
		t.Errorf("MaxBy: got %q ok=%v", v, ok)
	}
	if v, ok := words.MinBy(func(s string) any { return len(s) }); !ok || v != "a" {
		t.Errorf("MinBy: got %q ok=%v", v, ok)
	}
	if _, ok := Empty[string]().MaxBy(func(s string) any { return s }); ok {
		t.Error("MaxBy on empty should report false")
	}
}

func BenchmarkJoin(b *testing.B) {
	outer := Range(0, 2000)
	inner := Range(1000, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Join(outer, inner,
			func(v int) int { return v },
			func(v int) int { return v },
			func(a, b int) int { return a + b },
		)
	}
}
