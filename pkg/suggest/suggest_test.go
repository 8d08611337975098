package suggest

import (
	"strings"
	"testing"
)

const sampleDoc = `{"user":{"name":"John"},"posts":[{"id":1,"title":"A"},{"id":2,"title":"B"}]}`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(DefaultOptions())
	if err := e.SetDocument(sampleDoc); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}
	return e
}

func labels(result Result) []string {
	out := make([]string, len(result.Candidates))
	for i, c := range result.Candidates {
		out[i] = c.Label
	}
	return out
}

func TestDotPartialAtRoot(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.u"

	result := e.Recompute(buffer, len(buffer))

	if !result.IsOpen {
		t.Fatal("expected open suggestions")
	}
	if got := labels(result); len(got) != 1 || got[0] != "user" {
		t.Errorf("expected [user], got %v", got)
	}
	// Replacement range covers the typed "u" only.
	if result.Trigger.Start != len("data.") || result.Trigger.End != len(buffer) {
		t.Errorf("trigger range: got %+v", result.Trigger)
	}
	if result.Candidates[0].Type != "object" {
		t.Errorf("user should be tagged object, got %s", result.Candidates[0].Type)
	}
}

func TestDotImmediateChildrenOnly(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.user."

	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 1 || got[0] != "name" {
		t.Errorf("expected only the immediate child [name], got %v", got)
	}
}

func TestDotArrayOffersMethods(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.posts."

	result := e.Recompute(buffer, len(buffer))
	got := labels(result)

	for _, want := range []string{"length", "map()", "filter()", "reduce()", "sort()"} {
		found := false
		for _, l := range got {
			if l == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %s in %v", want, got)
		}
	}
	// Indexed elements complete through bracket notation, not after a dot.
	for _, l := range got {
		if strings.HasPrefix(l, "[") {
			t.Errorf("dot context offered index candidate %s", l)
		}
	}
}

func TestCallbackParameterMembers(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.posts.map(p => p."

	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 2 || got[0] != "id" || got[1] != "title" {
		t.Errorf("expected [id title], got %v", got)
	}
	if result.Candidates[0].Type != "number" || result.Candidates[1].Type != "string" {
		t.Errorf("type tags: got %s, %s", result.Candidates[0].Type, result.Candidates[1].Type)
	}
	// Accepting replaces the empty partial right after "p.".
	if result.Trigger.Start != len(buffer) || result.Trigger.End != len(buffer) {
		t.Errorf("trigger range: got %+v", result.Trigger)
	}
}

func TestCallbackParameterPartialFilter(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.posts.filter(x => x.TI"

	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 1 || got[0] != "title" {
		t.Errorf("case-insensitive partial: expected [title], got %v", got)
	}
}

func TestCallbackReduceAndSortShapes(t *testing.T) {
	e := newTestEngine(t)

	testCases := []struct {
		buffer      string
		expected    []string
		description string
	}{
		{"data.posts.reduce((acc, item) => item.", []string{"id", "title"}, "reduce second parameter is the element"},
		{"data.posts.sort((a, b) => b.", []string{"id", "title"}, "sort comparator parameters are elements"},
		{"data.posts.reduce((acc, item) => acc.", nil, "reduce accumulator has no inferable shape"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := e.Recompute(tc.buffer, len(tc.buffer))
			got := labels(result)
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Errorf("expected %v, got %v", tc.expected, got)
				}
			}
		})
	}
}

func TestCallbackMemberSubPath(t *testing.T) {
	e := NewEngine(DefaultOptions())
	doc := `{"posts":[{"meta":{"views":10,"likes":3},"id":1}]}`
	if err := e.SetDocument(doc); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}

	buffer := "data.posts.map(x => x.meta."
	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 2 || got[0] != "views" || got[1] != "likes" {
		t.Errorf("expected [views likes], got %v", got)
	}
}

func TestBracketArrayIndices(t *testing.T) {
	e := newTestEngine(t)
	buffer := `data.posts[`

	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 2 || got[0] != "[0]" || got[1] != "[1]" {
		t.Errorf("expected [[0] [1]], got %v", got)
	}
	if result.Candidates[0].Insert != "data.posts[0]" {
		t.Errorf("insertion text: got %q", result.Candidates[0].Insert)
	}
}

func TestBracketObjectKeys(t *testing.T) {
	e := newTestEngine(t)
	buffer := `data.user["`

	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 1 || got[0] != "name" {
		t.Fatalf("expected [name], got %v", got)
	}
	if result.Candidates[0].Insert != `data.user["name"]` {
		t.Errorf("insertion text: got %q", result.Candidates[0].Insert)
	}
	// Trigger spans the whole access expression being rewritten.
	if result.Trigger.Start != 0 || result.Trigger.End != len(buffer) {
		t.Errorf("trigger range: got %+v", result.Trigger)
	}
}

func TestBracketQuoteEscaping(t *testing.T) {
	e := NewEngine(DefaultOptions())
	if err := e.SetDocument(`{"he said \"hi\"": 1}`); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}

	buffer := `data["`
	result := e.Recompute(buffer, len(buffer))

	if len(result.Candidates) != 1 {
		t.Fatalf("expected one candidate, got %v", labels(result))
	}
	if got := result.Candidates[0].Insert; got != `data["he said \"hi\""]` {
		t.Errorf("escaped insertion: got %q", got)
	}
}

func TestUnresolvablePathYieldsClosed(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.nonexistent.x"

	result := e.Recompute(buffer, len(buffer))

	if result.IsOpen || len(result.Candidates) != 0 {
		t.Errorf("expected closed result, got %+v", result)
	}
}

func TestSnippetTrigger(t *testing.T) {
	e := newTestEngine(t)

	result := e.Recompute("/", 1)

	if !result.IsOpen {
		t.Fatal("expected open snippet list")
	}
	if len(result.Candidates) != len(DefaultSnippets) {
		t.Errorf("snippet catalog should be unfiltered: got %d of %d", len(result.Candidates), len(DefaultSnippets))
	}
	for _, c := range result.Candidates {
		if c.Type != "snippet" {
			t.Errorf("candidate %s tagged %s", c.Label, c.Type)
		}
	}
	if result.Trigger.Start != 0 || result.Trigger.End != 1 {
		t.Errorf("trigger range: got %+v", result.Trigger)
	}
}

func TestSnippetTriggerOnNewLine(t *testing.T) {
	e := newTestEngine(t)
	buffer := "console.log(1)\n  /"

	result := e.Recompute(buffer, len(buffer))

	if !result.IsOpen {
		t.Fatal("expected snippet context on indented new line")
	}
	if result.Trigger.Start != len(buffer)-1 {
		t.Errorf("trigger should start at the slash, got %+v", result.Trigger)
	}
}

func TestNoDocumentMeansNoSuggestions(t *testing.T) {
	e := NewEngine(DefaultOptions())

	result := e.Recompute("data.u", 6)

	if result.IsOpen {
		t.Error("engine without a document should stay closed")
	}

	if err := e.SetDocument("{not json"); err == nil {
		t.Error("malformed document should report a parse error")
	}
	if result := e.Recompute("data.u", 6); result.IsOpen {
		t.Error("malformed document should yield no suggestions")
	}
}

func TestSelectionNavigationWraps(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.posts.map(p => p."
	result := e.Recompute(buffer, len(buffer))
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %v", labels(result))
	}

	if r := e.MoveSelection(1); r.SelectedIndex != 1 {
		t.Errorf("down: got %d", r.SelectedIndex)
	}
	if r := e.MoveSelection(1); r.SelectedIndex != 0 {
		t.Errorf("down wraps: got %d", r.SelectedIndex)
	}
	if r := e.MoveSelection(-1); r.SelectedIndex != 1 {
		t.Errorf("up wraps: got %d", r.SelectedIndex)
	}

	// Recompute resets the selection.
	if r := e.Recompute(buffer, len(buffer)); r.SelectedIndex != 0 {
		t.Errorf("recompute should reset selection, got %d", r.SelectedIndex)
	}
}

func TestAcceptReplacesTriggerRange(t *testing.T) {
	e := newTestEngine(t)
	buffer := "data.u"
	result := e.Recompute(buffer, len(buffer))
	if !result.IsOpen {
		t.Fatal("expected open suggestions")
	}

	acc, ok := e.Accept(0)
	if !ok {
		t.Fatal("Accept failed")
	}
	if acc.ReplacementText != "user" {
		t.Errorf("replacement: got %q", acc.ReplacementText)
	}
	edited := buffer[:acc.InsertionRange.Start] + acc.ReplacementText + buffer[acc.InsertionRange.End:]
	if edited != "data.user" {
		t.Errorf("applied edit: got %q", edited)
	}
	if e.State().IsOpen {
		t.Error("accept should close the list")
	}
}

func TestIndexSamplingBound(t *testing.T) {
	e := NewEngine(DefaultOptions())
	if err := e.SetDocument(`{"big":[1,2,3,4,5,6,7,8,9,10]}`); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}

	buffer := "data.big["
	result := e.Recompute(buffer, len(buffer))

	// Only the first 3 indices are indexed.
	if got := labels(result); len(got) != 3 {
		t.Errorf("expected 3 sampled indices, got %v", got)
	}
}

// A sibling key that happens to contain a dot must not swallow the
// children of the real nested object.
func TestDottedSiblingKeyDoesNotShadowChildren(t *testing.T) {
	e := NewEngine(DefaultOptions())
	if err := e.SetDocument(`{"a.b":1,"a":{"b":2,"c":3}}`); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}

	buffer := "data.a."
	result := e.Recompute(buffer, len(buffer))
	if got := labels(result); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("expected children [b c] of data.a, got %v", got)
	}

	// After a dot, only identifier keys are valid completions.
	result = e.Recompute("data.", 5)
	if got := labels(result); len(got) != 1 || got[0] != "a" {
		t.Errorf("expected only [a] at root, got %v", got)
	}

	// The dotted key completes through bracket notation.
	result = e.Recompute(`data["`, 6)
	got := labels(result)
	if len(got) != 2 || got[0] != "a.b" || got[1] != "a" {
		t.Fatalf("expected bracket keys [a.b a], got %v", got)
	}
	if result.Candidates[0].Insert != `data["a.b"]` {
		t.Errorf("bracket insertion: got %q", result.Candidates[0].Insert)
	}
}

func TestHeterogeneousArrayUnionKeys(t *testing.T) {
	e := NewEngine(DefaultOptions())
	doc := `{"rows":[{"a":1},{"b":2},{"a":3,"c":4}]}`
	if err := e.SetDocument(doc); err != nil {
		t.Fatalf("SetDocument: %v", err)
	}

	buffer := "data.rows.map(r => r."
	result := e.Recompute(buffer, len(buffer))

	if got := labels(result); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("expected merged keys [a b c], got %v", got)
	}
}
