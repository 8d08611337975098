/*
Package suggest computes context-aware completions for playground scripts
against a live JSON document.

On every recompute the engine classifies the text before the cursor into
one of five contexts (snippet trigger, callback parameter, bracket
notation, dot notation, none), resolves candidates against the document
path index, and reports the text span to replace on acceptance. The
engine never lets an internal failure escape to the host editor: any
unexpected condition collapses to the closed, no-suggestions state.
*/
package suggest

import (
	"github.com/charmbracelet/log"

	"github.com/codefrydev/JsonPlayground/pkg/document"
)

// Range is a half-open text offset interval.
type Range struct {
	Start int
	End   int
}

// Suggestion is one completion candidate.
type Suggestion struct {
	// Path is the canonical access path from the document root; the
	// snippet body for snippet candidates.
	Path string
	// Label is the short display text: a key name, "[0]", "map()" or a
	// snippet label.
	Label string
	// Type is the candidate's type tag: a JSON kind, "method" or
	// "snippet".
	Type string
	// Preview is a short rendering of the underlying value.
	Preview string
	// Insert is the text written over the trigger range on acceptance.
	Insert string
}

// Acceptance is what the host applies to its buffer after a candidate is
// accepted.
type Acceptance struct {
	ReplacementText string
	InsertionRange  Range
}

// Result is the engine state the host renders after a recompute or
// navigation command.
type Result struct {
	Candidates    []Suggestion
	SelectedIndex int
	Trigger       Range
	IsOpen        bool
}

// Options tune candidate computation.
type Options struct {
	// RootName is the identifier the document is bound to in scripts.
	RootName string
	// ArraySampleLimit bounds how many array elements are sampled for
	// callback parameter inference.
	ArraySampleLimit int
	// IndexSampleLimit bounds how many array indices the path index
	// records per array.
	IndexSampleLimit int
	// CaseSensitive switches prefix matching from the default
	// case-insensitive comparison.
	CaseSensitive bool
}

// DefaultOptions returns the options used by the playground UI.
func DefaultOptions() Options {
	return Options{
		RootName:         "data",
		ArraySampleLimit: 10,
		IndexSampleLimit: 3,
	}
}

// Engine computes suggestions for one document. It is synchronous and
// single-threaded; the host calls it on every text change or cursor move.
type Engine struct {
	opts     Options
	snippets []Snippet
	index    *document.Index
	last     Result
}

// NewEngine returns an engine with no document loaded.
func NewEngine(opts Options) *Engine {
	if opts.RootName == "" {
		opts.RootName = "data"
	}
	if opts.ArraySampleLimit <= 0 {
		opts.ArraySampleLimit = 10
	}
	if opts.IndexSampleLimit <= 0 {
		opts.IndexSampleLimit = 3
	}
	return &Engine{
		opts:     opts,
		snippets: DefaultSnippets,
	}
}

// SetSnippets replaces the snippet catalog.
func (e *Engine) SetSnippets(snippets []Snippet) {
	e.snippets = snippets
}

// SetDocument parses the document text and rebuilds the path index. A
// parse failure is normal mid-edit state: the engine reverts to "no
// document" and reports the error for the host's status line only.
func (e *Engine) SetDocument(text string) error {
	value, err := document.Parse(text)
	if err != nil {
		log.Debugf("Document did not parse, suggestions disabled: %v", err)
		e.index = nil
		e.last = Result{}
		return err
	}
	e.SetDocumentValue(value)
	return nil
}

// SetDocumentValue installs an already-parsed document value.
func (e *Engine) SetDocumentValue(value any) {
	if value == nil {
		e.index = nil
		e.last = Result{}
		return
	}
	e.index = document.BuildIndex(value, e.opts.RootName, e.opts.IndexSampleLimit)
	e.last = Result{}
}

// Document returns the loaded document value, nil when none is loaded.
func (e *Engine) Document() any {
	if e.index == nil {
		return nil
	}
	return e.index.Root()
}

// Recompute classifies the buffer at the cursor and rebuilds the
// candidate list. The selection resets to the first candidate. It never
// panics; a failure inside candidate computation closes the list.
func (e *Engine) Recompute(text string, cursor int) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Suggestion recompute recovered: %v", r)
			result = Result{}
			e.last = result
		}
	}()

	ctx := classify(text, cursor)

	var candidates []Suggestion
	switch ctx.kind {
	case ctxSnippet:
		candidates = e.snippetCandidates()
	case ctxCallback:
		candidates = e.callbackCandidates(ctx)
	case ctxBracket:
		candidates = e.bracketCandidates(ctx)
	case ctxDot:
		candidates = e.dotCandidates(ctx)
	}

	if len(candidates) == 0 {
		e.last = Result{}
		return e.last
	}
	e.last = Result{
		Candidates:    candidates,
		SelectedIndex: 0,
		Trigger:       ctx.trigger,
		IsOpen:        true,
	}
	return e.last
}

// MoveSelection moves the selected index by direction (+1 down, -1 up),
// wrapping circularly. A closed list is unaffected.
func (e *Engine) MoveSelection(direction int) Result {
	if !e.last.IsOpen || len(e.last.Candidates) == 0 {
		return e.last
	}
	n := len(e.last.Candidates)
	e.last.SelectedIndex = ((e.last.SelectedIndex+direction)%n + n) % n
	return e.last
}

// Selected returns the currently selected candidate.
func (e *Engine) Selected() (Suggestion, bool) {
	if !e.last.IsOpen || len(e.last.Candidates) == 0 {
		return Suggestion{}, false
	}
	return e.last.Candidates[e.last.SelectedIndex], true
}

// Accept resolves candidate i of the open list into the edit the host
// should apply, then closes the list. The host repositions its cursor at
// the end of the inserted text.
func (e *Engine) Accept(i int) (Acceptance, bool) {
	if !e.last.IsOpen || i < 0 || i >= len(e.last.Candidates) {
		return Acceptance{}, false
	}
	candidate := e.last.Candidates[i]
	trigger := e.last.Trigger
	e.Close()
	return Acceptance{
		ReplacementText: candidate.Insert,
		InsertionRange:  trigger,
	}, true
}

// Close discards the candidate list.
func (e *Engine) Close() {
	e.last = Result{}
}

// State returns the current result without recomputing.
func (e *Engine) State() Result {
	return e.last
}
