package suggest

import (
	"fmt"
	"strings"

	"github.com/codefrydev/JsonPlayground/pkg/document"
)

func (e *Engine) snippetCandidates() []Suggestion {
	out := make([]Suggestion, len(e.snippets))
	for i, s := range e.snippets {
		out[i] = Suggestion{
			Path:    s.Body,
			Label:   s.Label,
			Type:    "snippet",
			Preview: s.Body,
			Insert:  s.Body,
		}
	}
	return out
}

// dotCandidates offers the immediate children of the typed base path
// whose segment prefix-matches the partial identifier. Array indices
// and keys that are not valid identifiers are reachable through bracket
// notation instead; offering them after a dot would complete to an
// invalid access.
func (e *Engine) dotCandidates(ctx matchContext) []Suggestion {
	if e.index == nil || !e.rootAnchored(ctx.base) {
		return nil
	}
	var out []Suggestion
	seen := make(map[string]struct{})
	for _, entry := range e.index.ChildrenOf(ctx.base) {
		if !document.IsIdentifier(entry.Segment) {
			continue
		}
		if !e.prefixMatch(entry.Segment, ctx.partial) {
			continue
		}
		if _, dup := seen[entry.Segment]; dup {
			continue
		}
		seen[entry.Segment] = struct{}{}
		out = append(out, e.entrySuggestion(entry))
	}
	return out
}

// bracketCandidates completes inside "path[". Arrays complete by numeric
// index prefix; objects complete by key, re-encoded as a quoted bracket
// literal. Anything else yields nothing.
func (e *Engine) bracketCandidates(ctx matchContext) []Suggestion {
	if e.index == nil || !e.rootAnchored(ctx.base) {
		return nil
	}
	node, ok := e.resolve(ctx.base)
	if !ok {
		return nil
	}

	switch node.(type) {
	case []any:
		var out []Suggestion
		for _, entry := range e.index.ChildrenOf(ctx.base) {
			if !strings.HasPrefix(entry.Segment, "[") {
				continue
			}
			index := strings.Trim(entry.Segment, "[]")
			if !strings.HasPrefix(index, ctx.partial) {
				continue
			}
			out = append(out, Suggestion{
				Path:    entry.Path,
				Label:   entry.Segment,
				Type:    entry.Kind.String(),
				Preview: document.Preview(entry.Value),
				Insert:  entry.Path,
			})
		}
		return out
	case *document.Object:
		quote := ctx.quote
		if quote == 0 {
			quote = '"'
		}
		var out []Suggestion
		for _, entry := range e.index.ChildrenOf(ctx.base) {
			if entry.Method || strings.HasPrefix(entry.Segment, "[") {
				continue
			}
			if !e.prefixMatch(entry.Segment, ctx.partial) {
				continue
			}
			out = append(out, Suggestion{
				Path:    entry.Path,
				Label:   entry.Segment,
				Type:    entry.Kind.String(),
				Preview: document.Preview(entry.Value),
				Insert:  bracketLiteral(ctx.base, entry.Segment, quote),
			})
		}
		return out
	}
	return nil
}

// bracketLiteral renders base["key"], escaping the chosen quote where it
// appears literally in the key.
func bracketLiteral(base, key string, quote byte) string {
	q := string(quote)
	escaped := strings.ReplaceAll(key, q, `\`+q)
	return base + "[" + q + escaped + q + "]"
}

// callbackCandidates infers the element shape of an array-valued path by
// sampling its leading elements, then offers member keys for the bound
// callback parameter.
func (e *Engine) callbackCandidates(ctx matchContext) []Suggestion {
	if e.index == nil || !e.rootAnchored(ctx.base) {
		return nil
	}
	node, ok := e.resolve(ctx.base)
	if !ok {
		return nil
	}
	arr, ok := node.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}

	samples := arr
	if len(samples) > e.opts.ArraySampleLimit {
		samples = samples[:e.opts.ArraySampleLimit]
	}

	if ctx.member != "" {
		return e.memberCandidates(ctx, samples[0])
	}

	// No base member: merge keys across all sampled elements so
	// heterogeneous arrays still complete. The first sample holding a
	// key supplies its preview value.
	var out []Suggestion
	seen := make(map[string]struct{})
	for _, sample := range samples {
		obj, ok := sample.(*document.Object)
		if !ok {
			continue
		}
		for _, key := range obj.Keys() {
			if !e.prefixMatch(key, ctx.partial) {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			value, _ := obj.Get(key)
			out = append(out, Suggestion{
				Path:    fmt.Sprintf("%s[0].%s", ctx.base, key),
				Label:   key,
				Type:    document.KindOf(value).String(),
				Preview: document.Preview(value),
				Insert:  key,
			})
		}
	}
	return out
}

// memberCandidates resolves the typed member chain against the first
// sampled element and offers that value's immediate keys.
func (e *Engine) memberCandidates(ctx matchContext, sample any) []Suggestion {
	memberPath, ok := document.ParsePath(ctx.member)
	if !ok {
		return nil
	}
	value, ok := document.Resolve(sample, memberPath)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case *document.Object:
		var out []Suggestion
		for _, key := range v.Keys() {
			if !e.prefixMatch(key, ctx.partial) {
				continue
			}
			child, _ := v.Get(key)
			out = append(out, Suggestion{
				Path:    fmt.Sprintf("%s[0].%s.%s", ctx.base, ctx.member, key),
				Label:   key,
				Type:    document.KindOf(child).String(),
				Preview: document.Preview(child),
				Insert:  key,
			})
		}
		return out
	case []any:
		var out []Suggestion
		if e.prefixMatch("length", ctx.partial) {
			out = append(out, Suggestion{
				Path:   fmt.Sprintf("%s[0].%s.length", ctx.base, ctx.member),
				Label:  "length",
				Type:   "method",
				Insert: "length",
			})
		}
		for _, name := range document.ArrayMethods {
			if !e.prefixMatch(name, ctx.partial) {
				continue
			}
			out = append(out, Suggestion{
				Path:   fmt.Sprintf("%s[0].%s.%s", ctx.base, ctx.member, name),
				Label:  name + "()",
				Type:   "method",
				Insert: name + "()",
			})
		}
		return out
	}
	return nil
}

// entrySuggestion converts an index entry into a display candidate.
func (e *Engine) entrySuggestion(entry document.Entry) Suggestion {
	if entry.Method {
		label := entry.Segment
		insert := entry.Segment
		if entry.Segment != "length" {
			label += "()"
			insert += "()"
		}
		return Suggestion{
			Path:   entry.Path,
			Label:  label,
			Type:   "method",
			Insert: insert,
		}
	}
	return Suggestion{
		Path:    entry.Path,
		Label:   entry.Segment,
		Type:    entry.Kind.String(),
		Preview: document.Preview(entry.Value),
		Insert:  entry.Segment,
	}
}

// rootAnchored reports whether the typed base path starts at the
// document root identifier.
func (e *Engine) rootAnchored(base string) bool {
	root := e.index.RootName()
	if base == root {
		return true
	}
	return strings.HasPrefix(base, root+".") || strings.HasPrefix(base, root+"[")
}

// resolve evaluates a canonical base path against the live document.
func (e *Engine) resolve(base string) (any, bool) {
	rest := strings.TrimPrefix(base, e.index.RootName())
	path, ok := document.ParsePath(rest)
	if !ok {
		return nil, false
	}
	return document.Resolve(e.index.Root(), path)
}

func (e *Engine) prefixMatch(candidate, partial string) bool {
	if partial == "" {
		return true
	}
	if e.opts.CaseSensitive {
		return strings.HasPrefix(candidate, partial)
	}
	return strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(partial))
}
