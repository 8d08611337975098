package suggest

import (
	"regexp"
	"strings"
)

// contextKind is the five-way classification of the text before the
// cursor. Exactly one context is active per keystroke; detection runs in
// fixed priority order and the first match wins.
type contextKind int

const (
	ctxNone contextKind = iota
	ctxSnippet
	ctxCallback
	ctxBracket
	ctxDot
)

// matchContext carries everything candidate computation needs from the
// classified buffer prefix.
type matchContext struct {
	kind contextKind
	// trigger is the half-open span replaced on acceptance; it always
	// ends at the cursor.
	trigger Range
	// base is the typed access path without the partial tail: the full
	// dotted base for dot/bracket contexts, the array-valued path for
	// callback contexts.
	base string
	// member is the dotted sub-path typed on the callback parameter,
	// without the trailing dot ("profile.address" in "x.profile.address.").
	member string
	// partial is the partially typed identifier, key or index being
	// completed.
	partial string
	// quote is the opening quote character of a bracket context, 0 when
	// none was typed.
	quote byte
}

var (
	// Trailing trigger character alone on its token, optional whitespace
	// after it.
	reSnippet = regexp.MustCompile(`(?:^|\n)[ \t]*(/)[ \t]*$`)

	// A call like path.map( x =>, path.reduce((acc, x) => or
	// path.sort((a, b) =>. The tail between the arrow and the cursor is
	// inspected separately against the bound parameter.
	reCallbackSingle = regexp.MustCompile(`([A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*|\[\d+\])*)\.(map|filter|find|forEach|flatMap)\(\s*\(?\s*([A-Za-z_$][\w$]*)\s*\)?\s*=>`)
	reCallbackReduce = regexp.MustCompile(`([A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*|\[\d+\])*)\.reduce\(\s*\(\s*([A-Za-z_$][\w$]*)\s*,\s*([A-Za-z_$][\w$]*)\s*\)\s*=>`)
	reCallbackSort   = regexp.MustCompile(`([A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*|\[\d+\])*)\.sort\(\s*\(\s*([A-Za-z_$][\w$]*)\s*,\s*([A-Za-z_$][\w$]*)\s*\)\s*=>`)

	// path[ with an optional opening quote and partial key, unterminated.
	reBracket = regexp.MustCompile(`([A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*|\[\d+\])*)\[(["']?)([^"'\[\]]*)$`)

	// Root-anchored dotted path followed by "." and a partial identifier.
	reDot = regexp.MustCompile(`([A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*|\[\d+\])*)\.([\w$]*)$`)
)

// classify inspects the text before the cursor and returns the single
// active context. Priority: snippet, callback-parameter, bracket, dot,
// none.
func classify(text string, cursor int) matchContext {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	before := text[:cursor]

	if ctx, ok := matchSnippet(before, cursor); ok {
		return ctx
	}
	if ctx, ok := matchCallback(before, cursor); ok {
		return ctx
	}
	if ctx, ok := matchBracket(before, cursor); ok {
		return ctx
	}
	if ctx, ok := matchDot(before, cursor); ok {
		return ctx
	}
	return matchContext{kind: ctxNone}
}

func matchSnippet(before string, cursor int) (matchContext, bool) {
	loc := reSnippet.FindStringSubmatchIndex(before)
	if loc == nil {
		return matchContext{}, false
	}
	return matchContext{
		kind:    ctxSnippet,
		trigger: Range{Start: loc[2], End: cursor},
	}, true
}

// matchCallback recognizes the three higher-order call shapes. The call
// head is located first; the remainder up to the cursor must then be a
// member access on one of the bound parameter names.
func matchCallback(before string, cursor int) (matchContext, bool) {
	type head struct {
		end    int
		base   string
		params []string
	}
	var best *head

	consider := func(loc []int, base string, params []string) {
		if loc == nil {
			return
		}
		if best == nil || loc[1] > best.end {
			best = &head{end: loc[1], base: base, params: params}
		}
	}

	if locs := reCallbackSingle.FindAllStringSubmatchIndex(before, -1); locs != nil {
		loc := locs[len(locs)-1]
		consider(loc, before[loc[2]:loc[3]], []string{before[loc[6]:loc[7]]})
	}
	if locs := reCallbackReduce.FindAllStringSubmatchIndex(before, -1); locs != nil {
		loc := locs[len(locs)-1]
		// The second reduce parameter is the current element; the
		// accumulator's shape is not inferable.
		consider(loc, before[loc[2]:loc[3]], []string{before[loc[6]:loc[7]]})
	}
	if locs := reCallbackSort.FindAllStringSubmatchIndex(before, -1); locs != nil {
		loc := locs[len(locs)-1]
		// Both comparator parameters are element-typed.
		consider(loc, before[loc[2]:loc[3]], []string{before[loc[4]:loc[5]], before[loc[6]:loc[7]]})
	}
	if best == nil {
		return matchContext{}, false
	}

	tail := before[best.end:]
	for _, param := range best.params {
		member, partial, start, ok := matchParamAccess(tail, param)
		if !ok {
			continue
		}
		return matchContext{
			kind:    ctxCallback,
			trigger: Range{Start: best.end + start, End: cursor},
			base:    best.base,
			member:  member,
			partial: partial,
		}, true
	}
	return matchContext{}, false
}

// matchParamAccess checks that tail ends in param.member.partial and
// returns the member chain, the partial, and the offset of the partial
// within tail.
func matchParamAccess(tail, param string) (member, partial string, start int, ok bool) {
	re := regexp.MustCompile(`(?:^|[^\w$.])` + regexp.QuoteMeta(param) + `\.((?:[A-Za-z_$][\w$]*\.)*)([\w$]*)$`)
	loc := re.FindStringSubmatchIndex(tail)
	if loc == nil {
		return "", "", 0, false
	}
	member = strings.TrimSuffix(tail[loc[2]:loc[3]], ".")
	partial = tail[loc[4]:loc[5]]
	return member, partial, loc[4], true
}

func matchBracket(before string, cursor int) (matchContext, bool) {
	loc := reBracket.FindStringSubmatchIndex(before)
	if loc == nil {
		return matchContext{}, false
	}
	var quote byte
	if loc[5] > loc[4] {
		quote = before[loc[4]]
	}
	return matchContext{
		kind: ctxBracket,
		// Acceptance rewrites the whole access expression as a bracket
		// literal, so the trigger spans from the base path.
		trigger: Range{Start: loc[2], End: cursor},
		base:    before[loc[2]:loc[3]],
		partial: before[loc[6]:loc[7]],
		quote:   quote,
	}, true
}

func matchDot(before string, cursor int) (matchContext, bool) {
	loc := reDot.FindStringSubmatchIndex(before)
	if loc == nil {
		return matchContext{}, false
	}
	return matchContext{
		kind:    ctxDot,
		trigger: Range{Start: loc[4], End: cursor},
		base:    before[loc[2]:loc[3]],
		partial: before[loc[4]:loc[5]],
	}, true
}
