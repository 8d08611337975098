package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step in an access path: either an object key or an
// array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeySegment returns an object-key segment.
func KeySegment(key string) Segment {
	return Segment{Key: key}
}

// IndexSegment returns an array-index segment.
func IndexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Path is a root-anchored sequence of segments.
type Path []Segment

// String renders the path in canonical dot/bracket notation under the
// given root name, e.g. "data.posts[0].id".
func (p Path) String(root string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, seg := range p {
		if seg.IsIndex {
			fmt.Fprintf(&b, "[%d]", seg.Index)
		} else {
			b.WriteByte('.')
			b.WriteString(seg.Key)
		}
	}
	return b.String()
}

// Child returns a new path with one more segment appended. The receiver
// is never aliased so sibling paths stay independent.
func (p Path) Child(seg Segment) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = seg
	return child
}

// ParsePath parses dot/bracket notation relative to the document root.
// The leading root identifier is expected and stripped by the caller;
// ParsePath handles the "posts[0].id" remainder. Empty input is the
// root itself.
func ParsePath(expr string) (Path, bool) {
	path := Path{}
	rest := expr
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := segmentEnd(rest)
			if end == 0 {
				return nil, false
			}
			path = append(path, KeySegment(rest[:end]))
			rest = rest[end:]
		case '[':
			closing := strings.IndexByte(rest, ']')
			if closing < 0 {
				return nil, false
			}
			idx, err := strconv.Atoi(rest[1:closing])
			if err != nil || idx < 0 {
				return nil, false
			}
			path = append(path, IndexSegment(idx))
			rest = rest[closing+1:]
		default:
			// First segment may appear without a leading dot.
			end := segmentEnd(rest)
			if end == 0 {
				return nil, false
			}
			path = append(path, KeySegment(rest[:end]))
			rest = rest[end:]
		}
	}
	return path, true
}

func segmentEnd(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '[' {
			return i
		}
	}
	return len(s)
}

// Resolve walks the path from root. Any kind mismatch or missing key
// yields (nil, false) rather than an error: while the user is typing,
// unresolvable paths are the normal case.
func Resolve(root any, path Path) (any, bool) {
	current := root
	for _, seg := range path {
		if seg.IsIndex {
			arr, ok := current.([]any)
			if !ok || seg.Index < 0 || seg.Index >= len(arr) {
				return nil, false
			}
			current = arr[seg.Index]
			continue
		}
		obj, ok := current.(*Object)
		if !ok {
			return nil, false
		}
		value, ok := obj.Get(seg.Key)
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}
