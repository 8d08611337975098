package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ArrayMethods are the higher-order array members offered as synthetic
// completions on every array-valued path, alongside "length".
var ArrayMethods = []string{"map", "filter", "find", "forEach", "flatMap", "reduce", "sort"}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// IsIdentifier reports whether key is addressable as a dot segment.
func IsIdentifier(key string) bool {
	return identPattern.MatchString(key)
}

// childKeyPath appends a key to a canonical path: dot form for
// identifier keys, quoted bracket form otherwise. Without the bracket
// form, a top-level key "a.b" would encode to the same canonical path
// as key "b" nested under key "a".
func childKeyPath(path, key string) string {
	if IsIdentifier(key) {
		return path + "." + key
	}
	return path + `["` + strings.ReplaceAll(key, `"`, `\"`) + `"]`
}

// Entry is one indexed location in the document.
type Entry struct {
	// Path is the canonical root-anchored access expression.
	Path string
	// Parent is the canonical path of the containing value.
	Parent string
	// Segment is the final path step: a key name, "[n]", or a method name.
	Segment string
	// Value is the document value at this path; nil for synthetic members.
	Value any
	Kind  Kind
	// Method marks synthetic array members (length and the callback methods).
	Method bool
	// Order is the discovery position during the document walk. Candidate
	// ranking preserves it.
	Order int
}

// Index holds every reachable path of a document, in discovery order,
// plus a patricia trie over canonical paths for prefix retrieval.
type Index struct {
	root        any
	rootName    string
	sampleLimit int
	entries     []Entry
	trie        *patricia.Trie
}

// BuildIndex walks the document depth-first and indexes every path.
// Object nodes contribute one entry per key in document order. Array
// nodes contribute the synthetic method members plus the first
// sampleLimit indexed elements, recursing into sampled containers.
func BuildIndex(root any, rootName string, sampleLimit int) *Index {
	if sampleLimit <= 0 {
		sampleLimit = 3
	}
	idx := &Index{
		root:        root,
		rootName:    rootName,
		sampleLimit: sampleLimit,
		trie:        patricia.NewTrie(),
	}
	idx.walk(root, rootName)
	return idx
}

// Root returns the document value the index was built from.
func (idx *Index) Root() any {
	return idx.root
}

// RootName returns the identifier the document is bound to in user code.
func (idx *Index) RootName() string {
	return idx.rootName
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func (idx *Index) add(e Entry) {
	e.Order = len(idx.entries)
	idx.entries = append(idx.entries, e)
	// The trie stores every order sharing a canonical path. Distinct
	// keys encode to distinct paths, but a collision must never make an
	// entry unreachable.
	prefix := patricia.Prefix(e.Path)
	if item := idx.trie.Get(prefix); item != nil {
		if orders, ok := item.([]int); ok {
			idx.trie.Set(prefix, append(orders, e.Order))
			return
		}
	}
	idx.trie.Insert(prefix, []int{e.Order})
}

func (idx *Index) walk(value any, path string) {
	switch v := value.(type) {
	case *Object:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			childPath := childKeyPath(path, key)
			idx.add(Entry{
				Path:    childPath,
				Parent:  path,
				Segment: key,
				Value:   child,
				Kind:    KindOf(child),
			})
			idx.walk(child, childPath)
		}
	case []any:
		idx.add(Entry{
			Path:    path + ".length",
			Parent:  path,
			Segment: "length",
			Method:  true,
		})
		for _, name := range ArrayMethods {
			idx.add(Entry{
				Path:    path + "." + name,
				Parent:  path,
				Segment: name,
				Method:  true,
			})
		}
		limit := idx.sampleLimit
		if limit > len(v) {
			limit = len(v)
		}
		for i := 0; i < limit; i++ {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			idx.add(Entry{
				Path:    childPath,
				Parent:  path,
				Segment: fmt.Sprintf("[%d]", i),
				Value:   v[i],
				Kind:    KindOf(v[i]),
			})
			switch v[i].(type) {
			case *Object, []any:
				idx.walk(v[i], childPath)
			}
		}
	}
}

// ChildrenOf returns the immediate children of the given canonical path,
// in discovery order. Unknown paths yield an empty slice.
func (idx *Index) ChildrenOf(parent string) []Entry {
	var children []Entry
	err := idx.trie.VisitSubtree(patricia.Prefix(parent), func(p patricia.Prefix, item patricia.Item) error {
		orders, ok := item.([]int)
		if !ok {
			log.Errorf("Unexpected trie item type %T at %s", item, p)
			return nil
		}
		for _, order := range orders {
			entry := idx.entries[order]
			if entry.Parent == parent {
				children = append(children, entry)
			}
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting path index subtree: %v", err)
		return nil
	}
	// Trie visit order is byte order over paths; ranking wants discovery order.
	sortByOrder(children)
	return children
}

func sortByOrder(entries []Entry) {
	// Insertion sort: child lists are small and mostly ordered already.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].Order > entries[j].Order; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}
