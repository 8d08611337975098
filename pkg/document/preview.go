package document

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

const previewMaxLen = 40

// Preview renders a short single-line description of a value for display
// next to a suggestion.
func Preview(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		if len(t) > previewMaxLen {
			// Back up to a rune boundary so the cut never splits a
			// multi-byte character.
			cut := previewMaxLen
			for cut > 0 && !utf8.RuneStart(t[cut]) {
				cut--
			}
			t = t[:cut] + "…"
		}
		return strconv.Quote(t)
	case []any:
		if len(t) == 1 {
			return "[1 item]"
		}
		return fmt.Sprintf("[%d items]", len(t))
	case *Object:
		if t.Len() == 1 {
			return "{1 key}"
		}
		return fmt.Sprintf("{%d keys}", t.Len())
	}
	return fmt.Sprintf("%v", v)
}
