package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes JSON text into the document value model: *Object for
// objects (key order preserved), []any for arrays, float64/string/bool/nil
// for scalars. A decode error means the buffer is mid-edit or malformed;
// callers treat that as "no document".
func Parse(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	value, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	// Trailing garbage after the first value is still a malformed document.
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing content in document")
	}
	return value, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case float64, string, bool, nil:
		return t, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
