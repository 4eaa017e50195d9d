package qs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseJSON decodes a JSON object into the same tree Parse produces. Arrays
// become repeated fields, scalars keep their literal text and null becomes "".
//
//	{"age": {"gte": 20, "lt": 50}, "id": {"in": ["a", "b"]}}
//
// is equivalent to age[gte]=20&age[lt]=50&id[in]=a&id[in]=b.
func ParseJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("decode json: expected an object")
	}

	root := &Value{}
	if err := decodeObject(dec, root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode json: trailing data after object")
	}
	return root, nil
}

// decodeObject reads fields until the closing brace. The opening brace has
// already been consumed.
func decodeObject(dec *json.Decoder, obj *Value) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode json: unexpected token %v", tok)
		}
		if err := decodeMember(dec, obj, key, true); err != nil {
			return err
		}
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func decodeMember(dec *json.Decoder, obj *Value, key string, allowArray bool) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			child := obj.Get(key)
			if child == nil {
				child = &Value{}
				obj.fields = append(obj.fields, Field{Key: key, Value: child})
			} else if child.leaf {
				return fmt.Errorf("%w: %q", ErrConflict, key)
			}
			return decodeObject(dec, child)
		case '[':
			if !allowArray {
				return fmt.Errorf("decode json: nested array under %q", key)
			}
			for dec.More() {
				if err := decodeMember(dec, obj, key, false); err != nil {
					return err
				}
			}
			// closing ']'
			_, err := dec.Token()
			return err
		default:
			return fmt.Errorf("decode json: unexpected delimiter %v", t)
		}
	case string:
		return obj.add([]string{key}, t)
	case json.Number:
		return obj.add([]string{key}, t.String())
	case bool:
		return obj.add([]string{key}, fmt.Sprint(t))
	case nil:
		return obj.add([]string{key}, "")
	default:
		return fmt.Errorf("decode json: unexpected token %v", tok)
	}
}
