// Package qs decodes bracket-syntax query strings (filter[age][gte]=20) into an
// ordered tree of keys and values.
//
// Unlike url.Values the tree keeps the order in which keys were encountered and
// allows the same key to repeat, which is how callers express several bounds on
// one field.
package qs

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedKey is returned for keys with unbalanced brackets.
var ErrMalformedKey = errors.New("malformed query key")

// ErrConflict is returned when a key is used both as a value and as an object.
var ErrConflict = errors.New("conflicting query key")

// Field is one key of an object node.
type Field struct {
	Key   string
	Value *Value
}

// Value is a node of the decoded tree: a leaf string or an ordered object.
type Value struct {
	leaf   bool
	str    string
	fields []Field
}

// Leaf creates a leaf node.
func Leaf(s string) *Value {
	return &Value{leaf: true, str: s}
}

// Object creates an object node with the given fields.
func Object(fields ...Field) *Value {
	return &Value{fields: fields}
}

// IsLeaf reports whether v holds a plain string.
func (v *Value) IsLeaf() bool {
	return v != nil && v.leaf
}

// String returns the leaf value or "" for objects.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return v.str
}

// Fields returns the fields of an object node in encounter order.
func (v *Value) Fields() []Field {
	if v == nil {
		return nil
	}
	return v.fields
}

// Len returns the number of fields.
func (v *Value) Len() int {
	return len(v.Fields())
}

// Get returns the first field named key or nil.
func (v *Value) Get(key string) *Value {
	for _, f := range v.Fields() {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// add inserts value under path. Objects are merged, leaves are appended.
func (v *Value) add(path []string, value string) error {
	key := path[0]
	if len(path) == 1 {
		if existing := v.Get(key); existing != nil && !existing.leaf {
			return fmt.Errorf("%w: %q", ErrConflict, key)
		}
		v.fields = append(v.fields, Field{Key: key, Value: Leaf(value)})
		return nil
	}

	child := v.Get(key)
	if child == nil {
		child = &Value{}
		v.fields = append(v.fields, Field{Key: key, Value: child})
	} else if child.leaf {
		return fmt.Errorf("%w: %q", ErrConflict, key)
	}
	return child.add(path[1:], value)
}

// Parse decodes a raw query string. A leading '?' is ignored.
func Parse(raw string) (*Value, error) {
	root := &Value{}
	raw = strings.TrimPrefix(raw, "?")

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("unescape key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("unescape value of %q: %w", key, err)
		}

		path, err := splitKey(key)
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			continue
		}
		if err := root.add(path, value); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// splitKey turns "a[b][c]" into [a b c]. A trailing "[]" is dropped so that
// "ids[]=1&ids[]=2" repeats the "ids" leaf.
func splitKey(key string) ([]string, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		if strings.IndexByte(key, ']') >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		if key == "" {
			return nil, nil
		}
		return []string{key}, nil
	}
	if open == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}

	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		segment := rest[1:end]
		if strings.IndexByte(segment, '[') >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		rest = rest[end+1:]
		if segment == "" {
			if rest != "" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedKey, key)
			}
			break
		}
		path = append(path, segment)
	}

	return path, nil
}
