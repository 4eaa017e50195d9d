package query

import (
	"strconv"
	"strings"

	"sieve/internal/core/apperror"
	"sieve/pkg/qs"
)

// Envelope keys.
const (
	KeyStart  = "start"
	KeyEnd    = "end"
	KeySort   = "sort"
	KeyOrder  = "order"
	KeyFilter = "filter"
)

// Decodable is a filter group whose pointer decodes the "filter" node.
type Decodable[T Filter] interface {
	*T
	FilterDecoder
}

// Parse decodes a raw query string for a statically declared group T.
//
//	q, err := query.Parse[UserFilter]("filter[age][gte]=20&sort=age&order=desc")
func Parse[T Filter, PT Decodable[T]](raw string) (*QueryFilter[T], error) {
	return ParseWith[T, PT](raw, func() T {
		var zero T
		return zero
	})
}

// ParseWith is Parse for groups that need construction, such as groups built
// from a resource schema. newFilter is called for every group it decodes.
func ParseWith[T Filter, PT Decodable[T]](raw string, newFilter func() T) (*QueryFilter[T], error) {
	root, err := qs.Parse(raw)
	if err != nil {
		return nil, apperror.NewInvalidQuery("query", raw).WithCause(err)
	}
	return Decode[T, PT](root, newFilter)
}

// Decode builds the envelope from an already parsed tree.
//
// Unknown top-level keys are ignored. "filter" is either a bracket object
// (filter[age][lt]=50) or a JSON document (filter={"age":{"lt":50}}).
func Decode[T Filter, PT Decodable[T]](root *qs.Value, newFilter func() T) (*QueryFilter[T], error) {
	proto := newFilter()
	q := &QueryFilter[T]{
		Config: DefaultConfig(),
		proto:  &proto,
	}

	var err error
	if q.Start, err = intParam(root, KeyStart); err != nil {
		return nil, err
	}
	if q.End, err = intParam(root, KeyEnd); err != nil {
		return nil, err
	}
	if q.Sort, err = stringParam(root, KeySort); err != nil {
		return nil, err
	}
	if q.Order, err = stringParam(root, KeyOrder); err != nil {
		return nil, err
	}

	node := root.Get(KeyFilter)
	if node == nil {
		return q, nil
	}
	if node.IsLeaf() {
		if node, err = jsonFilter(node.String()); err != nil {
			return nil, err
		}
	}

	group := newFilter()
	if err := PT(&group).DecodeFilter(node); err != nil {
		return nil, err
	}
	q.Filter = &group
	return q, nil
}

func jsonFilter(raw string) (*qs.Value, error) {
	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return nil, apperror.NewInvalidQuery(KeyFilter, raw).
			WithDetail("reason", "expected filter[field][operator]=value or a JSON object")
	}
	node, err := qs.ParseJSON([]byte(raw))
	if err != nil {
		return nil, apperror.NewInvalidQuery(KeyFilter, raw).WithCause(err)
	}
	return node, nil
}

func intParam(root *qs.Value, key string) (*int, error) {
	s, err := stringParam(root, key)
	if s == nil || err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil, apperror.NewInvalidQuery(key, *s).WithCause(err)
	}
	return &n, nil
}

func stringParam(root *qs.Value, key string) (*string, error) {
	node := root.Get(key)
	if node == nil {
		return nil, nil
	}
	if !node.IsLeaf() {
		return nil, apperror.NewInvalidQuery(key, "").
			WithDetail("reason", "expected a plain value")
	}
	s := node.String()
	return &s, nil
}
