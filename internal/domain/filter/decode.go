package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"sieve/internal/core/apperror"
	"sieve/pkg/qs"
)

var (
	// ErrUnknownOperator is the cause when an operator token is not valid for
	// the field's domain.
	ErrUnknownOperator = errors.New("unknown filter operator")

	// ErrMalformedValue is the cause when an operand cannot be parsed.
	ErrMalformedValue = errors.New("malformed filter value")
)

// domain describes how one value domain is decoded.
type domain[F Condition] struct {
	name string
	// ops lists the accepted tokens in the order instances are pushed.
	ops []ComparisonType
	// lists marks tokens whose values are collected into a single instance.
	lists []ComparisonType
	parse func(op ComparisonType, raw []string) (F, error)
}

// valueError points at the offending token of a list operand.
type valueError struct {
	value string
	err   error
}

func (e *valueError) Error() string { return e.err.Error() }
func (e *valueError) Unwrap() error { return e.err }

// decodeSet builds a set from an operator map such as {"gte": "20", "lt": "50"}.
//
// Instances are pushed in the domain's token order; repeats of a token keep
// the order they were given in. A nil node yields a nil set.
func decodeSet[F Condition](d domain[F], field string, node *qs.Value) (*Set[F], error) {
	if node == nil {
		return nil, nil
	}
	if node.IsLeaf() {
		return nil, apperror.NewInvalidFilter(field, "", node.String()).
			WithCause(fmt.Errorf("%w: expected operators for %s filter", ErrMalformedValue, d.name))
	}

	grouped := make(map[ComparisonType][]string, len(d.ops))
	for _, f := range node.Fields() {
		op := ComparisonType(f.Key)
		if !slices.Contains(d.ops, op) {
			return nil, apperror.NewInvalidFilter(field, f.Key, f.Value.String()).
				WithCause(fmt.Errorf("%w %q for %s filter", ErrUnknownOperator, f.Key, d.name))
		}
		if !f.Value.IsLeaf() {
			return nil, apperror.NewInvalidFilter(field, f.Key, "").
				WithCause(fmt.Errorf("%w: nested object", ErrMalformedValue))
		}
		grouped[op] = append(grouped[op], f.Value.String())
	}

	set := &Set[F]{}
	for _, op := range d.ops {
		raws := grouped[op]
		if len(raws) == 0 {
			continue
		}
		if slices.Contains(d.lists, op) {
			item, err := d.parse(op, raws)
			if err != nil {
				return nil, invalidValue(field, op, strings.Join(raws, ","), err)
			}
			set.Push(item)
			continue
		}
		for _, raw := range raws {
			item, err := d.parse(op, []string{raw})
			if err != nil {
				return nil, invalidValue(field, op, raw, err)
			}
			set.Push(item)
		}
	}
	return set, nil
}

func invalidValue(field string, op ComparisonType, raw string, err error) error {
	var ve *valueError
	if errors.As(err, &ve) {
		raw = ve.value
	}
	return apperror.NewInvalidFilter(field, string(op), raw).
		WithCause(fmt.Errorf("%w: %w", ErrMalformedValue, err))
}
