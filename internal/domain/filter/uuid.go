package filter

import (
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"

	"sieve/internal/core/id"
	"sieve/pkg/qs"
)

// UUIDFilter is an equality or membership test against a uuid column.
type UUIDFilter struct {
	op     ComparisonType
	values []id.ID
}

// UUIDEquals matches exactly v.
func UUIDEquals(v id.ID) UUIDFilter {
	return UUIDFilter{op: Equal, values: []id.ID{v}}
}

// UUIDIn matches any of ids. The order of ids is kept in the rendered list.
func UUIDIn(ids ...id.ID) UUIDFilter {
	return UUIDFilter{op: InList, values: slices.Clone(ids)}
}

// Op returns the operator token.
func (f UUIDFilter) Op() ComparisonType { return f.op }

// Value returns the operand of an equality test.
func (f UUIDFilter) Value() id.ID {
	if len(f.values) == 0 {
		return id.Nil()
	}
	return f.values[0]
}

// Values returns the operands in order.
func (f UUIDFilter) Values() []id.ID { return slices.Clone(f.values) }

// Cond implements Condition. An empty membership list matches nothing.
func (f UUIDFilter) Cond(column string) squirrel.Sqlizer {
	switch f.op {
	case Equal:
		return squirrel.Eq{column: f.Value()}
	case InList:
		return squirrel.Eq{column: slices.Clone(f.values)}
	}
	return nil
}

var uuidDomain = domain[UUIDFilter]{
	name:  "uuid",
	ops:   []ComparisonType{Equal, InList},
	lists: []ComparisonType{InList},
	parse: func(op ComparisonType, raw []string) (UUIDFilter, error) {
		if op == Equal {
			v, err := id.Parse(raw[0])
			if err != nil {
				return UUIDFilter{}, err
			}
			return UUIDEquals(v), nil
		}
		f := UUIDFilter{op: op}
		for _, r := range raw {
			for _, tok := range strings.Split(r, ",") {
				v, err := id.Parse(tok)
				if err != nil {
					return UUIDFilter{}, &valueError{value: strings.TrimSpace(tok), err: err}
				}
				f.values = append(f.values, v)
			}
		}
		return f, nil
	},
}

// DecodeUUIDSet decodes an operator map for a uuid field. Values of
// repeated "in" keys, and comma separated lists, are merged into one test.
func DecodeUUIDSet(field string, node *qs.Value) (*UUIDFilterSet, error) {
	return decodeSet(uuidDomain, field, node)
}
