package filter

import (
	"github.com/Masterminds/squirrel"

	"sieve/pkg/qs"
)

// StringFilter is one pattern match against a text column.
//
// The operand is embedded in a LIKE pattern as is, so '%' and '_' in the
// operand keep their wildcard meaning.
type StringFilter struct {
	op    ComparisonType
	value string
}

func StringContains(s string) StringFilter    { return StringFilter{op: Contains, value: s} }
func StringNotContains(s string) StringFilter { return StringFilter{op: NotContains, value: s} }
func StringStartsWith(s string) StringFilter  { return StringFilter{op: StartsWith, value: s} }
func StringEndsWith(s string) StringFilter    { return StringFilter{op: EndsWith, value: s} }

// Op returns the operator token.
func (f StringFilter) Op() ComparisonType { return f.op }

// Value returns the operand.
func (f StringFilter) Value() string { return f.value }

// Cond implements Condition.
func (f StringFilter) Cond(column string) squirrel.Sqlizer {
	switch f.op {
	case Contains:
		return squirrel.Like{column: "%" + f.value + "%"}
	case NotContains:
		return squirrel.NotLike{column: "%" + f.value + "%"}
	case StartsWith:
		return squirrel.Like{column: f.value + "%"}
	case EndsWith:
		return squirrel.Like{column: "%" + f.value}
	}
	return nil
}

var stringDomain = domain[StringFilter]{
	name: "string",
	ops:  []ComparisonType{Contains, NotContains, StartsWith, EndsWith},
	parse: func(op ComparisonType, raw []string) (StringFilter, error) {
		return StringFilter{op: op, value: raw[0]}, nil
	},
}

// DecodeStringSet decodes an operator map for a text field.
func DecodeStringSet(field string, node *qs.Value) (*StringFilterSet, error) {
	return decodeSet(stringDomain, field, node)
}
