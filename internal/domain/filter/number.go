package filter

import (
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"sieve/pkg/qs"
)

var numericOps = []ComparisonType{GreaterOrEqual, Less, Greater, LessOrEqual, Equal, NotEqual}

// NumberFilter is one comparison against an integer column.
type NumberFilter struct {
	op    ComparisonType
	value int64
}

func NumberLessThan(v int64) NumberFilter       { return NumberFilter{op: Less, value: v} }
func NumberLessOrEqual(v int64) NumberFilter    { return NumberFilter{op: LessOrEqual, value: v} }
func NumberGreaterThan(v int64) NumberFilter    { return NumberFilter{op: Greater, value: v} }
func NumberGreaterOrEqual(v int64) NumberFilter { return NumberFilter{op: GreaterOrEqual, value: v} }
func NumberEquals(v int64) NumberFilter         { return NumberFilter{op: Equal, value: v} }
func NumberNotEquals(v int64) NumberFilter      { return NumberFilter{op: NotEqual, value: v} }

// Op returns the operator token.
func (f NumberFilter) Op() ComparisonType { return f.op }

// Value returns the operand.
func (f NumberFilter) Value() int64 { return f.value }

// Cond implements Condition.
func (f NumberFilter) Cond(column string) squirrel.Sqlizer {
	return orderedCond(f.op, column, f.value)
}

var numberDomain = domain[NumberFilter]{
	name: "number",
	ops:  numericOps,
	parse: func(op ComparisonType, raw []string) (NumberFilter, error) {
		v, err := strconv.ParseInt(strings.TrimSpace(raw[0]), 10, 64)
		if err != nil {
			return NumberFilter{}, err
		}
		return NumberFilter{op: op, value: v}, nil
	},
}

// DecodeNumberSet decodes an operator map for an integer field.
func DecodeNumberSet(field string, node *qs.Value) (*NumberFilterSet, error) {
	return decodeSet(numberDomain, field, node)
}
