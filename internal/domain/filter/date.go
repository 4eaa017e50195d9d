package filter

import (
	"github.com/Masterminds/squirrel"

	"sieve/internal/core/types"
	"sieve/pkg/qs"
)

var temporalOps = []ComparisonType{After, Before, Equal, NotEqual}

// DateFilter is one comparison against a date column.
type DateFilter struct {
	op    ComparisonType
	value types.Date
}

// DateBefore matches dates strictly earlier than d.
func DateBefore(d types.Date) DateFilter { return DateFilter{op: Before, value: d} }

// DateAfter matches d and later dates.
func DateAfter(d types.Date) DateFilter { return DateFilter{op: After, value: d} }

// DateEquals matches exactly d.
func DateEquals(d types.Date) DateFilter { return DateFilter{op: Equal, value: d} }

// DateNotEquals matches every date except d.
func DateNotEquals(d types.Date) DateFilter { return DateFilter{op: NotEqual, value: d} }

// Op returns the operator token.
func (f DateFilter) Op() ComparisonType { return f.op }

// Value returns the operand.
func (f DateFilter) Value() types.Date { return f.value }

// Cond implements Condition.
func (f DateFilter) Cond(column string) squirrel.Sqlizer {
	return temporalCond(f.op, column, f.value)
}

var dateDomain = domain[DateFilter]{
	name: "date",
	ops:  temporalOps,
	parse: func(op ComparisonType, raw []string) (DateFilter, error) {
		d, err := types.ParseDate(raw[0])
		if err != nil {
			return DateFilter{}, err
		}
		return DateFilter{op: op, value: d}, nil
	},
}

// DecodeDateSet decodes an operator map for a date field.
func DecodeDateSet(field string, node *qs.Value) (*DateFilterSet, error) {
	return decodeSet(dateDomain, field, node)
}
