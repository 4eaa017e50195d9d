package filter

import (
	"github.com/Masterminds/squirrel"

	"sieve/internal/core/types"
	"sieve/pkg/qs"
)

// DateTimeFilter is one comparison against a timestamp column without time zone.
type DateTimeFilter struct {
	op    ComparisonType
	value types.DateTime
}

func DateTimeBefore(d types.DateTime) DateTimeFilter {
	return DateTimeFilter{op: Before, value: d}
}

func DateTimeAfter(d types.DateTime) DateTimeFilter {
	return DateTimeFilter{op: After, value: d}
}

func DateTimeEquals(d types.DateTime) DateTimeFilter {
	return DateTimeFilter{op: Equal, value: d}
}

func DateTimeNotEquals(d types.DateTime) DateTimeFilter {
	return DateTimeFilter{op: NotEqual, value: d}
}

func (f DateTimeFilter) Op() ComparisonType    { return f.op }
func (f DateTimeFilter) Value() types.DateTime { return f.value }

// Cond implements Condition.
func (f DateTimeFilter) Cond(column string) squirrel.Sqlizer {
	return temporalCond(f.op, column, f.value)
}

var dateTimeDomain = domain[DateTimeFilter]{
	name: "datetime",
	ops:  temporalOps,
	parse: func(op ComparisonType, raw []string) (DateTimeFilter, error) {
		d, err := types.ParseDateTime(raw[0])
		if err != nil {
			return DateTimeFilter{}, err
		}
		return DateTimeFilter{op: op, value: d}, nil
	},
}

// DecodeDateTimeSet decodes an operator map for a datetime field.
func DecodeDateTimeSet(field string, node *qs.Value) (*DateTimeFilterSet, error) {
	return decodeSet(dateTimeDomain, field, node)
}
