package filter

import (
	"github.com/Masterminds/squirrel"

	"sieve/internal/core/types"
	"sieve/pkg/qs"
)

// DateTimeTzFilter is one comparison against a timestamp column with time zone.
type DateTimeTzFilter struct {
	op    ComparisonType
	value types.DateTimeTz
}

func DateTimeTzBefore(d types.DateTimeTz) DateTimeTzFilter {
	return DateTimeTzFilter{op: Before, value: d}
}

func DateTimeTzAfter(d types.DateTimeTz) DateTimeTzFilter {
	return DateTimeTzFilter{op: After, value: d}
}

func DateTimeTzEquals(d types.DateTimeTz) DateTimeTzFilter {
	return DateTimeTzFilter{op: Equal, value: d}
}

func DateTimeTzNotEquals(d types.DateTimeTz) DateTimeTzFilter {
	return DateTimeTzFilter{op: NotEqual, value: d}
}

func (f DateTimeTzFilter) Op() ComparisonType      { return f.op }
func (f DateTimeTzFilter) Value() types.DateTimeTz { return f.value }

// Cond implements Condition. The bound keeps its original offset.
func (f DateTimeTzFilter) Cond(column string) squirrel.Sqlizer {
	return temporalCond(f.op, column, f.value)
}

var dateTimeTzDomain = domain[DateTimeTzFilter]{
	name: "datetime with time zone",
	ops:  temporalOps,
	parse: func(op ComparisonType, raw []string) (DateTimeTzFilter, error) {
		d, err := types.ParseDateTimeTz(raw[0])
		if err != nil {
			return DateTimeTzFilter{}, err
		}
		return DateTimeTzFilter{op: op, value: d}, nil
	},
}

// DecodeDateTimeTzSet decodes an operator map for a datetime-with-offset field.
func DecodeDateTimeTzSet(field string, node *qs.Value) (*DateTimeTzFilterSet, error) {
	return decodeSet(dateTimeTzDomain, field, node)
}
