package filter

import (
	"github.com/Masterminds/squirrel"

	"sieve/internal/core/types"
	"sieve/pkg/qs"
)

// DecimalFilter is one comparison against a fixed-point column.
type DecimalFilter struct {
	op    ComparisonType
	value types.Decimal
}

func DecimalLessThan(v types.Decimal) DecimalFilter    { return DecimalFilter{op: Less, value: v} }
func DecimalLessOrEqual(v types.Decimal) DecimalFilter { return DecimalFilter{op: LessOrEqual, value: v} }
func DecimalGreaterThan(v types.Decimal) DecimalFilter { return DecimalFilter{op: Greater, value: v} }
func DecimalGreaterOrEqual(v types.Decimal) DecimalFilter {
	return DecimalFilter{op: GreaterOrEqual, value: v}
}
func DecimalEquals(v types.Decimal) DecimalFilter    { return DecimalFilter{op: Equal, value: v} }
func DecimalNotEquals(v types.Decimal) DecimalFilter { return DecimalFilter{op: NotEqual, value: v} }

func (f DecimalFilter) Op() ComparisonType   { return f.op }
func (f DecimalFilter) Value() types.Decimal { return f.value }

// Cond implements Condition.
func (f DecimalFilter) Cond(column string) squirrel.Sqlizer {
	return orderedCond(f.op, column, f.value)
}

var decimalDomain = domain[DecimalFilter]{
	name: "decimal",
	ops:  numericOps,
	parse: func(op ComparisonType, raw []string) (DecimalFilter, error) {
		v, err := types.ParseDecimal(raw[0])
		if err != nil {
			return DecimalFilter{}, err
		}
		return DecimalFilter{op: op, value: v}, nil
	},
}

// DecodeDecimalSet decodes an operator map for a decimal field.
func DecodeDecimalSet(field string, node *qs.Value) (*DecimalFilterSet, error) {
	return decodeSet(decimalDomain, field, node)
}
