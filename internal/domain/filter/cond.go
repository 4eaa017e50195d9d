package filter

import (
	"github.com/Masterminds/squirrel"
)

// All is a conjunction of conditions.
//
// It differs from squirrel.And in two ways: a single part renders without
// parentheses, and callers that apply conditions to a statement may unpack it
// into separate WHERE parts.
type All []squirrel.Sqlizer

// ToSql implements squirrel.Sqlizer.
func (a All) ToSql() (string, []any, error) {
	switch len(a) {
	case 0:
		return "(1=1)", nil, nil
	case 1:
		return a[0].ToSql()
	}
	return squirrel.And(a).ToSql()
}

// And collects the non-nil parts into a conjunction.
func And(parts ...squirrel.Sqlizer) All {
	out := make(All, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// temporalCond maps a temporal operator onto a comparison.
// "before" is strict, "after" includes the bound.
func temporalCond(op ComparisonType, column string, value any) squirrel.Sqlizer {
	switch op {
	case Before:
		return squirrel.Lt{column: value}
	case After:
		return squirrel.GtOrEq{column: value}
	case Equal:
		return squirrel.Eq{column: value}
	case NotEqual:
		return squirrel.NotEq{column: value}
	}
	return nil
}

func orderedCond(op ComparisonType, column string, value any) squirrel.Sqlizer {
	switch op {
	case Less:
		return squirrel.Lt{column: value}
	case LessOrEqual:
		return squirrel.LtOrEq{column: value}
	case Greater:
		return squirrel.Gt{column: value}
	case GreaterOrEqual:
		return squirrel.GtOrEq{column: value}
	case Equal:
		return squirrel.Eq{column: value}
	case NotEqual:
		return squirrel.NotEq{column: value}
	}
	return nil
}
