package query

import (
	"github.com/Masterminds/squirrel"

	"sieve/internal/domain/filter"
)

// Statement is satisfied by squirrel's SelectBuilder, UpdateBuilder and
// DeleteBuilder.
type Statement[B any] interface {
	Where(pred any, args ...any) B
	OrderBy(orderBys ...string) B
	Limit(limit uint64) B
}

// ApplySelect attaches the filter condition, LIMIT, OFFSET and ORDER BY.
// A negative offset is not rendered.
func ApplySelect[T Filter](stmt squirrel.SelectBuilder, q *QueryFilter[T]) squirrel.SelectBuilder {
	offset := q.Offset()
	stmt = apply(stmt, q, offset)
	if offset >= 0 {
		stmt = stmt.Offset(uint64(offset))
	}
	return stmt
}

// ApplyDelete attaches the filter condition, LIMIT and ORDER BY. Deletes have
// no offset; the limit is computed from offset 0.
func ApplyDelete[T Filter](stmt squirrel.DeleteBuilder, q *QueryFilter[T]) squirrel.DeleteBuilder {
	return apply(stmt, q, 0)
}

// ApplyUpdate is ApplyDelete for updates.
func ApplyUpdate[T Filter](stmt squirrel.UpdateBuilder, q *QueryFilter[T]) squirrel.UpdateBuilder {
	return apply(stmt, q, 0)
}

func apply[B Statement[B], T Filter](stmt B, q *QueryFilter[T], offset int) B {
	stmt = ApplyConds(stmt, q.Cond())
	stmt = stmt.Limit(uint64(q.EffectiveLimit(offset)))
	if field, ok := q.SortField(); ok {
		stmt = stmt.OrderBy(q.Column(field) + " " + q.Direction().String())
	}
	return stmt
}

// ApplyConds attaches cond to stmt. A filter.All is unpacked into one WHERE
// part per element, so a group's top-level conjunction renders without
// parentheses; nil and empty conjunctions add nothing.
func ApplyConds[B Statement[B]](stmt B, cond squirrel.Sqlizer) B {
	switch c := cond.(type) {
	case nil:
		return stmt
	case filter.All:
		for _, part := range c {
			if part != nil {
				stmt = stmt.Where(part)
			}
		}
		return stmt
	}
	return stmt.Where(cond)
}
