// Package query implements the request envelope (pagination, sort, filter
// group) and applies it to SQL statements.
package query

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"sieve/pkg/qs"
)

// Defaults used when Config leaves a value unset.
const (
	DefaultLimit    = 10
	DefaultMaxLimit = 100
)

// Filter is implemented by filter groups: one named FilterSet per filterable
// field of a resource.
type Filter interface {
	// Cond returns the conjunction of every non-empty field, or nil.
	Cond() squirrel.Sqlizer
	// SortableFields lists the field names accepted by ?sort=.
	SortableFields() []string
}

// FilterDecoder fills a filter group from the "filter" node of a query.
type FilterDecoder interface {
	DecodeFilter(node *qs.Value) error
}

// MaxLimiter is implemented by groups declaring their own maximum page size.
type MaxLimiter interface {
	MaxLimit() int
}

// Columner is implemented by groups whose field names differ from the
// database columns.
type Columner interface {
	Column(field string) string
}

// ValidateSortField returns the canonical field name if f declares name as
// sortable.
func ValidateSortField(f Filter, name string) (string, bool) {
	for _, field := range f.SortableFields() {
		if field == name {
			return field, true
		}
	}
	return "", false
}

// NoFilter is a group without fields, for endpoints that only paginate.
type NoFilter struct{}

func (NoFilter) Cond() squirrel.Sqlizer          { return nil }
func (NoFilter) SortableFields() []string        { return nil }
func (*NoFilter) DecodeFilter(_ *qs.Value) error { return nil }

// Order is the requested sort direction.
type Order int

const (
	OrderNone Order = iota
	OrderAsc
	OrderDesc
)

// ParseOrder parses "asc" or "desc" in any case. Anything else is OrderNone.
func ParseOrder(s string) Order {
	switch {
	case strings.EqualFold(s, "asc"):
		return OrderAsc
	case strings.EqualFold(s, "desc"):
		return OrderDesc
	}
	return OrderNone
}

// String renders the direction for ORDER BY. OrderNone renders as ASC.
func (o Order) String() string {
	if o == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// Config holds paging policy.
type Config struct {
	// DefaultLimit applies when "end" is absent.
	DefaultLimit int `yaml:"default_limit" json:"defaultLimit"`
	// MaxLimit applies to groups that do not implement MaxLimiter.
	MaxLimit int `yaml:"max_limit" json:"maxLimit"`
	// ClampLimit makes the appliers cap the limit at MaxLimit.
	ClampLimit bool `yaml:"clamp_limit" json:"clampLimit"`
}

// DefaultConfig returns the default paging policy. Limits are not clamped.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: DefaultLimit,
		MaxLimit:     DefaultMaxLimit,
	}
}

// QueryFilter is the parsed envelope of one request.
// Nil fields were absent from the query.
type QueryFilter[T Filter] struct {
	Start  *int
	End    *int
	Sort   *string
	Order  *string
	Filter *T
	Config Config

	// proto answers group-level questions (sortable fields, columns, max limit)
	// when no filter was given.
	proto *T
}

// Offset returns start, or 0. Negative values are returned as is.
func (q *QueryFilter[T]) Offset() int {
	if q.Start != nil {
		return *q.Start
	}
	return 0
}

// Limit returns end-offset (at least 1), or the default limit when end is absent.
func (q *QueryFilter[T]) Limit(offset int) int {
	if q.End != nil {
		return max(*q.End-offset, 1)
	}
	if q.Config.DefaultLimit > 0 {
		return q.Config.DefaultLimit
	}
	return DefaultLimit
}

// EffectiveLimit is Limit capped at MaxLimit when Config.ClampLimit is set.
func (q *QueryFilter[T]) EffectiveLimit(offset int) int {
	limit := q.Limit(offset)
	if q.Config.ClampLimit {
		limit = min(limit, q.MaxLimit())
	}
	return limit
}

// SortField returns the validated sort field. Unknown fields disable sorting.
func (q *QueryFilter[T]) SortField() (string, bool) {
	if q.Sort == nil {
		return "", false
	}
	return ValidateSortField(q.group(), *q.Sort)
}

// Direction returns the parsed order, OrderNone when absent or unrecognized.
func (q *QueryFilter[T]) Direction() Order {
	if q.Order == nil {
		return OrderNone
	}
	return ParseOrder(*q.Order)
}

// MaxLimit returns the group's maximum page size.
func (q *QueryFilter[T]) MaxLimit() int {
	if m, ok := any(q.group()).(MaxLimiter); ok && m.MaxLimit() > 0 {
		return m.MaxLimit()
	}
	if q.Config.MaxLimit > 0 {
		return q.Config.MaxLimit
	}
	return DefaultMaxLimit
}

// Cond returns the filter group's condition, nil without a filter.
func (q *QueryFilter[T]) Cond() squirrel.Sqlizer {
	if q.Filter == nil {
		return nil
	}
	return (*q.Filter).Cond()
}

// Column maps a field name onto its column.
func (q *QueryFilter[T]) Column(field string) string {
	if c, ok := any(q.group()).(Columner); ok {
		return c.Column(field)
	}
	return field
}

func (q *QueryFilter[T]) group() T {
	switch {
	case q.Filter != nil:
		return *q.Filter
	case q.proto != nil:
		return *q.proto
	}
	var zero T
	return zero
}
