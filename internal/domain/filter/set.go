package filter

import (
	"slices"

	"github.com/Masterminds/squirrel"
)

// Condition is implemented by every operator instance.
// A zero-value instance renders no condition (nil).
type Condition interface {
	Cond(column string) squirrel.Sqlizer
}

// Set is an ordered collection of operator instances applied to one column.
// The instances are joined with AND. A nil *Set is empty.
type Set[F Condition] struct {
	filters []F
}

// NewSet creates a set holding filters in the given order.
func NewSet[F Condition](filters ...F) *Set[F] {
	return &Set[F]{filters: slices.Clone(filters)}
}

// Push appends an operator instance.
func (s *Set[F]) Push(f F) {
	s.filters = append(s.filters, f)
}

// IsEmpty reports whether the set holds no instances.
func (s *Set[F]) IsEmpty() bool {
	return s == nil || len(s.filters) == 0
}

// Len returns the number of instances.
func (s *Set[F]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.filters)
}

// Filters returns a copy of the instances in push order.
func (s *Set[F]) Filters() []F {
	if s == nil {
		return nil
	}
	return slices.Clone(s.filters)
}

// Cond renders the set against column.
//
// An empty set yields nil, a single instance yields its bare condition and
// several instances yield a parenthesized conjunction.
func (s *Set[F]) Cond(column string) squirrel.Sqlizer {
	if s.IsEmpty() {
		return nil
	}
	parts := make(All, 0, len(s.filters))
	for _, f := range s.filters {
		if c := f.Cond(column); c != nil {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}

type (
	DateFilterSet       = Set[DateFilter]
	DateTimeFilterSet   = Set[DateTimeFilter]
	DateTimeTzFilterSet = Set[DateTimeTzFilter]
	NumberFilterSet     = Set[NumberFilter]
	DecimalFilterSet    = Set[DecimalFilter]
	StringFilterSet     = Set[StringFilter]
	UUIDFilterSet       = Set[UUIDFilter]
)
