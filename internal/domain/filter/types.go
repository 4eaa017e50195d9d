// Package filter implements typed filter operators and the sets that combine
// them into SQL conditions for one column.
package filter

// ComparisonType is the operator token used in query strings.
type ComparisonType string

const (
	Equal          ComparisonType = "eq"  // =
	NotEqual       ComparisonType = "neq" // <>
	Less           ComparisonType = "lt"  // <
	LessOrEqual    ComparisonType = "lte" // <=
	Greater        ComparisonType = "gt"  // >
	GreaterOrEqual ComparisonType = "gte" // >=
	InList         ComparisonType = "in"  // IN (...)

	// Temporal
	Before ComparisonType = "before" // strictly earlier
	After  ComparisonType = "after"  // same or later

	// Text (LIKE)
	Contains    ComparisonType = "contains"    // %val%
	NotContains ComparisonType = "notcontains" // NOT LIKE %val%
	StartsWith  ComparisonType = "startswith"  // val%
	EndsWith    ComparisonType = "endswith"    // %val
)

// String returns the token.
func (c ComparisonType) String() string { return string(c) }
