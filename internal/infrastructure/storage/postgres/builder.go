// Package postgres renders filtered statements for PostgreSQL.
//
// Statements are built with '?' placeholders so the same SQL can be shown with
// inlined literals (Inline) or handed to a driver with $n placeholders (ToDollar).
package postgres

import (
	"github.com/Masterminds/squirrel"
)

// Builder returns the statement builder used for every filtered statement.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// ToDollar rewrites '?' placeholders into PostgreSQL's $1, $2, ... form.
func ToDollar(sql string) (string, error) {
	return squirrel.Dollar.ReplacePlaceholders(sql)
}
