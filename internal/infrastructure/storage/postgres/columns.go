package postgres

import (
	"reflect"
	"strings"
	"sync"
)

// Column binds a filter field to its database column.
type Column struct {
	Field  string // name used in query strings
	Column string // database column
}

// columnCache holds the columns per struct type.
var columnCache sync.Map // map[reflect.Type][]Column

// ColumnsOf extracts field/column pairs from the "query" and "db" tags of T.
// Embedded structs are walked recursively. A field without a "query" tag uses
// its "db" tag for both names; fields tagged "-" or untagged are skipped.
//
// Usage:
//
//	type UserFilter struct {
//		Name *filter.StringFilterSet `query:"name" db:"full_name"`
//		Age  *filter.NumberFilterSet `db:"age"`
//	}
//	cols := ColumnsOf[UserFilter]() // [{name full_name} {age age}]
//
// Reflection runs once per type, later calls reuse the cached result.
func ColumnsOf[T any]() []Column {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]Column)
	}
	cols := columnsFromType(t)
	columnCache.Store(t, cols)
	return cols
}

// ColumnFor returns the column of field in T, or field itself when T does
// not declare it.
func ColumnFor[T any](field string) string {
	for _, c := range ColumnsOf[T]() {
		if c.Field == field {
			return c.Column
		}
	}
	return field
}

func columnsFromType(t reflect.Type) []Column {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []Column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			cols = append(cols, columnsFromType(field.Type)...)
			continue
		}

		db := tagName(field.Tag.Get("db"))
		name := tagName(field.Tag.Get("query"))
		if db == "-" || name == "-" || (db == "" && name == "") {
			continue
		}
		if db == "" {
			db = name
		}
		if name == "" {
			name = db
		}
		cols = append(cols, Column{Field: name, Column: db})
	}
	return cols
}

// tagName strips options such as ",omitempty".
func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}
