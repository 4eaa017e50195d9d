package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type baseFilter struct {
	ID string `query:"id" db:"user_id"`
}

type userFilter struct {
	baseFilter
	Name    string `query:"name" db:"full_name,omitempty"`
	Age     int    `db:"age"`
	Email   string `query:"email"`
	Ignored string `query:"-" db:"ignored"`
	Plain   string
}

func TestColumnsOf(t *testing.T) {
	cols := ColumnsOf[userFilter]()

	assert.Equal(t, []Column{
		{Field: "id", Column: "user_id"},
		{Field: "name", Column: "full_name"},
		{Field: "age", Column: "age"},
		{Field: "email", Column: "email"},
	}, cols)

	// pointer types resolve to the same columns
	assert.Equal(t, cols, ColumnsOf[*userFilter]())
}

func TestColumnFor(t *testing.T) {
	assert.Equal(t, "full_name", ColumnFor[userFilter]("name"))
	assert.Equal(t, "unknown", ColumnFor[userFilter]("unknown"))
}

func TestColumnsOf_NonStruct(t *testing.T) {
	assert.Nil(t, ColumnsOf[int]())
}
