// Package users declares the filter group of the users table.
package users

import (
	"github.com/Masterminds/squirrel"

	"sieve/internal/domain/filter"
	"sieve/pkg/qs"
)

const (
	Resource = "users"
	Table    = "users"
)

// Filter is the filter group of the users table.
type Filter struct {
	ID        *filter.UUIDFilterSet       `query:"id" label:"ID"`
	Name      *filter.StringFilterSet     `query:"name,sortable" db:"full_name"`
	Email     *filter.StringFilterSet     `query:"email"`
	Age       *filter.NumberFilterSet     `query:"age,sortable"`
	Born      *filter.DateFilterSet       `query:"born,sortable" db:"birth_date"`
	Balance   *filter.DecimalFilterSet    `query:"balance"`
	LastSeen  *filter.DateTimeFilterSet   `query:"last_seen" db:"last_seen_at"`
	CreatedAt *filter.DateTimeTzFilterSet `query:"created_at,sortable"`
}

var columns = map[string]string{
	"name":      "full_name",
	"born":      "birth_date",
	"last_seen": "last_seen_at",
}

// Column maps a field name onto its column.
func (Filter) Column(field string) string {
	if col, ok := columns[field]; ok {
		return col
	}
	return field
}

func (f Filter) Cond() squirrel.Sqlizer {
	return filter.And(
		f.ID.Cond(f.Column("id")),
		f.Name.Cond(f.Column("name")),
		f.Email.Cond(f.Column("email")),
		f.Age.Cond(f.Column("age")),
		f.Born.Cond(f.Column("born")),
		f.Balance.Cond(f.Column("balance")),
		f.LastSeen.Cond(f.Column("last_seen")),
		f.CreatedAt.Cond(f.Column("created_at")),
	)
}

func (Filter) SortableFields() []string {
	return []string{"name", "age", "born", "created_at"}
}

func (Filter) MaxLimit() int { return 50 }

// DecodeFilter implements query.FilterDecoder.
func (f *Filter) DecodeFilter(node *qs.Value) (err error) {
	if f.ID, err = filter.DecodeUUIDSet("id", node.Get("id")); err != nil {
		return err
	}
	if f.Name, err = filter.DecodeStringSet("name", node.Get("name")); err != nil {
		return err
	}
	if f.Email, err = filter.DecodeStringSet("email", node.Get("email")); err != nil {
		return err
	}
	if f.Age, err = filter.DecodeNumberSet("age", node.Get("age")); err != nil {
		return err
	}
	if f.Born, err = filter.DecodeDateSet("born", node.Get("born")); err != nil {
		return err
	}
	if f.Balance, err = filter.DecodeDecimalSet("balance", node.Get("balance")); err != nil {
		return err
	}
	if f.LastSeen, err = filter.DecodeDateTimeSet("last_seen", node.Get("last_seen")); err != nil {
		return err
	}
	f.CreatedAt, err = filter.DecodeDateTimeTzSet("created_at", node.Get("created_at"))
	return err
}
