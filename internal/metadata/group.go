package metadata

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"sieve/internal/core/apperror"
	"sieve/internal/domain/filter"
	"sieve/pkg/qs"
)

// Group is a filter group built from a ResourceDef. It implements
// query.Filter, query.FilterDecoder, query.MaxLimiter and query.Columner.
//
// Fields render in the order the definition declares them.
type Group struct {
	def  *ResourceDef
	sets []fieldSet
}

// NewGroup creates an empty group for def.
func NewGroup(def ResourceDef) Group {
	return Group{def: &def}
}

// fieldSet holds the decoded set of one field. Exactly one of the set
// pointers matching field.Type is used.
type fieldSet struct {
	field FieldDef

	date       *filter.DateFilterSet
	dateTime   *filter.DateTimeFilterSet
	dateTimeTz *filter.DateTimeTzFilterSet
	number     *filter.NumberFilterSet
	decimal    *filter.DecimalFilterSet
	text       *filter.StringFilterSet
	uuid       *filter.UUIDFilterSet
}

func (s fieldSet) cond() squirrel.Sqlizer {
	column := s.field.ColumnName()
	switch s.field.Type {
	case TypeDate:
		return s.date.Cond(column)
	case TypeDateTime:
		return s.dateTime.Cond(column)
	case TypeDateTimeTz:
		return s.dateTimeTz.Cond(column)
	case TypeNumber:
		return s.number.Cond(column)
	case TypeDecimal:
		return s.decimal.Cond(column)
	case TypeString:
		return s.text.Cond(column)
	case TypeUUID:
		return s.uuid.Cond(column)
	}
	return nil
}

// DecodeFilter implements query.FilterDecoder. Keys that are not fields of
// the resource are ignored.
func (g *Group) DecodeFilter(node *qs.Value) error {
	if g.def == nil {
		return apperror.NewInvalidSchema("", "filter group has no resource definition")
	}
	if node.IsLeaf() {
		return apperror.NewInvalidFilter("", "", node.String()).
			WithCause(fmt.Errorf("%w: expected fields", filter.ErrMalformedValue))
	}

	g.sets = g.sets[:0]
	for _, f := range g.def.Fields {
		child := node.Get(f.Name)
		if child == nil {
			continue
		}

		s := fieldSet{field: f}
		var err error
		switch f.Type {
		case TypeDate:
			s.date, err = filter.DecodeDateSet(f.Name, child)
		case TypeDateTime:
			s.dateTime, err = filter.DecodeDateTimeSet(f.Name, child)
		case TypeDateTimeTz:
			s.dateTimeTz, err = filter.DecodeDateTimeTzSet(f.Name, child)
		case TypeNumber:
			s.number, err = filter.DecodeNumberSet(f.Name, child)
		case TypeDecimal:
			s.decimal, err = filter.DecodeDecimalSet(f.Name, child)
		case TypeString:
			s.text, err = filter.DecodeStringSet(f.Name, child)
		case TypeUUID:
			s.uuid, err = filter.DecodeUUIDSet(f.Name, child)
		default:
			err = apperror.NewInvalidSchema(g.def.Name, fmt.Sprintf("field %q has unknown type %q", f.Name, f.Type))
		}
		if err != nil {
			return err
		}
		g.sets = append(g.sets, s)
	}
	return nil
}

// Cond implements query.Filter.
func (g Group) Cond() squirrel.Sqlizer {
	parts := make([]squirrel.Sqlizer, 0, len(g.sets))
	for _, s := range g.sets {
		parts = append(parts, s.cond())
	}
	return filter.And(parts...)
}

// SortableFields implements query.Filter.
func (g Group) SortableFields() []string {
	if g.def == nil {
		return nil
	}
	var fields []string
	for _, f := range g.def.Fields {
		if f.Sortable {
			fields = append(fields, f.Name)
		}
	}
	return fields
}

// MaxLimit implements query.MaxLimiter. Zero defers to the query config.
func (g Group) MaxLimit() int {
	if g.def == nil {
		return 0
	}
	return g.def.MaxLimit
}

// Column implements query.Columner.
func (g Group) Column(field string) string {
	if g.def != nil {
		if f, ok := g.def.Field(field); ok {
			return f.ColumnName()
		}
	}
	return field
}

// Resource returns the definition the group was built from.
func (g Group) Resource() ResourceDef {
	if g.def == nil {
		return ResourceDef{}
	}
	return *g.def
}

// Clause is one decoded operator instance, for display.
type Clause struct {
	Field    string `json:"field"`
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Clauses lists the decoded operator instances in render order.
func (g Group) Clauses() []Clause {
	var out []Clause
	for _, s := range g.sets {
		add := func(op filter.ComparisonType, value string) {
			out = append(out, Clause{
				Field:    s.field.Name,
				Column:   s.field.ColumnName(),
				Operator: op.String(),
				Value:    value,
			})
		}
		switch s.field.Type {
		case TypeDate:
			for _, f := range s.date.Filters() {
				add(f.Op(), f.Value().String())
			}
		case TypeDateTime:
			for _, f := range s.dateTime.Filters() {
				add(f.Op(), f.Value().String())
			}
		case TypeDateTimeTz:
			for _, f := range s.dateTimeTz.Filters() {
				add(f.Op(), f.Value().String())
			}
		case TypeNumber:
			for _, f := range s.number.Filters() {
				add(f.Op(), fmt.Sprint(f.Value()))
			}
		case TypeDecimal:
			for _, f := range s.decimal.Filters() {
				add(f.Op(), f.Value().String())
			}
		case TypeString:
			for _, f := range s.text.Filters() {
				add(f.Op(), f.Value())
			}
		case TypeUUID:
			for _, f := range s.uuid.Filters() {
				ids := f.Values()
				values := make([]string, len(ids))
				for i, v := range ids {
					values[i] = v.String()
				}
				add(f.Op(), strings.Join(values, ","))
			}
		}
	}
	return out
}
