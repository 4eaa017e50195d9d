package metadata

import (
	"reflect"
	"strings"
	"unicode"

	"sieve/internal/domain/filter"
)

// setTypes maps FilterSet pointer types onto field types.
var setTypes = map[reflect.Type]FieldType{
	reflect.TypeOf((*filter.DateFilterSet)(nil)):       TypeDate,
	reflect.TypeOf((*filter.DateTimeFilterSet)(nil)):   TypeDateTime,
	reflect.TypeOf((*filter.DateTimeTzFilterSet)(nil)): TypeDateTimeTz,
	reflect.TypeOf((*filter.NumberFilterSet)(nil)):     TypeNumber,
	reflect.TypeOf((*filter.DecimalFilterSet)(nil)):    TypeDecimal,
	reflect.TypeOf((*filter.StringFilterSet)(nil)):     TypeString,
	reflect.TypeOf((*filter.UUIDFilterSet)(nil)):       TypeUUID,
}

// Inspect analyzes a statically declared filter group and returns its
// ResourceDef.
//
// Every exported field holding a FilterSet pointer becomes a FieldDef. Tags:
//
//	Age *filter.NumberFilterSet `query:"age,sortable" db:"age_years" label:"Age"`
//
// The query name defaults to the Go field name with a lowercase first letter
// and the column defaults to the query name.
func Inspect(group any, name, table string) ResourceDef {
	t := reflect.TypeOf(group)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if name == "" {
		name = strings.ToLower(t.Name())
	}
	if table == "" {
		table = name
	}

	def := ResourceDef{
		Name:   name,
		Label:  guessLabel(t.Name()),
		Table:  table,
		Fields: make([]FieldDef, 0),
	}
	if limiter, ok := group.(interface{ MaxLimit() int }); ok {
		def.MaxLimit = limiter.MaxLimit()
	}

	inspectStruct(t, &def)

	return def
}

func inspectStruct(t reflect.Type, def *ResourceDef) {
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Handle embedded structs (flattening), exported or not
		if field.Anonymous {
			inspectStruct(field.Type, def)
			continue
		}

		if field.PkgPath != "" { // unexported
			continue
		}

		typ, ok := setTypes[field.Type]
		if !ok {
			continue
		}

		name, sortable := queryName(field)
		if name == "-" {
			continue
		}

		fDef := FieldDef{
			Name:     name,
			Label:    field.Tag.Get("label"),
			Type:     typ,
			Sortable: sortable,
		}
		if fDef.Label == "" {
			fDef.Label = guessLabel(field.Name)
		}
		if col, _, _ := strings.Cut(field.Tag.Get("db"), ","); col != "" && col != name {
			fDef.Column = col
		}

		def.Fields = append(def.Fields, fDef)
	}
}

func queryName(field reflect.StructField) (string, bool) {
	name := ""
	sortable := false
	if tag, ok := field.Tag.Lookup("query"); ok {
		parts := strings.Split(tag, ",")
		name = parts[0]
		for _, opt := range parts[1:] {
			if opt == "sortable" {
				sortable = true
			}
		}
	}
	if name == "" {
		// Fallback: camelCase
		runes := []rune(field.Name)
		runes[0] = unicode.ToLower(runes[0])
		name = string(runes)
	}
	return name, sortable
}

// guessLabel splits a CamelCase name into words: "BirthDate" -> "Birth Date".
func guessLabel(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
