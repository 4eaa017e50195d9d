package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sieve/internal/core/apperror"
)

func usersDef() ResourceDef {
	return ResourceDef{
		Name:  "users",
		Table: "users",
		Fields: []FieldDef{
			{Name: "name", Column: "full_name", Type: TypeString, Sortable: true},
			{Name: "age", Type: TypeNumber, Sortable: true},
			{Name: "id", Type: TypeUUID},
		},
	}
}

func TestResourceDef_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *ResourceDef)
	}{
		{"missing name", func(d *ResourceDef) { d.Name = " " }},
		{"bad table", func(d *ResourceDef) { d.Table = "users; DROP TABLE x" }},
		{"negative max limit", func(d *ResourceDef) { d.MaxLimit = -1 }},
		{"bad column list", func(d *ResourceDef) { d.Columns = []string{"id", "1bad"} }},
		{"empty field name", func(d *ResourceDef) { d.Fields[0].Name = "" }},
		{"duplicate field", func(d *ResourceDef) { d.Fields[1].Name = "name" }},
		{"unknown type", func(d *ResourceDef) { d.Fields[1].Type = "float" }},
		{"bad field column", func(d *ResourceDef) { d.Fields[0].Column = "full name" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := usersDef()
			tt.mutate(&def)

			err := def.Validate()
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeInvalidSchema, appErr.Code)
		})
	}

	assert.NoError(t, usersDef().Validate())

	qualified := usersDef()
	qualified.Table = "crm.users"
	qualified.Columns = []string{"*"}
	assert.NoError(t, qualified.Validate())
}

func TestResourceDef_Helpers(t *testing.T) {
	def := usersDef()

	f, ok := def.Field("name")
	require.True(t, ok)
	assert.Equal(t, "full_name", f.ColumnName())

	f, ok = def.Field("age")
	require.True(t, ok)
	assert.Equal(t, "age", f.ColumnName())

	_, ok = def.Field("email")
	assert.False(t, ok)

	assert.Equal(t, []string{"*"}, def.SelectColumns())
	def.Columns = []string{"id", "age"}
	assert.Equal(t, []string{"id", "age"}, def.SelectColumns())
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(usersDef()))
	require.NoError(t, reg.Register(ResourceDef{Name: "accounts", Table: "accounts"}))

	assert.Error(t, reg.Register(ResourceDef{Name: "broken"}))
	assert.Equal(t, 2, reg.Len())

	def, ok := reg.Get("users")
	require.True(t, ok)
	assert.Equal(t, "users", def.Table)

	_, ok = reg.Get("broken")
	assert.False(t, ok)

	names := make([]string, 0)
	for _, d := range reg.List() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"accounts", "users"}, names)

	assert.Panics(t, func() { reg.MustRegister(ResourceDef{}) })
}

func TestRegistry_Load(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.LoadFile("testdata/resources.yaml"))

	assert.Equal(t, 2, reg.Len())

	users, ok := reg.Get("users")
	require.True(t, ok)
	assert.Equal(t, 50, users.MaxLimit)
	assert.Equal(t, []string{"id", "full_name", "age"}, users.Columns)
	require.Len(t, users.Fields, 4)
	assert.Equal(t, FieldDef{Name: "name", Column: "full_name", Type: TypeString, Sortable: true}, users.Fields[1])

	orders, ok := reg.Get("orders")
	require.True(t, ok)
	assert.Equal(t, "sales.orders", orders.Table)
}

func TestRegistry_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "resources:\n  - name: a\n    table: a\n    colour: red\n"},
		{"invalid type", "resources:\n  - name: a\n    table: a\n    fields:\n      - {name: x, type: money}\n"},
		{"duplicate resource", "resources:\n  - {name: a, table: a}\n  - {name: a, table: b}\n"},
		{"not yaml", "resources: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			assert.Error(t, reg.Load(strings.NewReader(tt.yaml)))
			assert.Equal(t, 0, reg.Len())
		})
	}
}

func TestRegistry_LoadEmpty(t *testing.T) {
	reg := NewRegistry()
	assert.NoError(t, reg.Load(strings.NewReader("")))
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_LoadFileMissing(t *testing.T) {
	assert.Error(t, NewRegistry().LoadFile("testdata/missing.yaml"))
}
