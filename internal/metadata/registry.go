// Package metadata describes filterable resources and builds filter groups
// from those descriptions at runtime.
package metadata

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"sieve/internal/core/apperror"
)

// FieldType defines the value domain of a filterable field.
type FieldType string

const (
	TypeDate       FieldType = "date"
	TypeDateTime   FieldType = "datetime"   // timestamp without time zone
	TypeDateTimeTz FieldType = "datetimetz" // timestamp with time zone
	TypeNumber     FieldType = "number"     // int64
	TypeDecimal    FieldType = "decimal"
	TypeString     FieldType = "string"
	TypeUUID       FieldType = "uuid"
)

// FieldTypes lists every supported type.
var FieldTypes = []FieldType{
	TypeDate, TypeDateTime, TypeDateTimeTz, TypeNumber, TypeDecimal, TypeString, TypeUUID,
}

// Valid reports whether t is a supported type.
func (t FieldType) Valid() bool {
	return slices.Contains(FieldTypes, t)
}

// ResourceDef describes a filterable resource (a table).
type ResourceDef struct {
	Name    string   `yaml:"name" json:"name"`
	Label   string   `yaml:"label,omitempty" json:"label,omitempty"`
	Table   string   `yaml:"table" json:"table"`
	Columns []string `yaml:"columns,omitempty" json:"columns,omitempty"` // selected columns, "*" when empty
	// MaxLimit overrides the default maximum page size when positive.
	MaxLimit int        `yaml:"max_limit,omitempty" json:"maxLimit,omitempty"`
	Fields   []FieldDef `yaml:"fields" json:"fields"`
}

// FieldDef describes a filterable field.
type FieldDef struct {
	Name     string    `yaml:"name" json:"name"`
	Label    string    `yaml:"label,omitempty" json:"label,omitempty"`
	Column   string    `yaml:"column,omitempty" json:"column,omitempty"` // defaults to Name
	Type     FieldType `yaml:"type" json:"type"`
	Sortable bool      `yaml:"sortable,omitempty" json:"sortable,omitempty"`
}

// ColumnName returns the database column of the field.
func (f FieldDef) ColumnName() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Name
}

// Field returns the field called name.
func (d ResourceDef) Field(name string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// SelectColumns returns the columns a SELECT should list.
func (d ResourceDef) SelectColumns() []string {
	if len(d.Columns) == 0 {
		return []string{"*"}
	}
	return d.Columns
}

// identifier matches plain and schema-qualified SQL identifiers. Table and
// column names are rendered into SQL unquoted, so nothing else is accepted.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Validate checks names, identifiers and field types.
func (d ResourceDef) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return apperror.NewInvalidSchema(d.Name, "resource name is required")
	}
	if !identifier.MatchString(d.Table) {
		return apperror.NewInvalidSchema(d.Name, fmt.Sprintf("invalid table name %q", d.Table))
	}
	if d.MaxLimit < 0 {
		return apperror.NewInvalidSchema(d.Name, "max_limit must not be negative")
	}
	for _, c := range d.Columns {
		if c != "*" && !identifier.MatchString(c) {
			return apperror.NewInvalidSchema(d.Name, fmt.Sprintf("invalid column %q", c))
		}
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return apperror.NewInvalidSchema(d.Name, "field name is required")
		}
		if _, dup := seen[f.Name]; dup {
			return apperror.NewInvalidSchema(d.Name, fmt.Sprintf("duplicate field %q", f.Name)).
				WithDetail("field", f.Name)
		}
		seen[f.Name] = struct{}{}

		if !f.Type.Valid() {
			return apperror.NewInvalidSchema(d.Name, fmt.Sprintf("field %q has unknown type %q", f.Name, f.Type)).
				WithDetail("field", f.Name)
		}
		if !identifier.MatchString(f.ColumnName()) {
			return apperror.NewInvalidSchema(d.Name, fmt.Sprintf("field %q has invalid column %q", f.Name, f.ColumnName())).
				WithDetail("field", f.Name)
		}
	}
	return nil
}

// Registry stores resource definitions. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]ResourceDef
}

func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]ResourceDef),
	}
}

// Register validates and stores def, replacing a previous definition with
// the same name.
func (r *Registry) Register(def ResourceDef) error {
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[def.Name] = def
	return nil
}

// MustRegister is Register that panics. Use only at startup.
func (r *Registry) MustRegister(def ResourceDef) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (ResourceDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.resources[name]
	return d, ok
}

// List returns all definitions sorted by name.
func (r *Registry) List() []ResourceDef {
	r.mu.RLock()
	list := make([]ResourceDef, 0, len(r.resources))
	for _, def := range r.resources {
		list = append(list, def)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b ResourceDef) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.resources)
}
