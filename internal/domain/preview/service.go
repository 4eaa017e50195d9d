// Package preview renders the statements a query string describes for a
// registered resource. Statements are never executed.
package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sieve/internal/core/apperror"
	"sieve/internal/domain/query"
	"sieve/internal/infrastructure/storage/postgres"
	"sieve/internal/metadata"
	"sieve/pkg/logger"
)

var tracer = otel.Tracer("sieve/preview")

// Kind selects the statement to render.
type Kind string

const (
	KindSelect Kind = "select"
	KindDelete Kind = "delete"
)

// ParseKind parses a statement kind. An empty string means KindSelect.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindSelect:
		return KindSelect, nil
	case KindDelete:
		return KindDelete, nil
	}
	return "", apperror.NewValidation(fmt.Sprintf("unknown statement kind %q", s)).
		WithDetail("kind", s)
}

// Request asks for one statement.
type Request struct {
	Resource string
	RawQuery string
	Kind     Kind
}

// Result is a rendered statement.
type Result struct {
	Resource string `json:"resource,omitempty"`
	Kind     Kind   `json:"kind"`
	// SQL uses PostgreSQL $n placeholders bound to Args.
	SQL  string `json:"sql"`
	Args []any  `json:"args"`
	// Inline is SQL with literal values, for display only.
	Inline  string            `json:"inline"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
	Sort    string            `json:"sort,omitempty"`
	Order   string            `json:"order,omitempty"`
	Clauses []metadata.Clause `json:"clauses,omitempty"`
}

// Config configures the service.
type Config struct {
	Registry *metadata.Registry
	Query    query.Config
}

// Service renders statements for registered resources.
type Service struct {
	registry *metadata.Registry
	query    query.Config
}

// NewService creates a preview service.
func NewService(cfg Config) *Service {
	if cfg.Query == (query.Config{}) {
		cfg.Query = query.DefaultConfig()
	}
	return &Service{
		registry: cfg.Registry,
		query:    cfg.Query,
	}
}

// QueryConfig returns the paging policy applied to every request.
func (s *Service) QueryConfig() query.Config {
	return s.query
}

// Resources lists the registered resources.
func (s *Service) Resources() []metadata.ResourceDef {
	return s.registry.List()
}

// Resource returns one registered resource.
func (s *Service) Resource(name string) (metadata.ResourceDef, error) {
	def, ok := s.registry.Get(name)
	if !ok {
		return metadata.ResourceDef{}, apperror.NewNotFound("resource", name)
	}
	return def, nil
}

// Preview decodes req.RawQuery against the resource schema and renders the
// requested statement.
func (s *Service) Preview(ctx context.Context, req Request) (*Result, error) {
	ctx, span := tracer.Start(ctx, "preview",
		trace.WithAttributes(
			attribute.String("preview.resource", req.Resource),
			attribute.String("preview.kind", string(req.Kind)),
		))
	defer span.End()

	res, err := s.preview(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug(ctx, "preview rejected", "resource", req.Resource, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("preview.args", len(res.Args)))
	logger.Debug(ctx, "preview rendered", "resource", res.Resource, "sql", res.SQL)
	return res, nil
}

func (s *Service) preview(_ context.Context, req Request) (*Result, error) {
	def, err := s.Resource(req.Resource)
	if err != nil {
		return nil, err
	}

	q, err := query.ParseWith(req.RawQuery, func() metadata.Group {
		return metadata.NewGroup(def)
	})
	if err != nil {
		return nil, err
	}
	q.Config = s.query

	res, err := Render(req.Kind, def.Table, def.SelectColumns(), q)
	if err != nil {
		return nil, err
	}
	res.Resource = def.Name
	if q.Filter != nil {
		res.Clauses = q.Filter.Clauses()
	}
	return res, nil
}

// Render applies q to a statement of the given kind on table and renders it.
// It works for any filter group, schema-driven or declared in Go.
func Render[T query.Filter](kind Kind, table string, columns []string, q *query.QueryFilter[T]) (*Result, error) {
	if kind == "" {
		kind = KindSelect
	}
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	var (
		b      = postgres.Builder()
		stmt   squirrel.Sqlizer
		offset int
	)
	switch kind {
	case KindSelect:
		offset = q.Offset()
		stmt = query.ApplySelect(b.Select(columns...).From(table), q)
	case KindDelete:
		stmt = query.ApplyDelete(b.Delete(table), q)
	default:
		return nil, apperror.NewValidation(fmt.Sprintf("unknown statement kind %q", kind))
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("build statement: %w", err))
	}
	inline, err := postgres.InlineArgs(sql, args)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("inline statement: %w", err))
	}
	dollar, err := postgres.ToDollar(sql)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("number placeholders: %w", err))
	}
	if args == nil {
		args = []any{}
	}

	res := &Result{
		Kind:   kind,
		SQL:    dollar,
		Args:   args,
		Inline: inline,
		Offset: offset,
		Limit:  q.EffectiveLimit(offset),
	}
	if field, ok := q.SortField(); ok {
		res.Sort = field
		res.Order = q.Direction().String()
	}
	return res, nil
}
