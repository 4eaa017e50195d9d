package preview_test

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sieve/internal/core/apperror"
	"sieve/internal/domain/preview"
	"sieve/internal/domain/query"
	"sieve/internal/domain/users"
	"sieve/internal/metadata"
)

func newService(t *testing.T, cfg query.Config) *preview.Service {
	t.Helper()

	reg := metadata.NewRegistry()
	require.NoError(t, reg.Register(metadata.ResourceDef{
		Name:    "users",
		Table:   "users",
		Columns: []string{"age"},
		Fields: []metadata.FieldDef{
			{Name: "id", Type: metadata.TypeUUID},
			{Name: "name", Type: metadata.TypeString, Sortable: true},
			{Name: "age", Type: metadata.TypeNumber, Sortable: true},
			{Name: "born", Type: metadata.TypeDate},
			{Name: "created_at", Type: metadata.TypeDateTimeTz, Sortable: true},
		},
	}))

	return preview.NewService(preview.Config{Registry: reg, Query: cfg})
}

func TestPreview_Golden(t *testing.T) {
	svc := newService(t, query.Config{})

	tests := []struct {
		name string
		req  preview.Request
	}{
		{
			name: "users_end_to_end",
			req: preview.Request{
				Resource: "users",
				RawQuery: "filter[age][lt]=50&filter[age][gte]=20&filter[name][contains]=John&start=10&end=100&sort=age&order=DESC",
			},
		},
		{
			name: "users_delete",
			req: preview.Request{
				Resource: "users",
				Kind:     preview.KindDelete,
				RawQuery: "filter[age][lt]=50&filter[age][gte]=20&filter[name][contains]=John&start=10&end=100&sort=age&order=DESC",
			},
		},
		{
			name: "users_identifiers",
			req: preview.Request{
				Resource: "users",
				RawQuery: "filter[id][in]=0e7ee4f1-6fe0-4da1-9a86-5d1b84e1d5c1&filter[id][in]=5A4B7C52-98C4-4C5E-8E1B-7E0DCD1F6A70" +
					"&filter[born][before]=2000-01-01&filter[created_at][after]=2024-01-01T00:00:00Z",
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Preview(context.Background(), tt.req)
			require.NoError(t, err)

			g.Assert(t, tt.name, []byte(res.Inline+"\n"+res.SQL+"\n"))
		})
	}
}

func TestPreview_Result(t *testing.T) {
	svc := newService(t, query.Config{})

	res, err := svc.Preview(context.Background(), preview.Request{
		Resource: "users",
		RawQuery: "filter[age][lt]=50&filter[age][gte]=20&filter[name][contains]=John&start=10&end=100&sort=age&order=desc",
	})
	require.NoError(t, err)

	assert.Equal(t, "users", res.Resource)
	assert.Equal(t, preview.KindSelect, res.Kind)
	assert.Equal(t, []any{"%John%", int64(20), int64(50)}, res.Args)
	assert.Equal(t, 10, res.Offset)
	assert.Equal(t, 90, res.Limit)
	assert.Equal(t, "age", res.Sort)
	assert.Equal(t, "DESC", res.Order)
	assert.Equal(t, []metadata.Clause{
		{Field: "name", Column: "name", Operator: "contains", Value: "John"},
		{Field: "age", Column: "age", Operator: "gte", Value: "20"},
		{Field: "age", Column: "age", Operator: "lt", Value: "50"},
	}, res.Clauses)
}

func TestPreview_NoFilter(t *testing.T) {
	svc := newService(t, query.Config{})

	res, err := svc.Preview(context.Background(), preview.Request{Resource: "users"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT age FROM users LIMIT 10 OFFSET 0", res.Inline)
	assert.Equal(t, []any{}, res.Args)
	assert.Empty(t, res.Clauses)
	assert.Empty(t, res.Sort)
}

func TestPreview_ClampLimit(t *testing.T) {
	svc := newService(t, query.Config{DefaultLimit: 20, MaxLimit: 100, ClampLimit: true})
	assert.True(t, svc.QueryConfig().ClampLimit)

	res, err := svc.Preview(context.Background(), preview.Request{Resource: "users", RawQuery: "end=1000"})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Limit)
	assert.Equal(t, "SELECT age FROM users LIMIT 100 OFFSET 0", res.Inline)

	res, err = svc.Preview(context.Background(), preview.Request{Resource: "users"})
	require.NoError(t, err)
	assert.Equal(t, 20, res.Limit)
}

func TestPreview_Errors(t *testing.T) {
	svc := newService(t, query.Config{})
	ctx := context.Background()

	_, err := svc.Preview(ctx, preview.Request{Resource: "orders"})
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Preview(ctx, preview.Request{Resource: "users", RawQuery: "filter[age][before]=1"})
	assert.True(t, apperror.IsInvalidFilter(err))

	_, err = svc.Preview(ctx, preview.Request{Resource: "users", RawQuery: "start=x"})
	assert.True(t, apperror.IsInvalidQuery(err))

	_, err = svc.Preview(ctx, preview.Request{Resource: "users", Kind: "truncate"})
	assert.Equal(t, 400, apperror.GetHTTPStatus(err))
}

func TestResources(t *testing.T) {
	svc := newService(t, query.Config{})

	require.Len(t, svc.Resources(), 1)
	def, err := svc.Resource("users")
	require.NoError(t, err)
	assert.Equal(t, "users", def.Table)

	_, err = svc.Resource("nope")
	assert.True(t, apperror.IsNotFound(err))
}

func TestRender_TypedGroup(t *testing.T) {
	q, err := query.Parse[users.Filter]("filter[name][endswith]=son&sort=born")
	require.NoError(t, err)

	res, err := preview.Render(preview.KindSelect, users.Table, nil, q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE full_name LIKE '%son' ORDER BY birth_date ASC LIMIT 10 OFFSET 0", res.Inline)
	assert.Equal(t, "SELECT * FROM users WHERE full_name LIKE $1 ORDER BY birth_date ASC LIMIT 10 OFFSET 0", res.SQL)
	assert.Equal(t, "born", res.Sort)
	assert.Equal(t, "ASC", res.Order)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    preview.Kind
		wantErr bool
	}{
		{in: "", want: preview.KindSelect},
		{in: "select", want: preview.KindSelect},
		{in: "DELETE", want: preview.KindDelete},
		{in: "update", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := preview.ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
