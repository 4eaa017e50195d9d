package qs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(v *Value) []string {
	out := make([]string, 0, v.Len())
	for _, f := range v.Fields() {
		out = append(out, f.Key)
	}
	return out
}

func TestParse_NestedBrackets(t *testing.T) {
	root, err := Parse("filter[age][lt]=50&filter[age][gte]=20&filter[name][contains]=John&start=10")
	require.NoError(t, err)

	assert.Equal(t, []string{"filter", "start"}, keys(root))
	assert.Equal(t, "10", root.Get("start").String())

	filter := root.Get("filter")
	require.NotNil(t, filter)
	assert.False(t, filter.IsLeaf())
	assert.Equal(t, []string{"age", "name"}, keys(filter))

	age := filter.Get("age")
	assert.Equal(t, []string{"lt", "gte"}, keys(age))
	assert.Equal(t, "50", age.Get("lt").String())
	assert.Equal(t, "20", age.Get("gte").String())
	assert.Equal(t, "John", filter.Get("name").Get("contains").String())
}

func TestParse_RepeatedLeaves(t *testing.T) {
	root, err := Parse("id[in]=a&id[in]=b&id[eq]=c")
	require.NoError(t, err)

	id := root.Get("id")
	require.Equal(t, 3, id.Len())
	fields := id.Fields()
	assert.Equal(t, "in", fields[0].Key)
	assert.Equal(t, "a", fields[0].Value.String())
	assert.Equal(t, "in", fields[1].Key)
	assert.Equal(t, "b", fields[1].Value.String())
	assert.Equal(t, "eq", fields[2].Key)
}

func TestParse_Unescape(t *testing.T) {
	root, err := Parse("?at[before]=1993-10-15T10:30:05%2b00:00&name[contains]=John+Doe&k%5Bx%5D=1")
	require.NoError(t, err)

	assert.Equal(t, "1993-10-15T10:30:05+00:00", root.Get("at").Get("before").String())
	assert.Equal(t, "John Doe", root.Get("name").Get("contains").String())
	assert.Equal(t, "1", root.Get("k").Get("x").String())
}

func TestParse_EmptyBracketsAppend(t *testing.T) {
	root, err := Parse("ids[]=1&ids[]=2")
	require.NoError(t, err)

	fields := root.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "ids", fields[0].Key)
	assert.Equal(t, "1", fields[0].Value.String())
	assert.Equal(t, "2", fields[1].Value.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  error
	}{
		{name: "unclosed bracket", query: "a[b=1", want: ErrMalformedKey},
		{name: "stray close", query: "a]=1", want: ErrMalformedKey},
		{name: "leading bracket", query: "[a]=1", want: ErrMalformedKey},
		{name: "nested open", query: "a[b[c]]=1", want: ErrMalformedKey},
		{name: "empty segment in middle", query: "a[][b]=1", want: ErrMalformedKey},
		{name: "leaf then object", query: "a=1&a[b]=2", want: ErrConflict},
		{name: "object then leaf", query: "a[b]=2&a=1", want: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_BadEscape(t *testing.T) {
	_, err := Parse("a=%zz")
	assert.Error(t, err)
}

func TestParse_SkipsEmptyPairs(t *testing.T) {
	root, err := Parse("&&a=1&")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys(root))
}

func TestParseJSON(t *testing.T) {
	root, err := ParseJSON([]byte(`{"age":{"lt":50,"gte":"20"},"id":{"in":["a","b"]},"flag":{"eq":true},"none":{"eq":null}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "id", "flag", "none"}, keys(root))
	assert.Equal(t, []string{"lt", "gte"}, keys(root.Get("age")))
	assert.Equal(t, "50", root.Get("age").Get("lt").String())

	in := root.Get("id").Fields()
	require.Len(t, in, 2)
	assert.Equal(t, "a", in[0].Value.String())
	assert.Equal(t, "b", in[1].Value.String())

	assert.Equal(t, "true", root.Get("flag").Get("eq").String())
	assert.True(t, root.Get("none").Get("eq").IsLeaf())
}

func TestParseJSON_Errors(t *testing.T) {
	for _, input := range []string{
		`[1,2]`,
		`"x"`,
		`{"a":[[1]]}`,
		`{"a":1} {}`,
		`{"a":`,
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseJSON([]byte(input))
			assert.Error(t, err)
		})
	}
}
