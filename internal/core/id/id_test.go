package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Canonical(t *testing.T) {
	parsed, err := Parse("urn:uuid:F9168C5E-CEB2-4faa-B6BF-329BF39FA1E4")
	require.NoError(t, err)
	assert.Equal(t, "f9168c5e-ceb2-4faa-b6bf-329bf39fa1e4", parsed.String())
}

func TestNew_IsV7(t *testing.T) {
	v := New()
	assert.False(t, IsNil(v))
	assert.Equal(t, 7, int(v.Version()))
	assert.True(t, IsNil(Nil()))
}
