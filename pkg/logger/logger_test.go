package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "sieve/internal/core/context"
)

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(-1)) // debug
	assert.True(t, log.Desugar().Core().Enabled(0))   // info
}

func TestFromContext(t *testing.T) {
	nop := Nop()
	ctx := WithLogger(context.Background(), nop)
	ctx = appctx.WithTrace(ctx, appctx.NewTraceContext())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.NotSame(t, nop, got)

	// falls back to the default logger
	assert.NotNil(t, FromContext(context.Background()))
}
