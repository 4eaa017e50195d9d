package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFilter(t *testing.T) {
	cause := errors.New("bad date")
	err := NewInvalidFilter("birthday", "before", "1993-13-01").WithCause(cause)

	assert.Equal(t, CodeInvalidFilter, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "birthday", err.Details["field"])
	assert.Equal(t, "before", err.Details["operator"])
	assert.Equal(t, "1993-13-01", err.Details["value"])
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "caused by: bad date")
}

func TestHelpersThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("decode: %w", NewInvalidQuery("start", "abc"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsInvalidQuery(wrapped))
	assert.False(t, IsInvalidFilter(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(wrapped))
}

func TestGetHTTPStatus_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("boom")))
}

func TestWithDetail_InitializesMap(t *testing.T) {
	err := NewValidation("bad").WithDetail("k", 1)
	assert.Equal(t, 1, err.Details["k"])
	assert.Equal(t, "VALIDATION_ERROR: bad", err.Error())
}
