package errors

import (
	"net/http"
	"testing"

	"marketnav/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrExternalRouteUnavailable.WithDetails("google: status 503")

	assert.True(t, errors.Is(detailed, ErrExternalRouteUnavailable))
	assert.False(t, errors.Is(detailed, ErrShopNotFound))
	assert.Equal(t, http.StatusBadGateway, detailed.HTTPCode())
	assert.Equal(t, "google: status 503", detailed.Details())
	assert.Equal(t, "External route provider is unavailable: google: status 503", detailed.Error())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrSessionConflict.WrapMessage("update session")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "SESSION_CONFLICT", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrSessionConflict))
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert route")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert route", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
}
