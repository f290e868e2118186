package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketnav/internal/delivery/api/validator"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedDetails any
	}{
		{
			name:           "domain not found",
			err:            errors.Wrap(domainerrors.ErrShopNotFound, "route to shop"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SHOP_NOT_FOUND",
		},
		{
			name:            "domain error with details",
			err:             domainerrors.ErrExternalRouteUnavailable.WithDetails("mapbox: 500"),
			expectedStatus:  http.StatusBadGateway,
			expectedCode:    "EXTERNAL_ROUTE_UNAVAILABLE",
			expectedDetails: nil,
		},
		{
			name:            "client error keeps details",
			err:             domainerrors.ErrValidationFailed.WithDetails(`unknown route provider "here"`),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "VALIDATION_FAILED",
			expectedDetails: `unknown route provider "here"`,
		},
		{
			name:           "validation errors",
			err:            validator.ValidationErrors{{Field: "latitude", Message: "is required"}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
			expectedDetails: []any{
				map[string]any{"field": "latitude", "message": "is required"},
			},
		},
		{
			name:           "echo error",
			err:            echo.ErrMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   "HTTP_ERROR",
		},
		{
			name:           "unexpected error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation/active", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.expectedCode, info.Code)
			assert.Equal(t, tt.expectedDetails, info.Details)
		})
	}
}
