package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketnav/internal/delivery/api/response"
	deliverycontext "marketnav/internal/delivery/context"
	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/service"
	"marketnav/internal/errors"
	mockSvc "marketnav/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation/active", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, slog.Default())
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"user", "seller", "unknown"},
	}, nil)

	c, rec := newAuthContext(t, "Bearer good-token")

	var gotUserID uuid.UUID
	err := m.Authenticate(func(c echo.Context) error {
		var ok bool
		gotUserID, ok = GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleSeller}, c.Get("roles"))

		ctxUserID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, userID, ctxUserID)

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setupMock     func(tokenSvc *mockSvc.MockTokenService)
		expectedCode  string
	}{
		{
			name:         "missing header",
			expectedCode: "MISSING_TOKEN",
		},
		{
			name:          "not a bearer token",
			authorization: "Basic dXNlcjpwYXNz",
			expectedCode:  "INVALID_TOKEN",
		},
		{
			name:          "empty bearer token",
			authorization: "Bearer ",
			expectedCode:  "INVALID_TOKEN",
		},
		{
			name:          "token rejected",
			authorization: "Bearer expired",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			expectedCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, slog.Default())
			c, rec := newAuthContext(t, tt.authorization)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), slog.Default())
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("has role", func(t *testing.T) {
		c, rec := newAuthContext(t, "")
		c.Set("roles", entity.Roles{entity.RoleSeller})

		require.NoError(t, m.RequireRole(entity.RoleSeller)(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		c, rec := newAuthContext(t, "")
		c.Set("roles", entity.Roles{entity.RoleUser})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
	})

	t.Run("not authenticated", func(t *testing.T) {
		c, rec := newAuthContext(t, "")

		require.NoError(t, m.RequireRole(entity.RoleUser)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
