package auth

import (
	"testing"
	"time"

	"marketnav/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"type":  "access",
		"roles": []string{"user", "seller"},
	})

	claims, err := tokenService.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user", "seller"}, claims.Roles)
}

func TestJWTService_ValidateAccessToken_Rejections(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(time.Minute).Unix(),
		}
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "malformed",
			token: func(*testing.T) string {
				return "clearly-not-a-jwt-token-format"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), valid())
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := valid()
				claims["exp"] = time.Now().Add(-time.Minute).Unix()

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				claims := valid()
				delete(claims, "exp")

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name: "unexpected algorithm",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), valid())
			},
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				claims := valid()
				claims["type"] = "refresh"

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				claims := valid()
				delete(claims, "sub")

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name: "subject not a uuid",
			token: func(t *testing.T) string {
				claims := valid()
				claims["sub"] = "vendor-42"

				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokenService.ValidateAccessToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(""))
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Nil(t, tokenService)
}
