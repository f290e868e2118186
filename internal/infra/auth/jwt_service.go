// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"marketnav/config"
	"marketnav/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrMissingSecret  = errors.New("jwt access secret must be provided")
	ErrInvalidToken   = errors.New("invalid access token")
	ErrMissingSubject = errors.New("access token has no subject")
)

// jwtService verifies HS256 access tokens minted by the account service.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateAccessToken parses the token, checks signature and expiry, and extracts the user identity.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// refresh tokens carry the same subject but must not authorize requests
	if tokenType, ok := claims["type"].(string); ok && tokenType != "access" {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", tokenType)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrMissingSubject
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a uuid")
	}

	return &service.Claims{
		UserID: userID,
		Roles:  rolesFromClaims(claims),
	}, nil
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
