package service

import (
	"github.com/google/uuid"
)

// Claims holds the identity carried by a validated access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
}

// TokenService validates bearer tokens issued by the account service.
type TokenService interface {
	// ValidateAccessToken verifies the signature and expiry of an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
