package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates short-lived operator session tokens.
type TokenService interface {
	// GenerateOperatorToken issues a session token carrying the operator role.
	GenerateOperatorToken() (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}

// CredentialVerifier checks the shared operator secret. Implementations must
// compare in constant time.
type CredentialVerifier interface {
	Verify(password string) bool
}
