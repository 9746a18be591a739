// Package auth provides concrete implementations for the operator
// authentication services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"optika/config"
	"optika/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for operator sessions.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	sessionTTL := 2 * time.Hour
	if cfg.Admin != nil && cfg.Admin.SessionTTL > 0 {
		sessionTTL = cfg.Admin.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Access,
		sessionTTL: sessionTTL,
	}, nil
}

// GenerateOperatorToken creates a short-lived session token carrying the
// operator role. There is a single shared operator identity.
func (s *jwtService) GenerateOperatorToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "operator",                   // Subject (the shared operator identity)
		"iat":  now.Unix(),                   // Issued At
		"exp":  now.Add(s.sessionTTL).Unix(), // Expiration Time
		"role": "operator",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
}
