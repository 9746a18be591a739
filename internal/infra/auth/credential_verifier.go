package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"optika/config"
	"optika/internal/domain/service"
	"optika/internal/errors"
)

// credentialVerifier checks the shared operator secret. A bcrypt hash is
// preferred; a plaintext secret is accepted for local setups and compared in
// constant time.
type credentialVerifier struct {
	passwordHash string
	password     string
}

// NewCredentialVerifier is the constructor for credentialVerifier.
func NewCredentialVerifier(cfg *config.Config) (service.CredentialVerifier, error) {
	if cfg.Admin == nil || (cfg.Admin.PasswordHash == "" && cfg.Admin.Password == "") {
		return nil, errors.New("operator credential must be configured")
	}

	return &credentialVerifier{
		passwordHash: cfg.Admin.PasswordHash,
		password:     cfg.Admin.Password,
	}, nil
}

// Verify compares a candidate password against the configured secret.
func (v *credentialVerifier) Verify(password string) bool {
	if v.passwordHash != "" {
		// bcrypt comparison is constant time by construction.
		return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(v.password), []byte(password)) == 1
}
