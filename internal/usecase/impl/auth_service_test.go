package impl

import (
	"context"
	"log/slog"
	"testing"

	domainerrors "optika/internal/domain/errors"
	"optika/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceFixture(t *testing.T) (*mocks.CredentialVerifier, *mocks.TokenService, *authService) {
	t.Helper()

	verifier := mocks.NewCredentialVerifier(t)
	tokenService := mocks.NewTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		Verifier:     verifier,
		TokenService: tokenService,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return verifier, tokenService, svc.(*authService)
}

func TestAuthService_VerifyOperator_Success(t *testing.T) {
	verifier, tokenService, svc := newAuthServiceFixture(t)

	verifier.EXPECT().Verify("op-secret").Return(true)
	tokenService.EXPECT().GenerateOperatorToken().Return("signed-jwt", nil)

	token, err := svc.VerifyOperator(context.Background(), "op-secret")

	require.NoError(t, err)
	assert.Equal(t, "signed-jwt", token)
}

func TestAuthService_VerifyOperator_WrongPassword(t *testing.T) {
	verifier, _, svc := newAuthServiceFixture(t)

	verifier.EXPECT().Verify("guess").Return(false)

	token, err := svc.VerifyOperator(context.Background(), "guess")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_VerifyOperator_TokenGenerationFails(t *testing.T) {
	verifier, tokenService, svc := newAuthServiceFixture(t)

	verifier.EXPECT().Verify("op-secret").Return(true)
	tokenService.EXPECT().GenerateOperatorToken().Return("", assert.AnError)

	_, err := svc.VerifyOperator(context.Background(), "op-secret")

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInternalError.Message())
}
