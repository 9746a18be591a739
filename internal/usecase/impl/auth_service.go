package impl

import (
	"context"
	"log/slog"

	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/service"
	"optika/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	verifier     service.CredentialVerifier
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier     service.CredentialVerifier
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// VerifyOperator checks the shared operator secret and issues a session
// token. Failed attempts are logged without the candidate password.
func (s *authService) VerifyOperator(ctx context.Context, password string) (string, error) {
	if !s.verifier.Verify(password) {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Operator verification rejected")

		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateOperatorToken()
	if err != nil {
		return "", domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return token, nil
}
