package usecase

import (
	"context"
)

// AuthUsecase defines the interface for operator authentication use cases
type AuthUsecase interface {
	// VerifyOperator checks the shared operator secret in constant time and
	// issues a short-lived session token on success.
	VerifyOperator(ctx context.Context, password string) (string, error)
}
