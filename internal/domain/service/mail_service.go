package service

import (
	"context"

	"optika/internal/domain/entity"
)

// Mailer sends transactional mail. All sends are best-effort: callers log
// failures and never let them fail the triggering operation.
type Mailer interface {
	// SendOrderConfirmation mails the order summary to the customer and a
	// copy to the configured admin address.
	SendOrderConfirmation(ctx context.Context, order *entity.Order) error
}
