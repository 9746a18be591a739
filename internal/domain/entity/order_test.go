package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCoerce(t *testing.T) {
	assert.Equal(t, OrderStatusPaid, OrderStatus("PAID").Coerce())
	assert.Equal(t, OrderStatusPending, OrderStatus("SHIPPING").Coerce())
	assert.Equal(t, OrderStatusPending, OrderStatus("").Coerce())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to paid", OrderStatusPending, OrderStatusPaid, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending straight to delivered", OrderStatusPending, OrderStatusDelivered, false},
		{"paid to shipped", OrderStatusPaid, OrderStatusShipped, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusPending, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusShipped, false},
		{"failed is terminal", OrderStatusFailed, OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
	assert.True(t, PaymentStatusRefunded.IsTerminal())
	assert.False(t, PaymentStatusNew.IsTerminal())
	assert.False(t, PaymentStatus("UNKNOWN").IsValid())
}
