package mail

import (
	"testing"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderOrderText(t *testing.T) {
	t.Parallel()

	order := &entity.Order{
		ID:              uuid.New(),
		Total:           decimal.NewFromInt(250000),
		ShippingAddress: "СБД, 1-р хороо, Улаанбаатар",
		Items: []*entity.OrderItem{
			{
				ProductID: uuid.New(),
				Quantity:  2,
				UnitPrice: decimal.NewFromInt(125000),
				Product:   &entity.Product{Name: "Ray-Ban Wayfarer"},
			},
		},
	}

	text := renderOrderText(order)

	assert.Contains(t, text, "Ray-Ban Wayfarer x2")
	assert.Contains(t, text, "125000.00₮")
	assert.Contains(t, text, "Нийт дүн: 250000.00₮")
	assert.Contains(t, text, "СБД, 1-р хороо")
}

func TestShortOrderRef(t *testing.T) {
	t.Parallel()

	order := &entity.Order{ID: uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")}

	assert.Equal(t, "01234567", shortOrderRef(order))
}
