// Package handler contains the HTTP handlers for the application.
package handler

import (
	"optika/internal/domain/entity"
	"optika/internal/usecase"

	"github.com/google/uuid"
)

// checkoutItemRequest is one requested order line.
type checkoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// checkoutRequest is the shared request body for checkout and invoice
// creation.
type checkoutRequest struct {
	Email     string                `json:"email" validate:"required,email"`
	Name      string                `json:"name" validate:"required"`
	Phone     string                `json:"phone" validate:"required"`
	Address   string                `json:"address" validate:"required"`
	Latitude  *float64              `json:"latitude"`
	Longitude *float64              `json:"longitude"`
	Lens      *entity.LensInfo      `json:"lens"`
	Status    string                `json:"status"`
	Items     []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

// toInput maps the request onto the usecase input, attaching the visitor
// token so the cart can be cleared after materialization.
func (r *checkoutRequest) toInput(visitorID string) usecase.CheckoutInput {
	items := make([]usecase.CheckoutItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return usecase.CheckoutInput{
		VisitorID: visitorID,
		Email:     r.Email,
		Name:      r.Name,
		Phone:     r.Phone,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Lens:      r.Lens,
		Status:    entity.OrderStatus(r.Status),
		Items:     items,
	}
}
