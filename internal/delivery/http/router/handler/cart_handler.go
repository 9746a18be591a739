package handler

import (
	"net/http"

	"optika/internal/delivery/http/middleware"
	"optika/internal/delivery/http/response"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// List handles the visitor cart listing.
func (h *CartHandler) List(c echo.Context) error {
	view, err := h.uc.ListItems(c.Request().Context(), middleware.VisitorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Add handles adding a product line to the visitor cart.
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddItem(c.Request().Context(), middleware.VisitorID(c), req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item added")
}

// Update handles cart line quantity changes. A zero or negative quantity
// removes the line.
func (h *CartHandler) Update(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	item, err := h.uc.UpdateQuantity(c.Request().Context(), middleware.VisitorID(c), productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}
	if item == nil {
		return response.Success(c, http.StatusOK, nil, "Item removed")
	}

	return response.Success(c, http.StatusOK, item, "Item updated")
}

// Remove handles deleting a cart line.
func (h *CartHandler) Remove(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), middleware.VisitorID(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed")
}
