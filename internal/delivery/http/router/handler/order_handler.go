package handler

import (
	"net/http"

	"optika/internal/delivery/http/middleware"
	"optika/internal/delivery/http/response"
	"optika/internal/domain/entity"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Checkout handles a direct (non-invoice) storefront checkout.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Checkout(c.Request().Context(), req.toInput(middleware.VisitorID(c)))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// Get handles a single order lookup with its item graph.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// List handles the admin order listing, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateStatus handles admin order status changes.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// Delete handles admin order deletion; items cascade.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}
