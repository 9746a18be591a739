package handler

import (
	"context"
	"log/slog"
	"net/http"

	"optika/internal/delivery/http/middleware"
	"optika/internal/delivery/http/response"
	"optika/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

type checkPaymentRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required"`
}

// CreateInvoice handles invoice creation for a pending checkout and starts
// the server-side settlement watch. The watch runs detached from the request
// so a closed connection does not abandon a paid invoice.
func (h *PaymentHandler) CreateInvoice(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := req.toInput(middleware.VisitorID(c))

	invoice, err := h.uc.CreateInvoice(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	watchCtx := context.WithoutCancel(c.Request().Context())
	go func() {
		if _, err := h.uc.WatchInvoice(watchCtx, usecase.InvoiceWatch{
			InvoiceID: invoice.InvoiceID,
			Checkout:  input,
		}); err != nil {
			h.logger.LogAttrs(watchCtx, slog.LevelWarn, "Invoice watch ended with error",
				slog.String("invoiceId", invoice.InvoiceID),
				slog.String("error", err.Error()),
			)
		}
	}()

	return response.Success(c, http.StatusCreated, invoice, "Invoice created")
}

// CheckPayment handles an explicit invoice status check.
func (h *PaymentHandler) CheckPayment(c echo.Context) error {
	var req checkPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.CheckPayment(c.Request().Context(), req.InvoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// Callback handles the provider webhook. The provider retries on non-2xx, so
// the notification is always acknowledged; handler failures are logged and
// reconciled by the invoice watch instead.
func (h *PaymentHandler) Callback(c echo.Context) error {
	var payload usecase.CallbackPayload
	if err := c.Bind(&payload); err != nil {
		h.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "Unreadable payment callback",
			slog.String("error", err.Error()),
		)

		return response.Success(c, http.StatusOK, nil, "OK")
	}

	if err := h.uc.HandleCallback(c.Request().Context(), payload); err != nil {
		h.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "Payment callback handling failed",
			slog.String("invoiceId", payload.InvoiceID),
			slog.String("error", err.Error()),
		)
	}

	return response.Success(c, http.StatusOK, nil, "OK")
}
