// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"optika/internal/delivery/http/middleware"
	"optika/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	AuthHandler     *handler.AuthHandler

	AuthMiddleware    *middleware.AuthMiddleware
	VisitorMiddleware *middleware.VisitorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	authHandler     *handler.AuthHandler

	authMiddleware    *middleware.AuthMiddleware
	visitorMiddleware *middleware.VisitorMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:    params.ProductHandler,
		categoryHandler:   params.CategoryHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		paymentHandler:    params.PaymentHandler,
		authHandler:       params.AuthHandler,
		authMiddleware:    params.AuthMiddleware,
		visitorMiddleware: params.VisitorMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	e.GET("/products", r.productHandler.List)
	e.GET("/products/:id", r.productHandler.Get)
	e.GET("/categories", r.categoryHandler.List)

	// Cart routes keyed by the visitor cookie
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.visitorMiddleware.Handle)
	{
		cartGroup.GET("", r.cartHandler.List)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.PUT("/:productId", r.cartHandler.Update)
		cartGroup.DELETE("/:productId", r.cartHandler.Remove)
	}

	// Checkout and order lookup
	e.POST("/orders", r.orderHandler.Checkout, r.visitorMiddleware.Handle)
	e.GET("/orders/:id", r.orderHandler.Get)

	// Payment routes; the provider-facing aliases mirror its documentation.
	e.POST("/payments", r.paymentHandler.CreateInvoice, r.visitorMiddleware.Handle)
	e.POST("/qpay/create-invoice", r.paymentHandler.CreateInvoice, r.visitorMiddleware.Handle)
	e.POST("/qpay/check-payment", r.paymentHandler.CheckPayment)
	e.POST("/qpay/callback", r.paymentHandler.Callback)

	// Operator auth
	e.POST("/auth/verify", r.authHandler.Verify)

	// Admin routes that require the operator session token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/products", r.productHandler.Create)
		adminGroup.PUT("/products/:id", r.productHandler.Update)
		adminGroup.DELETE("/products/:id", r.productHandler.Delete)
		adminGroup.POST("/products/:id/image", r.productHandler.UploadImage)

		adminGroup.POST("/categories", r.categoryHandler.Create)
		adminGroup.PUT("/categories/:id", r.categoryHandler.Update)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.Delete)

		adminGroup.GET("/orders", r.orderHandler.List)
		adminGroup.GET("/orders/:id", r.orderHandler.Get)
		adminGroup.PUT("/orders/:id", r.orderHandler.UpdateStatus)
		adminGroup.DELETE("/orders/:id", r.orderHandler.Delete)
	}
}
