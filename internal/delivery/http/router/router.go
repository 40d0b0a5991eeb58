// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	VoucherHandler *handler.VoucherHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	voucherHandler *handler.VoucherHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		voucherHandler: params.VoucherHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/verify-email", r.accountHandler.VerifyEmail)
		authGroup.POST("/reset-password", r.accountHandler.ResetPassword)
	}

	// Voucher routes. Redemption happens at checkout; lookup and QR are
	// public for printed campaigns.
	voucherGroup := e.Group("/vouchers")
	{
		voucherGroup.GET("/:code", r.voucherHandler.Get)
		voucherGroup.GET("/:code/qr", r.voucherHandler.QRCode)
		voucherGroup.POST("/:code/redeem", r.voucherHandler.Redeem)
	}

	// Administrative voucher routes require authentication.
	adminGroup := e.Group("/admin/vouchers")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("", r.voucherHandler.Generate)
		adminGroup.POST("/:code/revert", r.voucherHandler.Revert)
	}
}
