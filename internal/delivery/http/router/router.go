// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	InvoiceHandler *handler.InvoiceHandler
	PaymentHandler *handler.PaymentHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	invoiceHandler *handler.InvoiceHandler
	paymentHandler *handler.PaymentHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		invoiceHandler: params.InvoiceHandler,
		paymentHandler: params.PaymentHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes; register, login, and the password reset flow are public
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// User directory and self-service profile routes
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/role/:role", r.userHandler.ListUsersByRole)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.DELETE("/profile", r.userHandler.DeleteAccount)
	}

	// Invoice routes
	invoiceGroup := api.Group("/invoices")
	invoiceGroup.Use(r.authMiddleware.Authenticate)
	{
		invoiceGroup.GET("", r.invoiceHandler.ListInvoices)
		invoiceGroup.POST("", r.invoiceHandler.CreateInvoice)
		invoiceGroup.GET("/:id", r.invoiceHandler.GetInvoice)
		invoiceGroup.PUT("/:id", r.invoiceHandler.UpdateStatus)
		invoiceGroup.GET("/:id/payments", r.invoiceHandler.ListInvoicePayments)
		invoiceGroup.GET("/:id/qrcode", r.invoiceHandler.InvoiceQR)
	}

	// Payment routes
	paymentGroup := api.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.GET("", r.paymentHandler.ListUserPayments)
		paymentGroup.POST("", r.paymentHandler.CreatePayment)
	}

	// Admin routes require authentication and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListAllUsers)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUserStatus)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/invoices", r.adminHandler.ListAllInvoices)
		adminGroup.GET("/stats", r.adminHandler.SystemStats)
		adminGroup.GET("/activity", r.adminHandler.RecentActivity)
	}
}
