package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPaymentRoutes configures payment, subscription, and billing routes.
func SetupPaymentRoutes(api *gin.RouterGroup, cfg *PaymentRouteConfig) {
	payments := api.Group("/payments")
	payments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		payments.POST("", cfg.PaymentHandler.CreateIntent)
		payments.GET("", cfg.PaymentHandler.History)
		payments.POST("/purchase-credits", cfg.PaymentHandler.PurchaseCredits)

		payments.POST("/subscription", cfg.PaymentHandler.CreateSubscription)
		payments.DELETE("/subscription", cfg.PaymentHandler.CancelSubscription)
		payments.POST("/coupon", cfg.PaymentHandler.ApplyCoupon)

		payments.GET("/invoices", cfg.PaymentHandler.ListInvoices)
		payments.GET("/methods", cfg.PaymentHandler.ListPaymentMethods)
		payments.POST("/methods", cfg.PaymentHandler.AttachPaymentMethod)

		payments.GET("/:id", cfg.PaymentHandler.Get)
		payments.POST("/:id/confirm", cfg.PaymentHandler.ConfirmIntent)
		payments.POST("/:id/cancel", cfg.PaymentHandler.CancelIntent)
		payments.POST("/:id/refund", cfg.PaymentHandler.Refund)
	}
}
