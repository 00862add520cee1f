// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estatex/internal/delivery/http/middleware"
	"estatex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AlertHandler        *handler.AlertHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	SearchHandler       *handler.SearchHandler
	WebhookHandler      *handler.WebhookHandler
	CronHandler         *handler.CronHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Alert routes require an authenticated user
	alertGroup := api.Group("/alerts")
	alertGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		alertGroup.POST("", r.params.AlertHandler.CreateAlert)
		alertGroup.GET("", r.params.AlertHandler.ListAlerts)
		alertGroup.GET("/analytics", r.params.AnalyticsHandler.GetReport)
		alertGroup.GET("/notifications", r.params.NotificationHandler.GetHistory)
		alertGroup.PATCH("/notifications/:id/read", r.params.NotificationHandler.MarkRead)
		alertGroup.GET("/:id", r.params.AlertHandler.GetAlert)
		alertGroup.GET("/:id/notifications", r.params.NotificationHandler.GetAlertHistory)
		alertGroup.PUT("/:id", r.params.AlertHandler.UpdateAlert)
		alertGroup.PATCH("/:id/toggle", r.params.AlertHandler.ToggleAlert)
		alertGroup.POST("/:id/test-notification", r.params.AlertHandler.TestNotification)
		alertGroup.DELETE("/:id", r.params.AlertHandler.DeleteAlert)
	}

	// External cron trigger, guarded by the shared secret instead of JWT
	api.POST("/alerts/check-matches", r.params.CronHandler.CheckMatches)

	// Listing-service webhook
	api.POST("/webhooks/property-match", r.params.WebhookHandler.PropertyMatch)

	// Channel-partner search
	searchGroup := api.Group("/search")
	searchGroup.Use(r.params.AuthMiddleware.Authenticate)
	searchGroup.Use(r.params.AuthMiddleware.RequireRole("channel_partner"))
	{
		searchGroup.GET("", r.params.SearchHandler.Search)
	}
}
