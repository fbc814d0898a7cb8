// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockwatch/internal/delivery/http/middleware"
	"stockwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StockHandler        *handler.StockHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TokenHandler        *handler.TokenHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	stockHandler        *handler.StockHandler
	subscriptionHandler *handler.SubscriptionHandler
	tokenHandler        *handler.TokenHandler
	notificationHandler *handler.NotificationHandler
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		stockHandler:        params.StockHandler,
		subscriptionHandler: params.SubscriptionHandler,
		tokenHandler:        params.TokenHandler,
		notificationHandler: params.NotificationHandler,
		sessionMiddleware:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every other route runs under the cookie identity
	api := e.Group("", r.sessionMiddleware.Identify)
	{
		stockGroup := api.Group("/stock")
		stockGroup.GET("/:category", r.stockHandler.GetStock)
		stockGroup.POST("/:category/check", r.stockHandler.CheckStock)

		subscriptionGroup := api.Group("/subscriptions")
		subscriptionGroup.GET("/:category", r.subscriptionHandler.GetSelection)
		subscriptionGroup.PUT("/:category", r.subscriptionHandler.UpdateSelection)

		tokenGroup := api.Group("/tokens")
		tokenGroup.POST("", r.tokenHandler.RegisterToken)
		tokenGroup.GET("", r.tokenHandler.GetTokens)

		api.GET("/notifications", r.notificationHandler.GetFeed)
	}
}
