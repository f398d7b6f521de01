// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bezgo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MarketHandler *handler.MarketHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	marketHandler *handler.MarketHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		marketHandler: params.MarketHandler,
	}
}

// RegisterRoutes sets up the catalog and chat routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/market-data", r.marketHandler.GetMarketData)
		apiGroup.POST("/chat", r.marketHandler.Chat)
	}
}
