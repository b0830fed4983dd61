package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// registerRoutes registers all HTTP routes using Echo
func registerRoutes(e *echo.Echo, handler *HandlerAdapter) {
	// Health check
	e.GET("/health", handler.HealthCheck)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/api/v1")

	v1.GET("/networks", handler.GetNetworks)

	lists := v1.Group("/tokenlists")
	lists.GET("/:network", handler.GetTokenList)
	lists.GET("/:network/tokens/:address", handler.GetToken)
	lists.GET("/:network/runs", handler.GetRuns)
}
