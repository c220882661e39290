package router

import (
	"returnex/internal/adapter/api/handler"
	"returnex/internal/adapter/api/middleware"
	"returnex/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// SetupOrderRouter initializes the public order verification route
func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler, limiter *ratelimit.RateLimiter) {
	orders := e.Group("/api/orders")

	orders.POST("/verify", orderHandler.VerifyOrder, middleware.RateLimit(limiter, "verify_order"))
}
