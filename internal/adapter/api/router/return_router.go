package router

import (
	"returnex/internal/adapter/api/handler"
	"returnex/internal/adapter/api/middleware"
	"returnex/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// SetupReturnRouter initializes the customer-facing request routes
func SetupReturnRouter(e *echo.Echo, returnHandler *handler.ReturnHandler, limiter *ratelimit.RateLimiter) {
	returns := e.Group("/api/returns")

	returns.POST("/submit", returnHandler.Submit, middleware.RateLimit(limiter, "submit_request"))
	returns.GET("/status/:requestId", returnHandler.GetStatus)
}
