package router

import (
	"returnex/internal/adapter/api/handler"
	"returnex/internal/adapter/api/middleware"
	"returnex/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Order  *handler.OrderHandler
	Return *handler.ReturnHandler
	Admin  *handler.AdminHandler
	Auth   *handler.AuthHandler
	Health *handler.HealthHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	SetupOrderRouter(e, h.Order, limiter)
	SetupReturnRouter(e, h.Return, limiter)
	SetupAuthRouter(e, h.Auth)
	SetupAdminRouter(e, h.Admin, authMiddleware)
	SetupHealthRouter(e, h.Health)
}
