package router

import (
	"returnex/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes the admin authentication routes
func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler) {
	auth := e.Group("/api/auth")

	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify)
}
