package router

import (
	"returnex/internal/adapter/api/handler"
	"returnex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAdminRouter initializes the protected back-office routes
func SetupAdminRouter(e *echo.Echo, adminHandler *handler.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate)

	admin.GET("/requests", adminHandler.ListRequests)
	admin.GET("/requests/:id", adminHandler.GetRequest)
	admin.PUT("/requests/:id/status", adminHandler.UpdateStatus)
	admin.GET("/stats", adminHandler.Stats)
}
