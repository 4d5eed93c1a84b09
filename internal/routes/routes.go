package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"wardbook/internal/handlers"
	"wardbook/internal/middlewares"
	"wardbook/internal/services"
)

// Handlers bundles every HTTP handler the API mounts.
type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Todo     *handlers.TodoHandler
	Ward     *handlers.WardHandler
	Explorer *handlers.ExplorerHandler
	Graph    *handlers.GraphHandler
	Schema   *handlers.SchemaHandler
}

// RegisterRoutes mounts /health and /api/v1. Everything except the auth
// endpoints requires a logged-in session of an existing user.
func RegisterRoutes(router *gin.Engine, h Handlers, sessionStore sessions.Store, userService *services.UserService) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1")

	NewAuthRoutes(h.Auth).RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(
		middlewares.RequireLogin(sessionStore),
		middlewares.LoadCurrentUser(userService),
	)

	NewUserRoutes(h.User).RegisterRoutes(protected)
	NewTodoRoutes(h.Todo).RegisterRoutes(protected)
	NewWardRoutes(h.Ward).RegisterRoutes(protected)
	NewExplorerRoutes(h.Explorer).RegisterRoutes(protected)
	NewGraphRoutes(h.Graph).RegisterRoutes(protected)
	NewSchemaRoutes(h.Schema).RegisterRoutes(protected)
}
