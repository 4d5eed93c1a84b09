package routes

import (
	"github.com/gin-gonic/gin"

	"wardbook/internal/handlers"
)

type UserRoutes struct {
	handler *handlers.UserHandler
}

func NewUserRoutes(handler *handlers.UserHandler) *UserRoutes {
	return &UserRoutes{handler: handler}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", r.handler.List)
		users.GET("/me", r.handler.Me)
	}
}
