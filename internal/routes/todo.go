package routes

import (
	"github.com/gin-gonic/gin"

	"wardbook/internal/handlers"
)

type TodoRoutes struct {
	handler *handlers.TodoHandler
}

func NewTodoRoutes(handler *handlers.TodoHandler) *TodoRoutes {
	return &TodoRoutes{handler: handler}
}

func (r *TodoRoutes) RegisterRoutes(router *gin.RouterGroup) {
	todos := router.Group("/todos")
	{
		todos.GET("", r.handler.List)
		todos.POST("", r.handler.Create)
		todos.POST("/complete", r.handler.Complete)
	}
}
