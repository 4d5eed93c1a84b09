package routes

import (
	"github.com/gin-gonic/gin"

	"wardbook/internal/handlers"
)

type GraphRoutes struct {
	handler *handlers.GraphHandler
}

func NewGraphRoutes(handler *handlers.GraphHandler) *GraphRoutes {
	return &GraphRoutes{handler: handler}
}

func (r *GraphRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/graph", r.handler.Export)
}
