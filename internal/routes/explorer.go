package routes

import (
	"github.com/gin-gonic/gin"

	"wardbook/internal/handlers"
)

type ExplorerRoutes struct {
	handler *handlers.ExplorerHandler
}

func NewExplorerRoutes(handler *handlers.ExplorerHandler) *ExplorerRoutes {
	return &ExplorerRoutes{handler: handler}
}

func (r *ExplorerRoutes) RegisterRoutes(router *gin.RouterGroup) {
	explorer := router.Group("/explorer")
	{
		explorer.GET("/tables", r.handler.Tables)
		explorer.GET("/browse", r.handler.Browse)
		explorer.POST("/browse", r.handler.Browse)
	}
}
