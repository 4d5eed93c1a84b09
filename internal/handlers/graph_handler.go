package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type GraphHandler struct {
	graphService *services.GraphService
}

func NewGraphHandler(graphService *services.GraphService) *GraphHandler {
	return &GraphHandler{graphService: graphService}
}

// Export handles GET /api/v1/graph. The body is the bare {"classes": [...]}
// document the edge bundling view loads, not the response envelope.
func (h *GraphHandler) Export(c *gin.Context) {
	nodes, err := h.graphService.Export(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to export graph")
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": nodes})
}
