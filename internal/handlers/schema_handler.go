package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// Describe handles GET /api/v1/schema
func (h *SchemaHandler) Describe(c *gin.Context) {
	tables, err := h.schemaService.Describe(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to describe schema")
		return
	}
	responses.Success(c, http.StatusOK, tables, "")
}

// VisualizeSchema handles GET /api/v1/schema/visualize
func (h *SchemaHandler) VisualizeSchema(c *gin.Context) {
	mermaidDiagram, err := h.schemaService.Visualize(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to visualize schema")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"mermaid": mermaidDiagram,
	}, "Schema visualization generated successfully")
}
