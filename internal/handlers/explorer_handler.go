package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type ExplorerHandler struct {
	browseService *services.BrowseService
}

func NewExplorerHandler(browseService *services.BrowseService) *ExplorerHandler {
	return &ExplorerHandler{browseService: browseService}
}

// Tables handles GET /api/v1/explorer/tables
func (h *ExplorerHandler) Tables(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.browseService.Tables(), "")
}

// Browse handles GET and POST /api/v1/explorer/browse. GET reads the
// query string, POST the form or JSON body.
func (h *ExplorerHandler) Browse(c *gin.Context) {
	var req services.BrowseRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid explorer request")
		return
	}

	result, err := h.browseService.Browse(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Could not load table")
		return
	}
	responses.Success(c, http.StatusOK, result, "")
}
