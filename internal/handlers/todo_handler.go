package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// List handles GET /api/v1/todos
func (h *TodoHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	todos, err := h.todoService.List(c.Request.Context(), userID)
	if err != nil {
		responses.Error(c, err, "Failed to load todos")
		return
	}
	responses.Success(c, http.StatusOK, todos, "")
}

// Create handles POST /api/v1/todos
func (h *TodoHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req struct {
		Content string `form:"contents" json:"contents"`
		Due     string `form:"due_at" json:"due_at"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid todo")
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), userID, req.Content, req.Due)
	if err != nil {
		responses.Error(c, err, "Could not create todo")
		return
	}
	responses.Success(c, http.StatusCreated, todo, "Todo created")
}

// Complete handles POST /api/v1/todos/complete
func (h *TodoHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req struct {
		ID int64 `form:"id" json:"id" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Todo id is required")
		return
	}

	if err := h.todoService.Complete(c.Request.Context(), userID, req.ID); err != nil {
		responses.Error(c, err, "Could not complete todo")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Todo completed")
}
