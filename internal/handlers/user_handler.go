package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	names, err := h.userService.ListUsernames(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to list users")
		return
	}
	responses.Success(c, http.StatusOK, gin.H{"users": names}, "")
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	responses.Success(c, http.StatusOK, user, "")
}
