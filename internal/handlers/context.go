package handlers

import (
	"github.com/gin-gonic/gin"

	"wardbook/internal/middlewares"
	"wardbook/internal/models"
)

func currentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(middlewares.UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middlewares.CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
