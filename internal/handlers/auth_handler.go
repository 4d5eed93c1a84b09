package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"wardbook/internal/middlewares"
	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type credentialsRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthHandler struct {
	authService  *services.AuthService
	sessionStore sessions.Store
	logger       *slog.Logger
}

func NewAuthHandler(authService *services.AuthService, sessionStore sessions.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a username and password")
		return
	}

	created, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		responses.Error(c, err, "Could not register user")
		return
	}
	if !created {
		responses.Fail(c, http.StatusConflict, nil, "Username is already taken")
		return
	}

	responses.Success(c, http.StatusCreated, nil, "User registered, please log in")
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a username and password")
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		responses.Error(c, err, "Failed to login")
		return
	}
	if user == nil {
		responses.Fail(c, http.StatusUnauthorized, nil, "Invalid username or password")
		return
	}

	// A failed decode of an old cookie still yields a fresh session.
	session, _ := h.sessionStore.Get(c.Request, middlewares.SessionName)
	session.Values[middlewares.SessionUserKey] = user.ID
	if err := session.Save(c.Request, c.Writer); err != nil {
		_ = c.Error(err)
		responses.Fail(c, http.StatusInternalServerError, nil, "Could not start session")
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)
	responses.Success(c, http.StatusOK, user, "Logged in")
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session, _ := h.sessionStore.Get(c.Request, middlewares.SessionName)
	delete(session.Values, middlewares.SessionUserKey)
	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		_ = c.Error(err)
		responses.Fail(c, http.StatusInternalServerError, nil, "Could not end session")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Logged out")
}
