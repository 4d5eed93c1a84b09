package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"wardbook/internal/responses"
	"wardbook/internal/services"
)

const (
	SessionName    = "wardbook_session"
	SessionUserKey = "user_id"

	// Context keys set for handlers.
	UserIDKey      = "userId"
	CurrentUserKey = "currentUser"
)

// NewSessionStore returns the cookie store holding login sessions.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 7)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// RequireLogin rejects requests without a logged-in session and stores the
// session's user id under UserIDKey.
func RequireLogin(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, SessionName)
		if err != nil {
			responses.Abort(c, http.StatusUnauthorized, nil, "Session invalid, please log in again")
			return
		}

		userID, ok := session.Values[SessionUserKey].(int64)
		if !ok {
			responses.Abort(c, http.StatusUnauthorized, nil, "Login required")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// LoadCurrentUser resolves the session user. Sessions of deleted accounts
// are rejected. Must run after RequireLogin.
func LoadCurrentUser(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64(UserIDKey)

		user, err := userService.FindByID(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			responses.Abort(c, http.StatusInternalServerError, nil, "Could not load user")
			return
		}
		if user == nil {
			responses.Abort(c, http.StatusUnauthorized, nil, "User not found")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
