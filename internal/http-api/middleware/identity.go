package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/service"
)

const identityKey = "identity"

// Identity is the user a request acts as. A nil *Identity means anonymous.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// SessionResolver maps a request to the user id of its session.
type SessionResolver interface {
	Resolve(r *http.Request) (userID string, ok bool, err error)
}

// Identify resolves the session cookie into an Identity once per request.
// Any failure along the way leaves the request anonymous.
func Identify(sessions SessionResolver, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok, err := sessions.Resolve(c.Request)
		if err != nil {
			Logger(c).Warn("session lookup failed", "error", err)
		}
		if !ok {
			c.Next()
			return
		}

		user, err := authService.Identify(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, service.ErrNotFound) {
				Logger(c).Warn("identity lookup failed", "user_id", userID, "error", err)
			}
			c.Next()
			return
		}

		c.Set(identityKey, &Identity{
			UserID:   user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		})
		c.Next()
	}
}

// CurrentIdentity returns the resolved identity or nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects signed-in users without the admin flag with 403.
// Anonymous visitors are sent to log in first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := CurrentIdentity(c)
		if id == nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		if !id.IsAdmin {
			_ = c.Error(apperror.Forbidden("Only administrators can do that."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ViewData adds the current identity to template data for the layout.
func ViewData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["user"] = CurrentIdentity(c)
	return data
}
