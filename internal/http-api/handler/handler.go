package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary/internal/http-api/middleware"
)

const requestTimeout = 5 * time.Second

func withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// canonicalID returns id in the lowercase hyphenated form records are stored
// under. ok is false when id cannot name a stored record.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

// sameID reports whether a and b name the same record, ignoring uuid spelling.
func sameID(a, b string) bool {
	ca, okA := canonicalID(a)
	cb, okB := canonicalID(b)
	if okA && okB {
		return ca == cb
	}
	return a == b
}

func render(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, middleware.ViewData(c, data))
}
