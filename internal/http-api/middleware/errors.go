package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
)

// ErrorPages renders the last error pushed with c.Error as the error page.
// Details are only shown in development.
func ErrorPages(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.StatusOf(err)
		if status >= http.StatusInternalServerError {
			Logger(c).Error("request failed", "error", err)
		}
		if c.Writer.Written() {
			return
		}

		data := gin.H{
			"title":   http.StatusText(status),
			"status":  status,
			"message": apperror.MessageOf(err),
		}
		if development {
			data["detail"] = err.Error()
		}
		c.HTML(status, "error", ViewData(c, data))
	}
}

// Recovery turns a panic into a 500 error for ErrorPages to render.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(apperror.Internal(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}

// NotFound is the fallback for unmatched routes.
func NotFound(c *gin.Context) {
	_ = c.Error(apperror.NotFound("Not Found"))
}
