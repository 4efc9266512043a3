package middleware

import (
	"log/slog"
	"net/http"

	"sneakerdrop/internal/handler/httperr"
	"sneakerdrop/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 12

// ErrorHandler logs every error recorded on the context and, when a handler
// bailed out without writing a body, falls back to the newest public error's
// response shape.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			if status := responseStatus(ginErr); status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"path", c.Request.URL.Path,
					"error", ginErr.Err.Error(),
					"stack", errs.StackLines(ginErr.Err, maxStackLines))
			}
		}

		if c.Writer.Written() {
			return
		}
		// Newest error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{
			Status: http.StatusInternalServerError,
			Error:  "Internal server error",
		})
	}
}

func responseStatus(ginErr *gin.Error) int {
	if resp, ok := ginErr.Meta.(httperr.Response); ok {
		return resp.Status
	}
	return http.StatusInternalServerError
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
