package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Abort writes the error body and, when err is non-nil, records it on the gin
// context so the error middleware can log the cause.
func Abort(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}

	if err != nil {
		// Must be a *gin.Error: c.Error re-wraps any other error type as
		// private, which would strip the Type and Meta.
		_ = c.Error(&gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
