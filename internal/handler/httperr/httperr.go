package httperr

import (
	"github.com/gin-gonic/gin"
)

// errorBody is the wire shape of every error response. Code carries the
// numeric HTTP status, mirrored from the response itself so clients can parse
// it without touching transport headers.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Response struct {
	Status int       `json:"-"`
	Error  errorBody `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = status
	resp.Error.Message = msg
	resp.Error.Details = details

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
