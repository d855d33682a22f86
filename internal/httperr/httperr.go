package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond writes err as an HTTP error body. Errors outside the domain
// taxonomy are attached to the gin context for the request logger and
// reported as 500 without leaking their text.
func Respond(c *gin.Context, err error) {
	e, ok := As(err)
	if !ok {
		_ = c.Error(err)
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	body := HTTPError{
		Code:    e.Code,
		Message: e.Message,
	}
	if len(e.Details) > 0 || e.Field != "" {
		body.Details = make(map[string]any, len(e.Details)+1)
		for k, v := range e.Details {
			body.Details[k] = v
		}
		if e.Field != "" {
			body.Details["field"] = e.Field
		}
	}

	c.JSON(e.HTTPStatus(), body)
}
