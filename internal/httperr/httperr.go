package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Mapping describes how one business code is rendered.
type Mapping struct {
	Status  int
	Message string
}

// FromBusiness writes err using the mapping registered for its code. Errors
// that are not business errors, or whose code is unmapped, become a 500 with
// the given fallback code and message.
func FromBusiness(
	c *gin.Context,
	err error,
	mappings map[string]Mapping,
	fallbackCode string,
	fallbackMessage string,
) {
	code := CodeOf(err)
	if m, ok := mappings[code]; ok && code != "" {
		Write(c, m.Status, code, m.Message)
		return
	}
	Internal(c, fallbackCode, fallbackMessage)
}
