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

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromBusiness maps a BusinessError to the HTTP status its family implies.
// Returns false when err is not a business error (the caller decides
// between 500 and 503 via IsTransient).
func FromBusiness(c *gin.Context, err error, message string) bool {
	be, ok := AsBusiness(err)
	if !ok {
		return false
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, message)
	case KindAuthorization:
		Forbidden(c, be.Code, message)
	default:
		if be.Code == "slot_unavailable" {
			Conflict(c, be.Code, message)
		} else {
			BadRequest(c, be.Code, message)
		}
	}
	return true
}
