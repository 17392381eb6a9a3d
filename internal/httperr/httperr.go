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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// statusByCode maps business codes to HTTP statuses. Unknown codes are 400.
var statusByCode = map[string]int{
	"appointment_not_found":         http.StatusNotFound,
	"client_not_found":              http.StatusNotFound,
	"barber_not_found":              http.StatusNotFound,
	"forbidden":                     http.StatusForbidden,
	"slot_conflict":                 http.StatusConflict,
	"invalid_transition":            http.StatusUnprocessableEntity,
	"appointment_not_reschedulable": http.StatusUnprocessableEntity,
}

// StatusFor returns the HTTP status a business code is reported with.
func StatusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// FromError writes err as a JSON error response. Anything that is not a
// BusinessError is reported as a 500 without leaking its text.
func FromError(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Internal error.")
		return
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}
	Write(c, StatusFor(be.Code), be.Code, message)
}
