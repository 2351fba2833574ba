package response

import (
	"errors"
	"net/http"

	"bookify/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const halContentType = "application/hal+json"

// HAL writes a hypermedia document.
func HAL(c *gin.Context, statusCode int, body any) {
	c.Header("Content-Type", halContentType)
	c.JSON(statusCode, body)
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the error envelope for err. Unclassified errors are
// recorded on the context for the error logger and reported as 500.
func FromError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		Error(c, status, "INTERNAL_ERROR", "Internal server error")
		return
	}

	code := apperr.Code(err)
	if code == "" {
		code = defaultCode(status)
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		Error(c, status, code, err.Error())
		return
	}
	if appErr.Details != nil {
		ErrorWithDetails(c, status, code, appErr.Message, appErr.Details)
		return
	}
	Error(c, status, code, appErr.Message)
}

func defaultCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	}
	return "INTERNAL_ERROR"
}

// UUIDParam parses a path parameter, writing a 400 when it is malformed.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
