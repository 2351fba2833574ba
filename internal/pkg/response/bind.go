package response

import (
	"net/http"

	"bookify/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// BindJSON decodes and validates the request body into dst. It writes a 400
// and returns false when either step fails.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return false
	}
	if err := validator.Check(dst); err != nil {
		FromError(c, err)
		return false
	}
	return true
}

// BindQuery is BindJSON for query string parameters.
func BindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return false
	}
	if err := validator.Check(dst); err != nil {
		FromError(c, err)
		return false
	}
	return true
}
