package employee

import "bookify/internal/pkg/apperr"

var (
	ErrEmployeeNotFound   = apperr.NotFound("EMPLOYEE_NOT_FOUND", "employee not found")
	ErrEmailExists        = apperr.Conflict("EMAIL_EXISTS", "email already exists")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
)
