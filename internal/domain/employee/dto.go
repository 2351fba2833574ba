package employee

import (
	"bookify/internal/pkg/hateoas"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      Role   `json:"role" validate:"omitempty,oneof=admin employee"`
}

// UpdateEmployeeRequest replaces the profile; an empty password keeps the
// current one.
type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	Role      Role   `json:"role" validate:"required,oneof=admin employee"`
	Active    *bool  `json:"active"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmployeeResponse struct {
	ID        uuid.UUID     `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Role      Role          `json:"role"`
	Active    bool          `json:"active"`
	Links     hateoas.Links `json:"_links"`
}

type CheckEmailResponse struct {
	Email     string        `json:"email"`
	Available bool          `json:"available"`
	Links     hateoas.Links `json:"_links"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
	Employee  EmployeeResponse `json:"employee"`
	Links     hateoas.Links    `json:"_links"`
}

func toResponse(e *Employee, links hateoas.Links) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Role:      e.Role,
		Active:    e.Active,
		Links:     links,
	}
}
