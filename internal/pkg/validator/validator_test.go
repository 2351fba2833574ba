package validator

import (
	"testing"

	"bookify/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

type person struct {
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type booking struct {
	Customer person  `json:"customer"`
	Guest    *person `json:"guest,omitempty" validate:"omitempty"`
}

func TestValidateUsesJSONNames(t *testing.T) {
	errs := Validate(person{Email: "nope"})
	assert.Equal(t, map[string]string{"first_name": "required", "email": "email"}, errs)
}

func TestValidateNestedPath(t *testing.T) {
	errs := Validate(booking{Customer: person{FirstName: "Ann", Email: "x"}})
	assert.Equal(t, "email", errs["customer.email"])
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(person{FirstName: "Ann", Email: "ann@example.com"}))
	assert.ErrorIs(t, Check(person{}), apperr.ErrValidation)
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("jan.kowalski@bookify.pl"))
	assert.False(t, Email("jan.kowalski"))
	assert.False(t, Email(""))
}
