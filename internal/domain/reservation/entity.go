package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Person identifies the customer who books a room or a guest attending.
type Person struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

// Invoice holds billing details when the customer asks for an invoice.
type Invoice struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	NIP         string `json:"nip" validate:"required,numeric,len=10"`
	Street      string `json:"street" validate:"required,max=200"`
	PostalCode  string `json:"postal_code" validate:"required,max=20"`
	City        string `json:"city" validate:"required,max=100"`
	Country     string `json:"country" validate:"required,max=100"`
}

type Reservation struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	Start      time.Time
	End        time.Time
	Customer   Person
	Guest      *Person
	Invoice    *Invoice
	OfferID    *uuid.UUID
	EmployeeID *uuid.UUID
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Reservation) Interval() Interval {
	return Interval{Start: r.Start, End: r.End}
}
