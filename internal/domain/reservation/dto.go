package reservation

import (
	"strings"
	"time"

	"bookify/internal/pkg/hateoas"

	"github.com/google/uuid"
)

type ReservationRequest struct {
	Start      time.Time  `json:"start" validate:"required"`
	End        time.Time  `json:"end" validate:"required,gtfield=Start"`
	Customer   Person     `json:"customer"`
	Guest      *Person    `json:"guest"`
	Invoice    *Invoice   `json:"invoice"`
	OfferID    *uuid.UUID `json:"offer_id"`
	EmployeeID *uuid.UUID `json:"employee_id"`
	Notes      string     `json:"notes" validate:"max=2000"`
}

func (req ReservationRequest) apply(r *Reservation, period Interval, now time.Time) {
	r.Start = period.Start
	r.End = period.End
	r.Customer = normalizePerson(req.Customer)
	r.Guest = nil
	if req.Guest != nil {
		g := normalizePerson(*req.Guest)
		r.Guest = &g
	}
	r.Invoice = req.Invoice
	r.OfferID = req.OfferID
	r.EmployeeID = req.EmployeeID
	r.Notes = strings.TrimSpace(req.Notes)
	r.UpdatedAt = now
}

func normalizePerson(p Person) Person {
	return Person{
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Email:     strings.ToLower(strings.TrimSpace(p.Email)),
	}
}

// SearchQuery selects rooms free for [From, To) with room for Capacity people.
type SearchQuery struct {
	From     time.Time `form:"from" validate:"required"`
	To       time.Time `form:"to" validate:"required,gtfield=From"`
	Capacity int       `form:"capacity" validate:"gte=0"`
}

type ReservationResponse struct {
	ID         uuid.UUID     `json:"id"`
	RoomID     uuid.UUID     `json:"room_id"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	Customer   Person        `json:"customer"`
	Guest      *Person       `json:"guest,omitempty"`
	Invoice    *Invoice      `json:"invoice,omitempty"`
	OfferID    *uuid.UUID    `json:"offer_id,omitempty"`
	EmployeeID *uuid.UUID    `json:"employee_id,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Links      hateoas.Links `json:"_links,omitempty"`
}

func toResponse(r *Reservation, links hateoas.Links) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		RoomID:     r.RoomID,
		Start:      r.Start,
		End:        r.End,
		Customer:   r.Customer,
		Guest:      r.Guest,
		Invoice:    r.Invoice,
		OfferID:    r.OfferID,
		EmployeeID: r.EmployeeID,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		Links:      links,
	}
}

// OccupationResponse is keyed by room id.
type OccupationResponse struct {
	Occupation map[string][]ReservationResponse `json:"occupation"`
	Links      hateoas.Links                    `json:"_links"`
}

type AvailableRoomResponse struct {
	ID       uuid.UUID     `json:"id"`
	Number   int           `json:"number"`
	Name     string        `json:"name"`
	Floor    int           `json:"floor"`
	Capacity int           `json:"capacity"`
	Links    hateoas.Links `json:"_links"`
}
