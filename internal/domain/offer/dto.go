package offer

import (
	"strings"
	"time"

	"bookify/internal/pkg/hateoas"

	"github.com/google/uuid"
)

type OfferRequest struct {
	Title       string    `json:"title" validate:"required,max=160"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	Active      *bool     `json:"active"`
	ValidFrom   time.Time `json:"valid_from" validate:"required"`
	ValidTo     time.Time `json:"valid_to" validate:"required,gtfield=ValidFrom"`
}

func (r OfferRequest) apply(o *Offer) {
	o.Title = strings.TrimSpace(r.Title)
	o.Description = r.Description
	o.Price = r.Price
	if r.Active != nil {
		o.Active = *r.Active
	}
	o.ValidFrom = r.ValidFrom.UTC()
	o.ValidTo = r.ValidTo.UTC()
}

type OfferResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Active      bool          `json:"active"`
	ValidFrom   time.Time     `json:"valid_from"`
	ValidTo     time.Time     `json:"valid_to"`
	Links       hateoas.Links `json:"_links"`
}

func toResponse(o *Offer, links hateoas.Links) OfferResponse {
	return OfferResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Price:       o.Price,
		Active:      o.Active,
		ValidFrom:   o.ValidFrom.UTC(),
		ValidTo:     o.ValidTo.UTC(),
		Links:       links,
	}
}
