package room

import (
	"bookify/internal/pkg/hateoas"

	"github.com/google/uuid"
)

// RoomRequest is the body of create and update calls.
type RoomRequest struct {
	Number      int    `json:"number" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=120"`
	Floor       int    `json:"floor" validate:"gte=0"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	Description string `json:"description"`
}

func (r RoomRequest) apply(room *Room) {
	room.Number = r.Number
	room.Name = r.Name
	room.Floor = r.Floor
	room.Capacity = r.Capacity
	room.Description = r.Description
}

type RoomResponse struct {
	ID          uuid.UUID     `json:"id"`
	Number      int           `json:"number"`
	Name        string        `json:"name"`
	Floor       int           `json:"floor"`
	Capacity    int           `json:"capacity"`
	Description string        `json:"description,omitempty"`
	Links       hateoas.Links `json:"_links"`
}

func toResponse(r *Room, links hateoas.Links) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Name:        r.Name,
		Floor:       r.Floor,
		Capacity:    r.Capacity,
		Description: r.Description,
		Links:       links,
	}
}
