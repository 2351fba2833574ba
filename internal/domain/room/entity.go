package room

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable office room.
type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Number      int       `gorm:"not null;uniqueIndex" json:"number"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Floor       int       `gorm:"not null;default:0" json:"floor"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

// Fits reports whether the room holds at least n people.
func (r *Room) Fits(n int) bool {
	return r.Capacity >= n
}
