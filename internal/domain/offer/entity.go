package offer

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:160;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Active      bool      `gorm:"not null;index" json:"active"`
	ValidFrom   time.Time `gorm:"not null" json:"valid_from"`
	ValidTo     time.Time `gorm:"not null" json:"valid_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Offer) TableName() string { return "offers" }

// IsActiveAt reports whether the offer is switched on and now falls inside
// [ValidFrom, ValidTo).
func (o *Offer) IsActiveAt(now time.Time) bool {
	return o.Active && !now.Before(o.ValidFrom) && now.Before(o.ValidTo)
}
