package offer

import (
	"context"
	"errors"

	"bookify/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Offer, error)
	List(ctx context.Context) ([]Offer, error)
	// ListFlaggedActive returns offers with the active flag set, regardless
	// of their validity window.
	ListFlaggedActive(ctx context.Context) ([]Offer, error)
	Create(ctx context.Context, o *Offer) error
	Update(ctx context.Context, o *Offer) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Offer, error) {
	var o Offer
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) List(ctx context.Context) ([]Offer, error) {
	var out []Offer
	err := database.Conn(ctx, r.db).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *repository) ListFlaggedActive(ctx context.Context) ([]Offer, error) {
	var out []Offer
	err := database.Conn(ctx, r.db).
		Where("active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) Create(ctx context.Context, o *Offer) error {
	return database.Conn(ctx, r.db).Create(o).Error
}

func (r *repository) Update(ctx context.Context, o *Offer) error {
	res := database.Conn(ctx, r.db).
		Model(&Offer{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"title":       o.Title,
			"description": o.Description,
			"price":       o.Price,
			"active":      o.Active,
			"valid_from":  o.ValidFrom,
			"valid_to":    o.ValidTo,
			"updated_at":  o.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	return nil
}
