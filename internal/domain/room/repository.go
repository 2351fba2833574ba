package room

import (
	"context"
	"errors"

	"bookify/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the data access the room service needs.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	GetByNumber(ctx context.Context, number int) (*Room, error)
	List(ctx context.Context) ([]Room, error)
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	var room Room
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetByNumber returns nil, nil when no room carries the number.
func (r *repository) GetByNumber(ctx context.Context, number int) (*Room, error) {
	var room Room
	err := database.Conn(ctx, r.db).Where("number = ?", number).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *repository) List(ctx context.Context) ([]Room, error) {
	var rooms []Room
	err := database.Conn(ctx, r.db).Order("number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *repository) Create(ctx context.Context, room *Room) error {
	err := database.Conn(ctx, r.db).Create(room).Error
	if database.IsUniqueViolation(err) {
		return ErrNumberTaken
	}
	return err
}

func (r *repository) Update(ctx context.Context, room *Room) error {
	res := database.Conn(ctx, r.db).
		Model(&Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"number":      room.Number,
			"name":        room.Name,
			"floor":       room.Floor,
			"capacity":    room.Capacity,
			"description": room.Description,
			"updated_at":  room.UpdatedAt,
		})
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return ErrNumberTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
