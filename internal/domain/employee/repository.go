package employee

import (
	"context"
	"errors"

	"bookify/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetByEmail returns nil, nil for an unknown address.
func (r *repository) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := database.Conn(ctx, r.db).Where("email = ?", email).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := database.Conn(ctx, r.db).Order("last_name ASC, first_name ASC").Find(&out).Error
	return out, err
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	err := database.Conn(ctx, r.db).Create(e).Error
	if database.IsUniqueViolation(err) {
		return ErrEmailExists
	}
	return err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	res := database.Conn(ctx, r.db).
		Model(&Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"first_name":    e.FirstName,
			"last_name":     e.LastName,
			"email":         e.Email,
			"password_hash": e.PasswordHash,
			"role":          e.Role,
			"active":        e.Active,
			"updated_at":    e.UpdatedAt,
		})
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return ErrEmailExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
