package reservation

import (
	"context"
	"errors"

	"bookify/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	List(ctx context.Context) ([]Reservation, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]Reservation, error)
	Create(ctx context.Context, r *Reservation) error
	Update(ctx context.Context, r *Reservation) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var m reservationModel
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return toDomainReservation(m), nil
}

func (r *repository) List(ctx context.Context) ([]Reservation, error) {
	var models []reservationModel
	if err := database.Conn(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

// ListByRoom returns the room's reservations in start order.
func (r *repository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]Reservation, error) {
	var models []reservationModel
	err := database.Conn(ctx, r.db).Where("room_id = ?", roomID).Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := toDomainList(models)
	SortByStart(out)
	return out, nil
}

func (r *repository) Create(ctx context.Context, res *Reservation) error {
	m := toReservationModel(res)
	return mapWriteError(database.Conn(ctx, r.db).Create(&m).Error)
}

func (r *repository) Update(ctx context.Context, res *Reservation) error {
	m := toReservationModel(res)
	result := database.Conn(ctx, r.db).
		Model(&reservationModel{}).
		Where("id = ?", res.ID).
		Updates(map[string]any{
			"start_time":           m.StartTime,
			"end_time":             m.EndTime,
			"customer_first_name":  m.CustomerFirstName,
			"customer_last_name":   m.CustomerLastName,
			"customer_email":       m.CustomerEmail,
			"guest_first_name":     m.GuestFirstName,
			"guest_last_name":      m.GuestLastName,
			"guest_email":          m.GuestEmail,
			"invoice_company_name": m.InvoiceCompany,
			"invoice_nip":          m.InvoiceNIP,
			"invoice_street":       m.InvoiceStreet,
			"invoice_postal_code":  m.InvoicePostalCode,
			"invoice_city":         m.InvoiceCity,
			"invoice_country":      m.InvoiceCountry,
			"offer_id":             m.OfferID,
			"employee_id":          m.EmployeeID,
			"notes":                m.Notes,
			"updated_at":           m.UpdatedAt,
		})
	if result.Error != nil {
		return mapWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func mapWriteError(err error) error {
	if database.IsExclusionViolation(err) {
		return ErrReservationOverlap
	}
	return err
}

func toDomainList(models []reservationModel) []Reservation {
	out := make([]Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out
}
