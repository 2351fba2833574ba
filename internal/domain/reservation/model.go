package reservation

import (
	"time"

	"github.com/google/uuid"
)

type reservationModel struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	RoomID            uuid.UUID  `gorm:"column:room_id;type:uuid;not null;index:idx_reservations_room_start"`
	StartTime         time.Time  `gorm:"column:start_time;not null;index:idx_reservations_room_start"`
	EndTime           time.Time  `gorm:"column:end_time;not null"`
	CustomerFirstName string     `gorm:"column:customer_first_name;size:100;not null"`
	CustomerLastName  string     `gorm:"column:customer_last_name;size:100;not null"`
	CustomerEmail     string     `gorm:"column:customer_email;size:255;not null"`
	GuestFirstName    *string    `gorm:"column:guest_first_name;size:100"`
	GuestLastName     *string    `gorm:"column:guest_last_name;size:100"`
	GuestEmail        *string    `gorm:"column:guest_email;size:255"`
	InvoiceCompany    *string    `gorm:"column:invoice_company_name;size:200"`
	InvoiceNIP        *string    `gorm:"column:invoice_nip;size:20"`
	InvoiceStreet     *string    `gorm:"column:invoice_street;size:200"`
	InvoicePostalCode *string    `gorm:"column:invoice_postal_code;size:20"`
	InvoiceCity       *string    `gorm:"column:invoice_city;size:100"`
	InvoiceCountry    *string    `gorm:"column:invoice_country;size:100"`
	OfferID           *uuid.UUID `gorm:"column:offer_id;type:uuid;index"`
	EmployeeID        *uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	Notes             *string    `gorm:"column:notes;type:text"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDomainReservation(m reservationModel) *Reservation {
	r := &Reservation{
		ID:     m.ID,
		RoomID: m.RoomID,
		Start:  m.StartTime.UTC(),
		End:    m.EndTime.UTC(),
		Customer: Person{
			FirstName: m.CustomerFirstName,
			LastName:  m.CustomerLastName,
			Email:     m.CustomerEmail,
		},
		OfferID:    m.OfferID,
		EmployeeID: m.EmployeeID,
		Notes:      deref(m.Notes),
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
	if m.GuestEmail != nil || m.GuestFirstName != nil || m.GuestLastName != nil {
		r.Guest = &Person{
			FirstName: deref(m.GuestFirstName),
			LastName:  deref(m.GuestLastName),
			Email:     deref(m.GuestEmail),
		}
	}
	if m.InvoiceNIP != nil || m.InvoiceCompany != nil {
		r.Invoice = &Invoice{
			CompanyName: deref(m.InvoiceCompany),
			NIP:         deref(m.InvoiceNIP),
			Street:      deref(m.InvoiceStreet),
			PostalCode:  deref(m.InvoicePostalCode),
			City:        deref(m.InvoiceCity),
			Country:     deref(m.InvoiceCountry),
		}
	}
	return r
}

func toReservationModel(r *Reservation) reservationModel {
	m := reservationModel{
		ID:                r.ID,
		RoomID:            r.RoomID,
		StartTime:         r.Start.UTC(),
		EndTime:           r.End.UTC(),
		CustomerFirstName: r.Customer.FirstName,
		CustomerLastName:  r.Customer.LastName,
		CustomerEmail:     r.Customer.Email,
		OfferID:           r.OfferID,
		EmployeeID:        r.EmployeeID,
		Notes:             strPtr(r.Notes),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if g := r.Guest; g != nil {
		m.GuestFirstName = strPtr(g.FirstName)
		m.GuestLastName = strPtr(g.LastName)
		m.GuestEmail = strPtr(g.Email)
	}
	if inv := r.Invoice; inv != nil {
		m.InvoiceCompany = strPtr(inv.CompanyName)
		m.InvoiceNIP = strPtr(inv.NIP)
		m.InvoiceStreet = strPtr(inv.Street)
		m.InvoicePostalCode = strPtr(inv.PostalCode)
		m.InvoiceCity = strPtr(inv.City)
		m.InvoiceCountry = strPtr(inv.Country)
	}
	return m
}
