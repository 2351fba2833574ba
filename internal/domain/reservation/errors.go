package reservation

import "bookify/internal/pkg/apperr"

var (
	ErrReservationNotFound = apperr.NotFound("RESERVATION_NOT_FOUND", "reservation not found")
	ErrReservationOverlap  = apperr.Conflict("RESERVATION_OVERLAP", "room is already reserved in this period")
	ErrInvalidInterval     = apperr.Validation("INVALID_INTERVAL", "end must be after start")
)
