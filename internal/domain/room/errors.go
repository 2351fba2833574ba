package room

import "bookify/internal/pkg/apperr"

var (
	ErrRoomNotFound = apperr.NotFound("ROOM_NOT_FOUND", "room not found")
	ErrNumberTaken  = apperr.Conflict("ROOM_NUMBER_TAKEN", "room number already in use")
)
