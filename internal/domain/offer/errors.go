package offer

import "bookify/internal/pkg/apperr"

var ErrOfferNotFound = apperr.NotFound("OFFER_NOT_FOUND", "offer not found")
