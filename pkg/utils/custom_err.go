package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrDraftNotFound   = errors.New("itinerary draft not found or expired")
	ErrJourneyNotFound = errors.New("journey not found")
	ErrPlaceNotFound   = errors.New("place not found")
	ErrUnauthorized    = errors.New("unauthorized")
)
