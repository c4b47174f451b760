package utils

import "errors"

var (
	ErrPlaceNotFound   = errors.New("place not found")
	ErrInvalidRating   = errors.New("invalid rating")
	ErrStoreFailure    = errors.New("local store failure")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
