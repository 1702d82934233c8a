package domain

import "errors"

var (
	// ErrHotelNotFound is returned when no hotel exists for an identifier.
	ErrHotelNotFound = errors.New("hotel not found")
	// ErrReviewNotFound is returned when a hotel exists but holds no review
	// with the requested identifier.
	ErrReviewNotFound = errors.New("review not found")
)

// ValidationError reports a document the store rejected before writing it.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
