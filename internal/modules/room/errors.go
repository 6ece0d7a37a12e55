package room

import "errors"

var ErrRoomNotFound = errors.New("room not found")

// ValidationError marks an out-of-constraint payload. Handlers map it to a
// 400 regardless of which rule tripped.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrNameRequired     = &ValidationError{"room name is required"}
	ErrNameTooLong      = &ValidationError{"room name cannot exceed 100 characters"}
	ErrDescRequired     = &ValidationError{"description is required"}
	ErrDescTooLong      = &ValidationError{"description cannot exceed 1000 characters"}
	ErrNegativePrice    = &ValidationError{"price cannot be negative"}
	ErrInvalidBedType   = &ValidationError{"please select a valid bed type"}
	ErrTooManyImages    = &ValidationError{"cannot upload more than 6 images"}
	ErrDiscountMissing  = &ValidationError{"discounted price is required when an offer is active"}
	ErrDiscountNotLower = &ValidationError{"discounted price must be positive and less than regular price"}
)
