package room

import (
	"strings"

	"guesthouse/internal/domain"
)

const (
	maxNameLen = 100
	maxDescLen = 1000
)

// validateRoom checks the full set of field and cross-field constraints.
// It runs before any persistence call so the invariants hold regardless of
// storage backend.
func validateRoom(r *domain.Room) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if len(r.Name) > maxNameLen {
		return ErrNameTooLong
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrDescRequired
	}
	if len(r.Description) > maxDescLen {
		return ErrDescTooLong
	}
	if r.RegularPrice < 0 {
		return ErrNegativePrice
	}
	if !domain.ValidBedType(r.BedType) {
		return ErrInvalidBedType
	}
	if len(r.ImageURLs) > domain.MaxRoomImages {
		return ErrTooManyImages
	}
	return validateDiscount(r)
}

// validateDiscount enforces offer == true => 0 < discounted < regular.
// A supplied discounted price must be in range even while no offer is
// active, so toggling the offer on later cannot expose a bad value.
func validateDiscount(r *domain.Room) error {
	if r.DiscountedPrice != nil {
		if *r.DiscountedPrice <= 0 || *r.DiscountedPrice >= r.RegularPrice {
			return ErrDiscountNotLower
		}
	}
	if r.Offer && r.DiscountedPrice == nil {
		return ErrDiscountMissing
	}
	return nil
}
