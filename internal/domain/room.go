package domain

import (
	"math"
	"time"
)

type BedType string

const (
	BedSingle BedType = "Single Size"
	BedDouble BedType = "Double Size"
	BedQueen  BedType = "Queen Size"
	BedKing   BedType = "King Size"
	BedHalf   BedType = "Half Size"
)

// ValidBedType reports whether v is one of the five supported bed types.
func ValidBedType(v BedType) bool {
	switch v {
	case BedSingle, BedDouble, BedQueen, BedKing, BedHalf:
		return true
	}
	return false
}

const (
	// MaxRoomImages caps the number of image URLs per room.
	MaxRoomImages = 6
	// PremiumPriceThreshold is the presentation tier cutoff in currency units.
	PremiumPriceThreshold = 400.0
)

type Room struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	RegularPrice    float64   `json:"regularPrice"`
	DiscountedPrice *float64  `json:"discountedPrice,omitempty"`
	BedType         BedType   `json:"bedType"`
	WaterHeater     bool      `json:"waterHeater"`
	TV              bool      `json:"hasTV"`
	DSTV            bool      `json:"hasDSTV"`
	AC              bool      `json:"hasAC"`
	Fridge          bool      `json:"hasFridge"`
	Sofa            bool      `json:"hasSofa"`
	Offer           bool      `json:"offer"`
	ImageURLs       []string  `json:"imageURLs"`
	IsAvailable     bool      `json:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsPremium reports whether the room falls into the premium presentation tier.
func (r *Room) IsPremium() bool {
	return r.RegularPrice >= PremiumPriceThreshold
}

// DiscountPercent returns the rounded discount percentage, or 0 when no
// active offer exists.
func (r *Room) DiscountPercent() int {
	if !r.Offer || r.DiscountedPrice == nil || r.RegularPrice <= 0 {
		return 0
	}
	return int(math.Round((r.RegularPrice - *r.DiscountedPrice) / r.RegularPrice * 100))
}
