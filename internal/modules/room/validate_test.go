package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"guesthouse/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func baseRoom() *domain.Room {
	return &domain.Room{
		Name:         "Deluxe Queen Suite",
		Description:  "Spacious room with garden view.",
		RegularPrice: 450,
		BedType:      domain.BedQueen,
		ImageURLs:    []string{},
	}
}

func TestValidateRoom(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.Room)
		wantErr error
	}{
		{
			name:    "valid room passes",
			mutate:  func(r *domain.Room) {},
			wantErr: nil,
		},
		{
			name:    "blank name",
			mutate:  func(r *domain.Room) { r.Name = "   " },
			wantErr: ErrNameRequired,
		},
		{
			name:    "name over 100 chars",
			mutate:  func(r *domain.Room) { r.Name = strings.Repeat("a", 101) },
			wantErr: ErrNameTooLong,
		},
		{
			name:    "blank description",
			mutate:  func(r *domain.Room) { r.Description = "" },
			wantErr: ErrDescRequired,
		},
		{
			name:    "description over 1000 chars",
			mutate:  func(r *domain.Room) { r.Description = strings.Repeat("a", 1001) },
			wantErr: ErrDescTooLong,
		},
		{
			name:    "negative price",
			mutate:  func(r *domain.Room) { r.RegularPrice = -1 },
			wantErr: ErrNegativePrice,
		},
		{
			name:    "unknown bed type",
			mutate:  func(r *domain.Room) { r.BedType = "Water Bed" },
			wantErr: ErrInvalidBedType,
		},
		{
			name: "seven images",
			mutate: func(r *domain.Room) {
				r.ImageURLs = make([]string, domain.MaxRoomImages+1)
			},
			wantErr: ErrTooManyImages,
		},
		{
			name: "six images allowed",
			mutate: func(r *domain.Room) {
				r.ImageURLs = make([]string, domain.MaxRoomImages)
			},
			wantErr: nil,
		},
		{
			name: "offer without discount",
			mutate: func(r *domain.Room) {
				r.Offer = true
			},
			wantErr: ErrDiscountMissing,
		},
		{
			name: "discount equal to regular price",
			mutate: func(r *domain.Room) {
				r.Offer = true
				r.DiscountedPrice = ptr(450)
			},
			wantErr: ErrDiscountNotLower,
		},
		{
			name: "discount above regular price",
			mutate: func(r *domain.Room) {
				r.Offer = true
				r.DiscountedPrice = ptr(500)
			},
			wantErr: ErrDiscountNotLower,
		},
		{
			name: "zero discount",
			mutate: func(r *domain.Room) {
				r.Offer = true
				r.DiscountedPrice = ptr(0)
			},
			wantErr: ErrDiscountNotLower,
		},
		{
			name: "valid discount",
			mutate: func(r *domain.Room) {
				r.Offer = true
				r.DiscountedPrice = ptr(350)
			},
			wantErr: nil,
		},
		{
			name: "bad discount rejected even without offer",
			mutate: func(r *domain.Room) {
				r.Offer = false
				r.DiscountedPrice = ptr(500)
			},
			wantErr: ErrDiscountNotLower,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseRoom()
			tt.mutate(r)
			err := validateRoom(r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDiscountPercent(t *testing.T) {
	r := baseRoom()
	assert.Equal(t, 0, r.DiscountPercent())

	r.Offer = true
	r.DiscountedPrice = ptr(350)
	// (450-350)/450 = 22.2% rounds to 22
	assert.Equal(t, 22, r.DiscountPercent())
}

func TestIsPremium(t *testing.T) {
	r := baseRoom()
	assert.True(t, r.IsPremium())

	r.RegularPrice = 399.99
	assert.False(t, r.IsPremium())
}
