package room

import (
	"context"
	"errors"
	"strings"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

// Service implements the Room lifecycle: validated CRUD over the store.
type Service struct {
	rooms RoomRepositoryInterface
}

func NewService(rooms RoomRepositoryInterface) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	room := &domain.Room{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		RegularPrice:    req.RegularPrice,
		DiscountedPrice: req.DiscountedPrice,
		BedType:         domain.BedType(req.BedType),
		WaterHeater:     req.WaterHeater,
		TV:              req.TV,
		DSTV:            req.DSTV,
		AC:              req.AC,
		Fridge:          req.Fridge,
		Sofa:            req.Sofa,
		Offer:           req.Offer,
		ImageURLs:       req.ImageURLs,
		IsAvailable:     available,
	}
	if room.ImageURLs == nil {
		room.ImageURLs = []string{}
	}

	if err := validateRoom(room); err != nil {
		return nil, err
	}

	// No active offer means no stored discount.
	if !room.Offer {
		room.DiscountedPrice = nil
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// GetAll returns every room unfiltered and unordered; availability
// filtering and display order are the caller's concern.
func (s *Service) GetAll(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

// Update merges the supplied fields into the existing room. Fields omitted
// from the request are left unchanged; the discount invariant is re-checked
// only when a participating field was touched.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	priceFieldsTouched := req.Offer != nil || req.DiscountedPrice != nil || req.RegularPrice != nil

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		if len(name) > maxNameLen {
			return nil, ErrNameTooLong
		}
		room.Name = name
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			return nil, ErrDescRequired
		}
		if len(desc) > maxDescLen {
			return nil, ErrDescTooLong
		}
		room.Description = desc
	}
	if req.RegularPrice != nil {
		if *req.RegularPrice < 0 {
			return nil, ErrNegativePrice
		}
		room.RegularPrice = *req.RegularPrice
	}
	if req.DiscountedPrice != nil {
		room.DiscountedPrice = req.DiscountedPrice
	}
	if req.BedType != nil {
		bt := domain.BedType(*req.BedType)
		if !domain.ValidBedType(bt) {
			return nil, ErrInvalidBedType
		}
		room.BedType = bt
	}
	if req.WaterHeater != nil {
		room.WaterHeater = *req.WaterHeater
	}
	if req.TV != nil {
		room.TV = *req.TV
	}
	if req.DSTV != nil {
		room.DSTV = *req.DSTV
	}
	if req.AC != nil {
		room.AC = *req.AC
	}
	if req.Fridge != nil {
		room.Fridge = *req.Fridge
	}
	if req.Sofa != nil {
		room.Sofa = *req.Sofa
	}
	if req.Offer != nil {
		room.Offer = *req.Offer
	}
	if req.ImageURLs != nil {
		if len(*req.ImageURLs) > domain.MaxRoomImages {
			return nil, ErrTooManyImages
		}
		room.ImageURLs = *req.ImageURLs
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if priceFieldsTouched {
		if err := validateDiscount(room); err != nil {
			return nil, err
		}
	}

	// Deactivating an offer clears the stale discount instead of leaving
	// ambiguous state behind.
	if !room.Offer {
		room.DiscountedPrice = nil
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete permanently removes the room. A second delete on the same id
// reports not found rather than silently succeeding.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}
