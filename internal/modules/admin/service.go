package admin

import (
	"context"
	"sort"

	"guesthouse/internal/domain"
)

const recentlyAddedCount = 3

type RoomReader interface {
	GetAll(ctx context.Context) ([]*domain.Room, error)
}

// Service aggregates room metrics for the back-office dashboard.
type Service struct {
	rooms RoomReader
}

func NewService(rooms RoomReader) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	m := &DashboardMetrics{
		TotalRooms:    len(rooms),
		RecentlyAdded: []*domain.Room{},
	}

	var priceSum float64
	for _, r := range rooms {
		if r.IsPremium() {
			m.PremiumRooms++
		}
		if r.Offer {
			m.RoomsOnOffer++
			if r.DiscountedPrice != nil {
				m.TotalDiscountValue += r.RegularPrice - *r.DiscountedPrice
			}
		}
		if r.IsAvailable {
			m.AvailableRooms++
		}
		priceSum += r.RegularPrice
	}
	m.StandardRooms = m.TotalRooms - m.PremiumRooms
	if m.TotalRooms > 0 {
		m.AvgRoomPrice = priceSum / float64(m.TotalRooms)
	}

	sorted := make([]*domain.Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentlyAddedCount {
		sorted = sorted[:recentlyAddedCount]
	}
	m.RecentlyAdded = sorted

	return m, nil
}
