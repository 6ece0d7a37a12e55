package admin

import "guesthouse/internal/domain"

// DashboardMetrics mirrors what the back-office overview page renders.
type DashboardMetrics struct {
	TotalRooms         int            `json:"totalRooms"`
	PremiumRooms       int            `json:"premiumRooms"`
	StandardRooms      int            `json:"standardRooms"`
	RoomsOnOffer       int            `json:"roomsOnOffer"`
	AvailableRooms     int            `json:"availableRooms"`
	AvgRoomPrice       float64        `json:"avgRoomPrice"`
	TotalDiscountValue float64        `json:"totalDiscountValue"`
	RecentlyAdded      []*domain.Room `json:"recentlyAdded"`
}
