package repository

import (
	"context"
	"encoding/json"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name;size:100"`
	Description     string    `gorm:"column:description;size:1000"`
	RegularPrice    float64   `gorm:"column:regular_price"`
	DiscountedPrice *float64  `gorm:"column:discounted_price"`
	BedType         string    `gorm:"column:bed_type;size:32"`
	WaterHeater     bool      `gorm:"column:water_heater"`
	TV              bool      `gorm:"column:tv"`
	DSTV            bool      `gorm:"column:dstv"`
	AC              bool      `gorm:"column:ac"`
	Fridge          bool      `gorm:"column:fridge"`
	Sofa            bool      `gorm:"column:sofa"`
	Offer           bool      `gorm:"column:offer"`
	ImageURLs       string    `gorm:"column:image_urls;type:text"`
	IsAvailable     bool      `gorm:"column:is_available"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var urls []string
	if m.ImageURLs != "" {
		_ = json.Unmarshal([]byte(m.ImageURLs), &urls)
	}
	if urls == nil {
		urls = []string{}
	}

	return &domain.Room{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		RegularPrice:    m.RegularPrice,
		DiscountedPrice: m.DiscountedPrice,
		BedType:         domain.BedType(m.BedType),
		WaterHeater:     m.WaterHeater,
		TV:              m.TV,
		DSTV:            m.DSTV,
		AC:              m.AC,
		Fridge:          m.Fridge,
		Sofa:            m.Sofa,
		Offer:           m.Offer,
		ImageURLs:       urls,
		IsAvailable:     m.IsAvailable,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	urls := r.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	raw, _ := json.Marshal(urls)

	return roomModel{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		RegularPrice:    r.RegularPrice,
		DiscountedPrice: r.DiscountedPrice,
		BedType:         string(r.BedType),
		WaterHeater:     r.WaterHeater,
		TV:              r.TV,
		DSTV:            r.DSTV,
		AC:              r.AC,
		Fridge:          r.Fridge,
		Sofa:            r.Sofa,
		Offer:           r.Offer,
		ImageURLs:       string(raw),
		IsAvailable:     r.IsAvailable,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]*domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	rooms := make([]*domain.Room, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, toDomainRoom(m))
	}
	return rooms, nil
}

// Update persists every column of the room. The caller merges partial
// payloads into the loaded entity first; Save rather than Updates so that
// cleared booleans and a nulled discounted price are written through.
func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&roomModel{}, id).Error
}
