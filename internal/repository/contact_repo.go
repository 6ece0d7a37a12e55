package repository

import (
	"context"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	Name      string     `gorm:"column:name;size:128"`
	Email     string     `gorm:"column:email;size:255"`
	Phone     string     `gorm:"column:phone;size:32"`
	Subject   string     `gorm:"column:subject;size:255"`
	Message   string     `gorm:"column:message;type:text"`
	CheckIn   *time.Time `gorm:"column:check_in"`
	CheckOut  *time.Time `gorm:"column:check_out"`
	Guests    int        `gorm:"column:guests"`
	RoomType  string     `gorm:"column:room_type;size:64"`
	ClientIP  string     `gorm:"column:client_ip;size:64"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (contactModel) TableName() string { return "contact_messages" }

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	m := contactModel{
		Name:     msg.Name,
		Email:    msg.Email,
		Phone:    msg.Phone,
		Subject:  msg.Subject,
		Message:  msg.Message,
		CheckIn:  msg.CheckIn,
		CheckOut: msg.CheckOut,
		Guests:   msg.Guests,
		RoomType: msg.RoomType,
		ClientIP: msg.ClientIP,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

// Models lists every persisted entity for schema migration.
func Models() []any {
	return []any{&userModel{}, &roomModel{}, &contactModel{}}
}
