package domain

import "time"

// ContactMessage records an accepted contact-form submission before it is
// forwarded to outbound email.
type ContactMessage struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	CheckIn   *time.Time `json:"checkIn,omitempty"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	Guests    int        `json:"guests,omitempty"`
	RoomType  string     `json:"roomType,omitempty"`
	ClientIP  string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}
