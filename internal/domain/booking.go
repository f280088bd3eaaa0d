package domain

import "time"

type Booking struct {
	ID          int64     `json:"id"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	Purpose     string    `json:"purpose,omitempty"`
	RoomID      int64     `json:"roomId" validate:"required" gorm:"not null"`
	IsModerator bool      `json:"isModerator" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Users []User `json:"users,omitempty" gorm:"many2many:booking_users;"`
}

// BookingUser is the join row behind the many2many association. Membership
// has no identity beyond the (booking, user) pair.
type BookingUser struct {
	BookingID int64     `json:"bookingId" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}

func (BookingUser) TableName() string { return "booking_users" }
