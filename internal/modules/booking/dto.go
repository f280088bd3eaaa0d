package booking

import "time"

type CreateBookingRequest struct {
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Purpose     string    `json:"purpose"`
	RoomID      int64     `json:"roomId"`
	IsModerator bool      `json:"isModerator"`
	UserIDs     []int64   `json:"userIds"`
}

// UpdateBookingRequest carries only the fields the caller wants changed.
type UpdateBookingRequest struct {
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Purpose     *string    `json:"purpose"`
	RoomID      *int64     `json:"roomId"`
	IsModerator *bool      `json:"isModerator"`
	UserIDs     []int64    `json:"userIds"`
}

// UserSummary is the user projection embedded in the booking list.
type UserSummary struct {
	ID       int64  `json:"id"`
	Position string `json:"position,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Email    string `json:"email"`
}

// UserDetail is the fuller projection returned with a single booking.
type UserDetail struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position,omitempty"`
	Picture   string `json:"picture,omitempty"`
	Email     string `json:"email"`
}

type BookingSummary struct {
	ID          int64         `json:"id"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Purpose     string        `json:"purpose,omitempty"`
	RoomID      int64         `json:"roomId"`
	IsModerator bool          `json:"isModerator"`
	Users       []UserSummary `json:"users"`
}

type BookingDetail struct {
	ID          int64        `json:"id"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Purpose     string       `json:"purpose,omitempty"`
	RoomID      int64        `json:"roomId"`
	IsModerator bool         `json:"isModerator"`
	Users       []UserDetail `json:"users"`
}
