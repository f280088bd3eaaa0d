package user

import (
	"context"

	"roombook/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// BookingReader exposes the booking lookups the user endpoints need.
type BookingReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
}

// AssociationCleaner drops a deleted user's join rows.
type AssociationCleaner interface {
	ClearUser(ctx context.Context, userID int64) error
}
