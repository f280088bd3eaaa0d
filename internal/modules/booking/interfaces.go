package booking

import (
	"context"

	"roombook/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// AssociationRepository manages the booking↔user join table.
type AssociationRepository interface {
	Add(ctx context.Context, bookingID int64, userIDs []int64) error
	Replace(ctx context.Context, bookingID int64, userIDs []int64) error
	List(ctx context.Context, bookingID int64) ([]domain.User, error)
	Clear(ctx context.Context, bookingID int64) error
}
