package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roombook/internal/domain"
	"roombook/internal/pkg/apperr"
)

type Service struct {
	users        UserRepository
	bookings     BookingReader
	associations AssociationCleaner
}

func NewService(users UserRepository, bookings BookingReader, associations AssociationCleaner) *Service {
	return &Service{
		users:        users,
		bookings:     bookings,
		associations: associations,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load users", err)
	}
	return users, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load user", err)
	}
	return u, nil
}

// GetBookings returns the bookings the user is associated with.
func (s *Service) GetBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load user bookings", err)
	}
	return bookings, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	fields := map[string]any{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Picture != nil {
		fields["picture"] = *req.Picture
	}

	rows, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update user", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.users.Delete(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete user", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := s.associations.ClearUser(ctx, id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to clear user bookings", err)
	}
	return nil
}
