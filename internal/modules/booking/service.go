package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roombook/internal/domain"
	"roombook/internal/pkg/apperr"
	"roombook/internal/pkg/validator"
)

type Service struct {
	bookings     BookingRepository
	associations AssociationRepository
}

func NewService(bookings BookingRepository, associations AssociationRepository) *Service {
	return &Service{
		bookings:     bookings,
		associations: associations,
	}
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.RoomID == 0 {
		return nil, ErrRoomRequired
	}

	b := &domain.Booking{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Purpose:     req.Purpose,
		RoomID:      req.RoomID,
		IsModerator: req.IsModerator,
	}

	if err := validator.Check(b); err != nil {
		return nil, err
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create booking", err)
	}

	if len(req.UserIDs) > 0 {
		if err := s.associations.Add(ctx, b.ID, req.UserIDs); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to associate users", err)
		}
	}

	return b, nil
}

// Update applies the supplied fields and, when exactly one row matched and
// userIds were supplied, replaces the whole association set. A zero-row
// match means the booking is absent or the payload was effectively empty;
// both report not found.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*BookingDetail, error) {
	fields := map[string]any{}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Purpose != nil {
		fields["purpose"] = *req.Purpose
	}
	if req.RoomID != nil {
		if *req.RoomID == 0 {
			return nil, ErrRoomRequired
		}
		fields["room_id"] = *req.RoomID
	}
	if req.IsModerator != nil {
		fields["is_moderator"] = *req.IsModerator
	}

	rows, err := s.bookings.Update(ctx, id, fields)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update booking", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	if len(req.UserIDs) > 0 {
		if err := s.associations.Replace(ctx, id, req.UserIDs); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to replace booking users", err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete booking", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := s.associations.Clear(ctx, id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to clear booking users", err)
	}
	return nil
}

func (s *Service) GetAll(ctx context.Context) ([]BookingSummary, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load bookings", err)
	}

	out := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		users, err := s.associations.List(ctx, b.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to load booking users", err)
		}

		summaries := make([]UserSummary, 0, len(users))
		for _, u := range users {
			summaries = append(summaries, UserSummary{
				ID:       u.ID,
				Position: u.Position,
				Picture:  u.Picture,
				Email:    u.Email,
			})
		}

		out = append(out, BookingSummary{
			ID:          b.ID,
			StartDate:   b.StartDate,
			EndDate:     b.EndDate,
			Purpose:     b.Purpose,
			RoomID:      b.RoomID,
			IsModerator: b.IsModerator,
			Users:       summaries,
		})
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*BookingDetail, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load booking", err)
	}

	users, err := s.associations.List(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load booking users", err)
	}

	details := make([]UserDetail, 0, len(users))
	for _, u := range users {
		details = append(details, UserDetail{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Position:  u.Position,
			Picture:   u.Picture,
			Email:     u.Email,
		})
	}

	return &BookingDetail{
		ID:          b.ID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Purpose:     b.Purpose,
		RoomID:      b.RoomID,
		IsModerator: b.IsModerator,
		Users:       details,
	}, nil
}

// GetUsers returns the full associated-user list, empty when the booking
// has none. A missing booking reports not found.
func (s *Service) GetUsers(ctx context.Context, id int64) ([]domain.User, error) {
	ok, err := s.bookings.Exists(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to check booking", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	users, err := s.associations.List(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load booking users", err)
	}
	return users, nil
}
