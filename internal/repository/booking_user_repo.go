package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"roombook/internal/domain"
)

// BookingUserRepository manages the booking_users join table directly:
// Add unions new members in, Replace syncs the set to an exact list, List
// reads the current members. Nothing else touches the association rows.
type BookingUserRepository struct {
	db *gorm.DB
}

func NewBookingUserRepository(db *gorm.DB) *BookingUserRepository {
	return &BookingUserRepository{db: db}
}

// Add associates the given users with the booking. Existing pairs are
// left alone, so repeated adds are harmless.
func (r *BookingUserRepository) Add(ctx context.Context, bookingID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]domain.BookingUser, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, domain.BookingUser{BookingID: bookingID, UserID: uid})
	}

	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	return tx.Error
}

// Replace makes the booking's association set exactly userIDs. Members not
// in the new list are removed. Runs in one transaction so the set is never
// observed half-synced.
func (r *BookingUserRepository) Replace(ctx context.Context, bookingID int64, userIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("booking_id = ?", bookingID)
		if len(userIDs) > 0 {
			del = del.Where("user_id NOT IN ?", userIDs)
		}
		if err := del.Delete(&domain.BookingUser{}).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		rows := make([]domain.BookingUser, 0, len(userIDs))
		for _, uid := range userIDs {
			rows = append(rows, domain.BookingUser{BookingID: bookingID, UserID: uid})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}

// Clear removes every association row for the booking. Called when the
// booking itself is deleted so no orphaned pairs remain.
func (r *BookingUserRepository) Clear(ctx context.Context, bookingID int64) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&domain.BookingUser{}).Error
}

// ClearUser removes every association row for the user.
func (r *BookingUserRepository) ClearUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.BookingUser{}).Error
}

// List returns the users associated with the booking, empty when none.
func (r *BookingUserRepository) List(ctx context.Context, bookingID int64) ([]domain.User, error) {
	var rows []userModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN booking_users bu ON bu.user_id = users.id").
		Where("bu.booking_id = ?", bookingID).
		Order("users.id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}
