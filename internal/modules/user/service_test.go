package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"roombook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockAssociationCleaner struct {
	mock.Mock
}

func (m *MockAssociationCleaner) ClearUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	mockUsers.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetBookings(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	mockUsers.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.User{ID: 5, Email: "g@example.com"}, nil)
	mockBookings.On("GetByUserID", mock.Anything, int64(5)).
		Return([]domain.Booking{{ID: 1, RoomID: 42}, {ID: 2, RoomID: 43}}, nil)

	bookings, err := svc.GetBookings(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestService_GetBookings_MissingUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	mockUsers.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBookings(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
	mockBookings.AssertNotCalled(t, "GetByUserID")
}

func TestService_Update_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	name := "Grace"
	mockUsers.On("Update", mock.Anything, int64(9), map[string]any{"first_name": name}).
		Return(int64(0), nil)

	_, err := svc.Update(context.Background(), 9, UpdateUserRequest{FirstName: &name})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	position := "Staff Engineer"
	mockUsers.On("Update", mock.Anything, int64(5), map[string]any{"position": position}).
		Return(int64(1), nil)
	mockUsers.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.User{ID: 5, Position: position}, nil)

	u, err := svc.Update(context.Background(), 5, UpdateUserRequest{Position: &position})

	assert.NoError(t, err)
	assert.Equal(t, position, u.Position)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	mockUsers.On("Delete", mock.Anything, int64(1)).Return(int64(0), nil)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotFound)
	mockAssoc.AssertNotCalled(t, "ClearUser")
}

func TestService_Delete_ClearsAssociations(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockBookings := new(MockBookingReader)
	mockAssoc := new(MockAssociationCleaner)
	svc := NewService(mockUsers, mockBookings, mockAssoc)

	mockUsers.On("Delete", mock.Anything, int64(5)).Return(int64(1), nil)
	mockAssoc.On("ClearUser", mock.Anything, int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 5))
	mockAssoc.AssertExpectations(t)
}
