package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roombook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)
	svc := NewService(mockUsers, mockJWT)

	mockUsers.On("GetByEmail", mock.Anything, "grace@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	mockJWT.On("GenerateToken", int64(7), "user").Return("signed-token", nil)

	u, token, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "Grace@Example.com",
		Password:  "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "grace@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "password123", u.PasswordHash)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)
	svc := NewService(mockUsers, mockJWT)

	mockUsers.On("GetByEmail", mock.Anything, "grace@example.com").
		Return(&domain.User{ID: 1, Email: "grace@example.com"}, nil)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "password123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	mockUsers.AssertNotCalled(t, "Create")
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)
	svc := NewService(mockUsers, mockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	mockUsers.On("GetByEmail", mock.Anything, "grace@example.com").
		Return(&domain.User{ID: 1, Email: "grace@example.com", PasswordHash: string(hash)}, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "grace@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)
	svc := NewService(mockUsers, mockJWT)

	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)
	svc := NewService(mockUsers, mockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockUsers.On("GetByEmail", mock.Anything, "grace@example.com").
		Return(&domain.User{ID: 1, Email: "grace@example.com", PasswordHash: string(hash), Role: domain.RoleUser}, nil)
	mockJWT.On("GenerateToken", int64(1), "user").Return("signed-token", nil)

	u, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "grace@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int64(1), u.ID)
}
