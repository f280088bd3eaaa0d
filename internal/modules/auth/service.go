package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roombook/internal/domain"
	"roombook/internal/pkg/apperr"
)

type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to check email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	u := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		Picture:      req.Picture,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	if err := s.users.Create(ctx, u); err != nil {
		// concurrent registrations race past the GetByEmail check and
		// land on the unique index instead
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", apperr.Wrap(apperr.Internal, "failed to create user", err)
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to sign token", err)
	}

	return u, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", apperr.Wrap(apperr.Internal, "failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to sign token", err)
	}

	return u, token, nil
}
