package auth

import "roombook/internal/pkg/apperr"

var (
	ErrEmailAlreadyExists = apperr.New(apperr.Conflict, "this email is already registered")
	ErrInvalidCredentials = apperr.New(apperr.Unauthorized, "email or password is incorrect")
)
