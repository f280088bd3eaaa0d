package user

import "roombook/internal/pkg/apperr"

var ErrNotFound = apperr.New(apperr.NotFound, "user not found")
