package booking

import "roombook/internal/pkg/apperr"

var (
	ErrRoomRequired = apperr.New(apperr.Validation, "roomId is required")
	ErrNotFound     = apperr.New(apperr.NotFound, "booking not found")
)
