package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"roombook/internal/pkg/apperr"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Check validates v against its `validate` tags. Failures come back as a
// single Validation-kind error naming every offending field, so the HTTP
// boundary reports them in the shared error shape.
func Check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Wrap(apperr.Internal, "validation failed", err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return apperr.New(apperr.Validation, "invalid fields: "+strings.Join(parts, ", "))
}
