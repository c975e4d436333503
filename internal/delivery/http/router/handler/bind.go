package handler

import (
	"strings"

	"authgate/internal/delivery/http/validator"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON or form body into req and runs its
// validate tags. Failures name the first offending field.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		field := strings.ToLower(validator.FirstField(err))
		if field == "" {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		return domainerrors.ErrValidationFailed.WithDetails(field + " missing")
	}

	return nil
}
