package util

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/kashguard/go-docsig/internal/api/httperrors"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/labstack/echo/v4"
)

// Validatable mirrors the go-openapi runtime contract implemented by all
// payload and response types.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the request body into v and validates it,
// returning an HTTPValidationError on failure.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return echo.ErrInternalServerError
	}

	if err := binder.BindBody(c, v); err != nil {
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Invalid request body",
			[]*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String("body"),
					In:    swag.String("body"),
					Error: swag.String(err.Error()),
				},
			},
		)
	}

	return validatePayload(v)
}

// ValidateAndReturn validates the response payload and writes it as JSON.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Payload validation failed",
			[]*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String("body"),
					In:    swag.String("body"),
					Error: swag.String(err.Error()),
				},
			},
		)
	}

	return nil
}
