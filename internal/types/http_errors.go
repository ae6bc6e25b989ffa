package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
)

// PublicHTTPErrorTypeGeneric is the default public error type for errors
// without a more specific machine-readable type.
const PublicHTTPErrorTypeGeneric = "generic"

// PublicHTTPError is the public JSON shape of an HTTP error response.
type PublicHTTPError struct {
	// HTTP status code
	// Required: true
	Code *int64 `json:"status"`

	// Short human-readable title of the error
	// Required: true
	Title *string `json:"title"`

	// Machine-readable error type
	// Required: true
	Type *string `json:"type"`
}

// Validate validates this public HTTP error
func (m *PublicHTTPError) Validate(_ strfmt.Registry) error {
	if m.Code == nil {
		return errors.Required("status", "body", nil)
	}
	if m.Title == nil {
		return errors.Required("title", "body", nil)
	}
	if m.Type == nil {
		return errors.Required("type", "body", nil)
	}

	return nil
}

// PublicHTTPValidationError is a public HTTP error carrying per-field
// validation failure details.
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of failed payload fields
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public HTTP validation error
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	if err := m.PublicHTTPError.Validate(formats); err != nil {
		return err
	}

	for _, detail := range m.ValidationErrors {
		if detail == nil {
			continue
		}
		if err := detail.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// HTTPValidationErrorDetail describes a single failed payload field.
type HTTPValidationErrorDetail struct {
	// Error describing the field failure
	// Required: true
	Error *string `json:"error"`

	// Location of the field (body, query, path)
	// Required: true
	In *string `json:"in"`

	// Name of the field
	// Required: true
	Key *string `json:"key"`
}

// Validate validates this HTTP validation error detail
func (m *HTTPValidationErrorDetail) Validate(_ strfmt.Registry) error {
	if m.Error == nil {
		return errors.Required("error", "body", nil)
	}
	if m.In == nil {
		return errors.Required("in", "body", nil)
	}
	if m.Key == nil {
		return errors.Required("key", "body", nil)
	}

	return nil
}
