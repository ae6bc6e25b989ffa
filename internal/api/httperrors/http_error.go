package httperrors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/labstack/echo/v4"
)

// HTTPError is the echo-compatible error type rendered as a public JSON error.
type HTTPError struct {
	types.PublicHTTPError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

// NewHTTPError returns a new HTTPError with the given status code, public
// error type and title.
func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:  swag.Int64(int64(code)),
			Type:  swag.String(errorType),
			Title: swag.String(title),
		},
	}
}

// NewHTTPErrorWithDetail returns a new HTTPError with an internal error
// attached for logging (never rendered to the client).
func NewHTTPErrorWithDetail(code int, errorType string, title string, internal error) *HTTPError {
	e := NewHTTPError(code, errorType, title)
	e.Internal = internal

	return e
}

// NewFromEcho converts an *echo.HTTPError into our public error shape.
func NewFromEcho(e *echo.HTTPError) *HTTPError {
	title := http.StatusText(e.Code)
	if msg, ok := e.Message.(string); ok {
		title = msg
	}

	return NewHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, title)
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", *e.Code, *e.Type, *e.Title)
}

// MarshalJSON merges AdditionalData into the public error shape.
func (e *HTTPError) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"status": e.Code,
		"type":   e.Type,
		"title":  e.Title,
	}
	for k, v := range e.AdditionalData {
		if _, reserved := payload[k]; !reserved {
			payload[k] = v
		}
	}

	return json.Marshal(payload)
}

// HTTPValidationError extends HTTPError with per-field validation details.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
	Internal error `json:"-"`
}

// NewHTTPValidationError returns a new HTTPValidationError with the given
// failed-field details.
func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Type:  swag.String(errorType),
				Title: swag.String(title),
			},
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d failed fields)", *e.Code, *e.Type, *e.Title, len(e.ValidationErrors))
}
