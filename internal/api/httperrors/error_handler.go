package httperrors

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// HTTPErrorHandlerWithConfig returns an echo.HTTPErrorHandler rendering all
// errors in the public JSON error shape. Internal error details are only
// exposed when hideInternalServerErrorDetails is false.
func HTTPErrorHandlerWithConfig(hideInternalServerErrorDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		l := zerolog.Ctx(c.Request().Context())
		if l.GetLevel() == zerolog.Disabled {
			l = &log.Logger
		}

		var httpError *HTTPError

		switch e := err.(type) {
		case *HTTPValidationError:
			if e.Internal != nil {
				l.Debug().Err(e.Internal).Msg("Validation error with internal cause")
			}

			if err := c.JSON(int(*e.Code), e); err != nil {
				l.Error().Err(err).Msg("Failed to write validation error response")
			}

			return
		case *HTTPError:
			httpError = e
		case *echo.HTTPError:
			httpError = NewFromEcho(e)
			if e.Internal != nil {
				httpError.Internal = e.Internal
			}
		default:
			httpError = NewHTTPErrorWithDetail(http.StatusInternalServerError, "generic", http.StatusText(http.StatusInternalServerError), err)
		}

		if httpError.Internal != nil {
			if hideInternalServerErrorDetails {
				l.Error().Err(httpError.Internal).Msg("Internal error while handling request")
			} else {
				l.Error().Err(httpError.Internal).Msg("Internal error while handling request, exposing detail")
				if httpError.AdditionalData == nil {
					httpError.AdditionalData = map[string]interface{}{}
				}
				httpError.AdditionalData["internal"] = httpError.Internal.Error()
			}
		}

		if err := c.JSON(int(*httpError.Code), httpError); err != nil {
			l.Error().Err(err).Msg("Failed to write error response")
		}
	}
}
