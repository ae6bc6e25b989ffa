package router

import (
	"time"

	"github.com/kashguard/go-docsig/internal/api"
	audithandlers "github.com/kashguard/go-docsig/internal/api/handlers/docs/audit"
	"github.com/kashguard/go-docsig/internal/api/handlers/docs/signatures"
	"github.com/kashguard/go-docsig/internal/api/handlers/management"
	"github.com/kashguard/go-docsig/internal/api/httperrors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// Init attaches the echo instance, middleware, groups and routes to the server.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandlerWithConfig(s.Config.Echo.HideInternalServerErrorDetails)

	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.RequestID())
	s.Echo.Use(requestLogger())

	s.Router = &api.Router{
		Root:           s.Echo.Group(""),
		Management:     s.Echo.Group("/-"),
		APIV1Documents: s.Echo.Group("/api/v1/documents"),
	}

	s.Router.Routes = []*echo.Route{
		signatures.PostFirstUnsignedSignerRoute(s),
		signatures.PostCheckSignaturesRoute(s),
		audithandlers.GetAuditLogsRoute(s),
		management.GetHealthyRoute(s),
		management.GetReadyRoute(s),
		management.GetMetricsRoute(s),
	}
}

// requestLogger attaches a request-scoped zerolog logger to the request
// context and emits one line per handled request.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			l := log.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response before logging the status
				c.Error(err)
			}

			l.Info().
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("Handled request")

			return nil
		}
	}
}
