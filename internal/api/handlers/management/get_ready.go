package management

import (
	"net/http"

	"github.com/kashguard/go-docsig/internal/api"
	"github.com/labstack/echo/v4"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler returns 200 once all server components are initialized.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(http.StatusServiceUnavailable, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
