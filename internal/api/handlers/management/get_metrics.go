package management

import (
	"github.com/kashguard/go-docsig/internal/api"
	"github.com/labstack/echo/v4"
)

func GetMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/metrics", echo.WrapHandler(s.Metrics.HTTPHandler()))
}
