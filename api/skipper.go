package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouteSkipper matches requests by their registered route pattern.
func RouteSkipper(routes []string) middleware.Skipper {
	routesMap := map[string]struct{}{}
	for _, route := range routes {
		routesMap[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := routesMap[ec.Path()]
		return ok
	}
}

// Public routes are reachable without a session.
var publicRoutes = []string{
	"/ready",
	"/login",
	"/vcm/login",
	"/logout",
	"/register",
	"/donate",
	"/static/*",
}
