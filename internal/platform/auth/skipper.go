package auth

import "github.com/labstack/echo/v4"

// publicPaths lists infrastructure endpoints that must stay reachable
// without credentials so liveness checkers can probe them.
var publicPaths = map[string]bool{
	"/health":    true,
	"/health/db": true,
}

// AuthSkipper reports whether the request path bypasses authentication.
// Pass it as the Skipper on JWTConfig.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given path bypasses authentication.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
