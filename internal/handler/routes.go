package handler

import (
	"github.com/labstack/echo/v4"

	"webrelay/internal/middleware"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
// Relayed responses carry upstream headers as-is, so the security headers
// middleware is attached only to the relay's own pages.
func RegisterRoutes(e *echo.Echo, relay *RelayHandler, search *SearchHandler, desktop *DesktopHandler, health *HealthHandler) {
	secure := middleware.SecurityHeaders()

	e.GET("/", desktop.Index, secure)
	e.GET("/search", search.Handle, secure)
	e.GET("/search/", search.Handle, secure)
	e.GET("/healthz", health.Healthz, secure)
	e.GET("/relay/status", health.Status, secure)

	// Any only covers the standard methods; RouteNotFound on the same path
	// catches the rest so the relay itself answers every method.
	for _, p := range []string{"/proxy", "/proxy/"} {
		e.Any(p, relay.Handle)
		e.RouteNotFound(p, relay.Handle)
	}
}
