package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/desktop.html
var desktopPage []byte

// DesktopHandler serves the static browser page at /.
type DesktopHandler struct{}

// NewDesktopHandler creates a DesktopHandler.
func NewDesktopHandler() *DesktopHandler {
	return &DesktopHandler{}
}

// Index renders the page.
func (h *DesktopHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, desktopPage)
}
