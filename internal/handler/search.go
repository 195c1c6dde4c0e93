package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"webrelay/internal/service"
)

// SearchHandler serves canned search results.
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Handle answers /search/?q=.
func (h *SearchHandler) Handle(c echo.Context) error {
	resp, err := h.service.Search(c.QueryParam("q"))
	if errors.Is(err, service.ErrMissingQuery) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No search query provided",
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
