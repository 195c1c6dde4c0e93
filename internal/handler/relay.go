package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"webrelay/internal/client"
	"webrelay/internal/model"
	"webrelay/internal/service"
)

// RelayHandler serves /proxy/: it fetches the url query parameter and hands
// the upstream body and headers back to the caller.
type RelayHandler struct {
	service *service.RelayService
	logger  *slog.Logger
}

// NewRelayHandler creates a RelayHandler.
func NewRelayHandler(svc *service.RelayService, logger *slog.Logger) *RelayHandler {
	return &RelayHandler{
		service: svc,
		logger:  logger.With("component", "relay_handler"),
	}
}

// Handle relays one request. A completed fetch always answers 200, whatever
// status upstream returned.
func (h *RelayHandler) Handle(c echo.Context) error {
	req := c.Request()

	rr := &model.RelayRequest{
		Ctx:       req.Context(),
		Method:    req.Method,
		TargetURL: c.QueryParam("url"),
	}

	resp, err := h.service.Relay(rr)
	if err != nil {
		return h.mapError(c, err)
	}

	header := c.Response().Header()
	for key, vals := range resp.Header {
		header.Del(key)
		for _, v := range vals {
			header.Add(key, v)
		}
	}
	header.Set(echo.HeaderContentType, resp.ContentType)

	return c.Blob(http.StatusOK, resp.ContentType, resp.Body)
}

func (h *RelayHandler) mapError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrMethodNotAllowed) {
		return c.JSON(http.StatusMethodNotAllowed, map[string]string{
			"error": "Method not allowed",
		})
	}

	if errors.Is(err, service.ErrMissingURL) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No URL provided",
		})
	}

	var fe *service.FetchError
	if errors.As(err, &fe) {
		h.logger.Warn("fetch failed",
			"err", fe.Err,
			"reason", client.Reason(fe.Err),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch URL: " + fe.Err.Error(),
		})
	}

	h.logger.Error("relay error", "err", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "Unexpected error: " + err.Error(),
	})
}
