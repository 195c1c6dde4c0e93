package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"webrelay/internal/client"
	"webrelay/internal/config"
	"webrelay/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(timeoutSeconds int) *config.Config {
	return &config.Config{
		Relay: config.RelayConfig{
			TimeoutSeconds:  timeoutSeconds,
			IdleConnections: 10,
			MaxRedirects:    30,
		},
	}
}

func newTestRelayHandler(cfg *config.Config) *RelayHandler {
	logger := discardLogger()
	fc := client.NewFetchClient(cfg, logger, nil)
	return NewRelayHandler(service.NewRelayService(fc, logger), logger)
}

// newTestEcho returns an Echo instance with every route registered.
func newTestEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(discardLogger())
	RegisterRoutes(e,
		newTestRelayHandler(cfg),
		NewSearchHandler(service.NewSearchService()),
		NewDesktopHandler(),
		NewHealthHandler(cfg, "test"),
	)
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return body["error"]
}
