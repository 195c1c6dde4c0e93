// Package service implements the relay and mock search logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"webrelay/internal/model"
)

var (
	// ErrMethodNotAllowed is returned for any inbound method other than GET.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrMissingURL is returned when the relay request carries no target URL.
	ErrMissingURL = errors.New("no URL provided")
)

// FetchError wraps a transport-level failure of the outbound fetch
// (connection, DNS, TLS, timeout, malformed URL, body read or decode).
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch upstream: " + e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// defaultContentType is used when upstream sends no Content-Type.
const defaultContentType = "text/html"

// strippedResponseHeaders are dropped from relayed responses because the relay
// hands back a decoded, fully buffered body. Everything else passes through,
// Set-Cookie and Location included.
var strippedResponseHeaders = map[string]bool{
	"Content-Encoding":  true,
	"Content-Length":    true,
	"Transfer-Encoding": true,
}

// BrowserHeaders returns the fixed header set sent with every outbound fetch.
func BrowserHeaders() http.Header {
	return http.Header{
		"User-Agent":                {"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"},
		"Accept":                    {"text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"},
		"Accept-Language":           {"en-US,en;q=0.5"},
		"Accept-Encoding":           {"gzip, deflate"},
		"Connection":                {"keep-alive"},
		"Upgrade-Insecure-Requests": {"1"},
	}
}

// Fetcher performs a single outbound GET.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, header http.Header) (*model.UpstreamResponse, error)
}

// RelayService fetches caller-supplied URLs and prepares the relayed response.
type RelayService struct {
	fetcher Fetcher
	headers http.Header
	logger  *slog.Logger
}

// NewRelayService creates a RelayService that sends BrowserHeaders upstream.
func NewRelayService(f Fetcher, logger *slog.Logger) *RelayService {
	return &RelayService{
		fetcher: f,
		headers: BrowserHeaders(),
		logger:  logger.With("component", "relay_service"),
	}
}

// Relay validates the request, fetches the target and filters the upstream
// headers. The method is checked before the URL. Fetch failures are returned
// as *FetchError.
func (s *RelayService) Relay(rr *model.RelayRequest) (*model.RelayResponse, error) {
	if rr.Method != http.MethodGet {
		return nil, ErrMethodNotAllowed
	}
	if rr.TargetURL == "" {
		return nil, ErrMissingURL
	}

	up, err := s.fetcher.Fetch(rr.Ctx, rr.TargetURL, s.headers.Clone())
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if up == nil {
		return nil, fmt.Errorf("fetcher returned no response for %q", rr.TargetURL)
	}

	s.logger.Debug("relayed",
		"upstream_status", up.StatusCode,
		"bytes", len(up.Body),
	)

	contentType := up.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return &model.RelayResponse{
		Body:        up.Body,
		ContentType: contentType,
		Header:      filterResponseHeaders(up.Header),
	}, nil
}

func filterResponseHeaders(src http.Header) http.Header {
	dst := make(http.Header, len(src))
	for key, vals := range src {
		if strippedResponseHeaders[http.CanonicalHeaderKey(key)] {
			continue
		}
		dst[key] = append([]string(nil), vals...)
	}
	return dst
}
