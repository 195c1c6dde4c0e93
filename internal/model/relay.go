// Package model defines shared types for the relay.
package model

import (
	"context"
	"net/http"
)

// RelayRequest is an inbound call asking the relay to fetch TargetURL.
type RelayRequest struct {
	Ctx       context.Context
	Method    string
	TargetURL string
}

// UpstreamResponse is the fully read, content-decoded result of an outbound fetch.
type UpstreamResponse struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
}

// RelayResponse is what the relay writes back to the caller on success.
type RelayResponse struct {
	Body        []byte
	ContentType string
	Header      http.Header
}
