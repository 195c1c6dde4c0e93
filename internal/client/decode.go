package client

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// decodeBody undoes the content codings listed in the Content-Encoding
// header values, last applied first. Unknown codings stop decoding and the
// body is returned as far as it could be decoded.
func decodeBody(encodings []string, body []byte) ([]byte, error) {
	if len(body) == 0 {
		return body, nil
	}

	var codings []string
	for _, v := range encodings {
		for _, part := range strings.Split(v, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				codings = append(codings, part)
			}
		}
	}

	for i := len(codings) - 1; i >= 0; i-- {
		var (
			out []byte
			err error
		)
		switch codings[i] {
		case "identity":
			continue
		case "gzip", "x-gzip":
			out, err = gunzip(body)
		case "deflate":
			out, err = inflate(body)
		case "br":
			out, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		default:
			return body, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s body: %w", codings[i], err)
		}
		body = out
	}

	return body, nil
}

func gunzip(body []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}

// inflate handles "deflate", which servers send either zlib-wrapped (as the
// RFC says) or as a raw DEFLATE stream.
func inflate(body []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		defer func() { _ = zr.Close() }()
		if out, err := io.ReadAll(zr); err == nil {
			return out, nil
		}
	}

	fr := flate.NewReader(bytes.NewReader(body))
	defer func() { _ = fr.Close() }()
	return io.ReadAll(fr)
}
