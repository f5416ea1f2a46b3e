package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// Body size limits for JSON requests
const (
	MaxPostBodyBytes  = 1 << 20
	MaxSmallBodyBytes = 100 * 1024
)

// ErrInvalidParam is returned when a path parameter is missing or malformed
var ErrInvalidParam = errors.New("invalid path parameter")

type envelope struct {
	ReturnData interface{} `json:"returnData"`
	Message    string      `json:"message,omitempty"`
}

// WriteSuccess writes a 200 response wrapped in the returnData/message envelope
func WriteSuccess(w http.ResponseWriter, r *http.Request, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope{ReturnData: data, Message: message}); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("failed to encode response")
	}
}

// DecodeJSON reads a JSON body of at most maxBytes into dst
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// PathInt64 parses a strictly positive integer path parameter
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return id, nil
}

// PathString returns a path parameter with percent-escapes decoded. chi
// matches against r.URL.RawPath when the request has one, and against the
// already decoded r.URL.Path otherwise.
func PathString(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
