// Package services contains application services for the GophTickets client.
// Each service wraps a group of backend endpoints, validates input with the
// forms package before any request is issued, and turns non-2xx responses
// into *APIError values carrying the backend's message.
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/common"
)

const maxBodySize = 1 << 20

// APIError is a business failure reported by the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap lets callers match a missing resource with errors.Is(err, common.ErrNotFound).
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return common.ErrNotFound
	}
	return nil
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func readBody(resp *http.Response) []byte {
	defer resp.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	return b
}

// decodeJSON reads the whole body into v. An empty body leaves v untouched.
func decodeJSON(resp *http.Response, v any) error {
	b := readBody(resp)
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError builds an *APIError from a failed response, taking the message
// from the first non-empty string under one of keys.
func apiError(resp *http.Response, fallback string, keys ...string) *APIError {
	body := readBody(resp)

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, k := range keys {
			if s, isStr := fields[k].(string); isStr && s != "" {
				return &APIError{Status: resp.StatusCode, Message: s}
			}
		}
	}
	return &APIError{Status: resp.StatusCode, Message: fallback}
}

// authorized turns a final 401 from an authenticated call into
// client.ErrUnauthorized. The client has already logged the user out by then.
func authorized(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		_ = readBody(resp)
		return client.ErrUnauthorized
	}
	return nil
}

// flattenValues joins every value of a JSON object in document order,
// expanding arrays one level. Field error maps like
// {"username": ["taken"], "email": ["invalid"]} become "taken invalid".
func flattenValues(body []byte) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	if t, err := dec.Token(); err != nil || t != json.Delim('{') {
		return ""
	}

	var parts []string
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			break
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			break
		}
		parts = append(parts, flattenValue(raw)...)
	}
	return strings.Join(parts, " ")
}

func flattenValue(raw json.RawMessage) []string {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, scalar(item))
		}
		return out
	}
	return []string{scalar(raw)}
}

func scalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
