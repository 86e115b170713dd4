package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Request describes an outgoing API call. Body is kept as bytes so that the
// request can be reissued verbatim after a token refresh.
type Request struct {
	Method string
	// Target is an absolute URL or a path relative to the client's base URL.
	Target string
	Header http.Header
	Body   []byte
}

// NewJSONRequest builds a Request whose body is payload encoded as JSON.
// A nil payload produces a request without a body.
func NewJSONRequest(method, target string, payload any) (Request, error) {
	r := Request{Method: method, Target: target}
	if payload == nil {
		return r, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("encode request body: %w", err)
	}
	r.Body = body
	return r, nil
}
