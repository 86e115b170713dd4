package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophtickets/internal/logging"
)

const DefaultRefreshPath = "/auth/token/refresh/"

type Option func(*AuthClient)

func WithHTTPClient(h *http.Client) Option {
	return func(c *AuthClient) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *AuthClient) { c.log = l }
}

// WithOnUnauthenticated sets the handler run after a forced logout, e.g. to
// send the user back to the login prompt.
func WithOnUnauthenticated(fn func(ctx context.Context)) Option {
	return func(c *AuthClient) { c.onUnauthenticated = fn }
}

// WithRefreshCoalescing controls whether concurrent 401s share a single
// refresh call. Enabled by default.
func WithRefreshCoalescing(enabled bool) Option {
	return func(c *AuthClient) { c.coalesce = enabled }
}

func WithRefreshPath(path string) Option {
	return func(c *AuthClient) { c.refreshPath = path }
}
