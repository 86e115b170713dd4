// Package common contains shared constants and sentinel errors used across
// gophtickets components.
package common

// Keys under which credentials are kept in the credential store.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Header names set on outbound API requests.
const (
	AuthorizationHeader = "Authorization"
	ContentTypeHeader   = "Content-Type"
	RequestIDHeader     = "X-Request-Id"

	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
)
