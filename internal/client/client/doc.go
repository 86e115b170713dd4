// Package client contains the authenticated HTTP client every backend call of
// gophtickets goes through.
//
// # Overview
//
// AuthClient.Do takes a Request descriptor and:
//  1. reads the access token from the credential store;
//  2. merges headers: Content-Type: application/json by default, caller
//     headers over the default, the bearer credential over both;
//  3. sends the request and returns any non-401 response untouched;
//  4. on 401 exchanges the stored refresh token at /auth/token/refresh/,
//     stores the new access token and reissues the request exactly once.
//
// When no refresh token is stored or the refresh fails, the client performs a
// forced logout: both tokens are cleared, the on-unauthenticated handler runs,
// and the original 401 response is returned to the caller.
//
// DoPublic sends a request with the same header handling but without the
// credential or the refresh cycle; it is used for login, registration and
// public catalogue endpoints.
//
// # Concurrency
//
// AuthClient is safe for concurrent use. Concurrent requests that hit 401
// with the same refresh token share one refresh call unless
// WithRefreshCoalescing(false) is given.
//
// # Error Handling
//
// Transport failures are returned wrapped in ErrUnavailable. Authentication
// failures are not errors at this level: the caller receives the final
// response and may map a 401 to ErrUnauthorized.
package client
