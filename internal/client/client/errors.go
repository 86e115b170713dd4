package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRefreshRejected = errors.New("token refresh rejected")
	ErrEmptyTarget     = errors.New("request target is empty")
)
