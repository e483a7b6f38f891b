package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote store rejects the bearer
	// token attached to a request.
	ErrUnauthorized = errors.New("remote store unauthorized")

	// ErrRemoteUnavailable is returned when the remote store answers with a
	// 5xx status. Transport-level failures (timeouts, refused connections)
	// are surfaced as the driver error instead.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)
