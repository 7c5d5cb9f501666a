package client

import "errors"

var (
	// The request could not be prepared for sending.
	ErrRequest = errors.New("invalid request")

	// The daemon socket could not be dialed.
	ErrUnreachable = errors.New("daemon unreachable")

	// The request-response exchange failed mid-flight.
	ErrExchange = errors.New("exchange failed")

	// The daemon reported a command failure.
	ErrDaemon = errors.New("daemon error")
)
