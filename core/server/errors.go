package server

import "errors"

var (
	// ErrAlreadyRunning is returned by Start when the server is running.
	ErrAlreadyRunning = errors.New("server is already running")
)
