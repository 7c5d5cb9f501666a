package server

import "errors"

// Daemon-side failure while serving the socket.
var ErrServer = errors.New("server error")
