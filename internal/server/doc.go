// Package server implements the daemon side of the Unix socket protocol.
package server
