// Package client implements the CLI side of the daemon protocol.
package client
