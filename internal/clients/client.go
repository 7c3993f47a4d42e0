// Package clients provides the client-side driver of the squelch filter.
// A client owns the input streams end to end: it opens them, runs each one
// through the suppression filter and reports statistics along the way.
package clients

import "context"

// Client is the interface all squelch clients implement.
type Client interface {
	// Start initiates the client operation. The statsCh channel delivers
	// interrupt-driven statistics display requests (Ctrl+C). Returns the
	// process exit status.
	Start(ctx context.Context, statsCh <-chan string) int
}
