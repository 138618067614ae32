// Package netcheck probes network reachability before a fetch is attempted.
package netcheck

import (
	"context"
	"net"
	"time"
)

// Checker reports whether the host behind the given address is reachable.
// The address is in host:port form as produced by the fetcher.
type Checker interface {
	Online(ctx context.Context, address string) bool
}

// Always reports every address as reachable. It mirrors the behavior of the
// original connectivity gate and is the default checker.
type Always struct{}

func (Always) Online(context.Context, string) bool { return true }

// Dialer checks reachability by opening a TCP connection to the address.
type Dialer struct {
	timeout time.Duration
}

// NewDialer creates a Dialer with the given probe timeout. A non-positive
// timeout falls back to 3 seconds.
func NewDialer(timeout time.Duration) *Dialer {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Dialer{timeout: timeout}
}

func (d *Dialer) Online(ctx context.Context, address string) bool {
	dialer := net.Dialer{Timeout: d.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
