package server

import (
	"context"
	"fmt"
	"net"
)

// BindError reports that the listening socket could not be bound.
// It is fatal at startup.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Listen binds a TCP listener on all interfaces at cfg.Port.
// When cfg.ReuseAddress is set, SO_REUSEADDR is applied before bind.
func Listen(ctx context.Context, cfg Config) (net.Listener, error) {
	lc := net.ListenConfig{}
	if cfg.ReuseAddress {
		lc.Control = reuseAddrControl
	}

	addr := cfg.Addr()
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return ln, nil
}
