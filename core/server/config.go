package server

import (
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the static HTTP server.
// It is resolved once at startup and never mutated afterwards.
type Config struct {
	// Port is the TCP port to listen on. Zero asks the OS for a free port.
	Port int `mapstructure:"port" default:"8080"`
	// DocumentRoot is the directory static files are served from.
	DocumentRoot string `mapstructure:"document_root" default:"web-root"`
	// ReuseAddress sets SO_REUSEADDR on the listening socket so a restarted
	// server can rebind while old connections linger in TIME_WAIT.
	ReuseAddress bool `mapstructure:"reuse_address" default:"true"`
	// DebugPrefix is the raw path prefix whose requests are answered with the root document.
	DebugPrefix string `mapstructure:"debug_prefix" default:"/debug/"`
	// Serial forces requests to be handled one at a time.
	Serial bool `mapstructure:"serial" default:"true"`
	// ShutdownTimeoutSeconds bounds how long shutdown waits for the in-flight request.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Addr returns the listen address on all interfaces.
func (c Config) Addr() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}

// ShutdownTimeout returns the shutdown grace period, falling back to 5s when unset.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
