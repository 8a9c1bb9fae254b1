// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development (console)
// and a production (json) encoding, always written to stdout, and integrates
// with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID placed in the Fiber locals by the
// rayid middleware and attaches it to the log entry, so lines emitted while
// serving one request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Serving static files")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("File could not be served", zap.Error(err))
package logger
