// Package server owns the listening side of the development server.
//
// It defines the server configuration (port, document root, reuse-address flag,
// debug prefix), binds the listening socket and runs the fiber app on it until
// the process is interrupted.
//
// # Listener
//
// Listen binds on all interfaces. With ReuseAddress set, SO_REUSEADDR is applied
// before bind so a restarted server does not fail with "address already in use"
// while sockets of the previous instance linger. Bind failures are reported as
// *BindError.
//
// # Usage
//
//	ln, err := server.Listen(ctx, cfg.Server)
//	if err != nil {
//	    return err
//	}
//	return server.Run(ctx, app, ln, cfg.Server.ShutdownTimeout(), logg)
package server
