package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"devserve/core/config"
	"devserve/core/loader"
	"devserve/core/logger"
	"devserve/core/server"
	"devserve/feature/static"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// run resolves the configuration, binds the listener and serves until
// SIGINT or SIGTERM. Invalid arguments fail before any socket is opened.
func run(ctx context.Context, flags *pflag.FlagSet, args []string) error {
	// 1. Load Configuration
	cfg, err := config.Load(flags, args)
	if err != nil {
		return err
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()
	zap.ReplaceGlobals(logg)

	// 3. Register Features
	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(static.Config{
		Root:        cfg.Server.DocumentRoot,
		DebugPrefix: cfg.Server.DebugPrefix,
	}, logg))

	// 4. Initialize Fiber App
	app, err := server.NewApp(cfg.Server, logg, mgr)
	if err != nil {
		return err
	}

	// 5. Bind
	ln, err := server.Listen(ctx, cfg.Server)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	logg.Info("Serving static files",
		zap.Int("port", port),
		zap.String("root", cfg.Server.DocumentRoot),
		zap.String("addr", ln.Addr().String()),
	)

	// 6. Serve until interrupted
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, app, ln, cfg.Server.ShutdownTimeout(), logg)
}
