// Package config provides configuration management for the development server.
//
// It utilizes Viper for defaults declared in struct tags and command-line flags
// bound through pflag. The optional positional argument is the port.
// Environment variables are not read.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: port, document root, reuse-address flag, debug prefix
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.Load(cmd.Flags(), args)
//	if errors.Is(err, config.ErrInvalidArgument) {
//	    // bad port argument
//	}
//	fmt.Println(cfg.Server.Port)
package config
