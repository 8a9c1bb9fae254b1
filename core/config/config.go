package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"devserve/core/logger"
	"devserve/core/server"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidArgument reports a command-line argument that cannot be used.
// It is fatal at startup and returned before any socket is opened.
var ErrInvalidArgument = errors.New("invalid argument")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
}

// Load resolves the configuration from struct-tag defaults, the flags in fs
// (may be nil) and the positional arguments. At most one argument, the port,
// is accepted. Environment variables are not consulted.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	switch len(args) {
	case 0:
	case 1:
		port, err := ParsePort(args[0])
		if err != nil {
			return nil, err
		}
		v.Set("server.port", port)
	default:
		return nil, fmt.Errorf("%w: expected at most one argument (port), got %d", ErrInvalidArgument, len(args))
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ParsePort parses a base-10 TCP port number.
func ParsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: port %q is not an integer", ErrInvalidArgument, arg)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w: port %d out of range 0-65535", ErrInvalidArgument, port)
	}
	return port, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
