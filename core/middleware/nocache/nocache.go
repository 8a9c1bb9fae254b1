package nocache

import "github.com/gofiber/fiber/v2"

// Header is a single response header injected on every response.
type Header struct {
	Key   string
	Value string
}

// Config defines the headers the middleware applies.
type Config struct {
	Headers []Header
}

// DefaultHeaders disable caching in browsers and HTTP/1.0 proxies.
var DefaultHeaders = []Header{
	{Key: fiber.HeaderCacheControl, Value: "no-cache, no-store, must-revalidate"},
	{Key: fiber.HeaderPragma, Value: "no-cache"},
	{Key: fiber.HeaderExpires, Value: "0"},
}

// New creates the middleware. An empty config falls back to DefaultHeaders.
// Headers are set before the chain runs so they survive error responses
// rendered by the app's ErrorHandler.
func New(config ...Config) fiber.Handler {
	cfg := Config{Headers: DefaultHeaders}
	if len(config) > 0 && len(config[0].Headers) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		Apply(c, cfg.Headers)
		return c.Next()
	}
}

// Apply sets headers on the pending response, replacing any existing values.
func Apply(c *fiber.Ctx, headers []Header) {
	for _, h := range headers {
		c.Set(h.Key, h.Value)
	}
}
