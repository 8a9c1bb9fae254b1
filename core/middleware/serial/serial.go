package serial

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// New creates a middleware that runs the rest of the handler chain for one
// request at a time. The lock is released when the chain returns; fasthttp
// writes a streamed body after that, so responses may still overlap on the wire.
func New() fiber.Handler {
	var mu sync.Mutex

	return func(c *fiber.Ctx) error {
		mu.Lock()
		defer mu.Unlock()
		return c.Next()
	}
}
