package rayid

import (
	"devserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New creates the middleware storing a fresh RayID in the fiber locals
// under logger.RayIDKey. The id is not echoed in the response, so repeated
// requests get identical responses.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, uuid.NewString())
		return c.Next()
	}
}
