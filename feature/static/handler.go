package static

import (
	"net/http"

	"devserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// Config holds the settings the handler needs.
type Config struct {
	// Root is the document root directory.
	Root string
	// DebugPrefix is the raw path prefix answered with the root document.
	DebugPrefix string
}

// Handler serves files from the document root.
type Handler struct {
	cfg    Config
	fs     http.FileSystem
	logger *zap.Logger
}

// NewHandler creates a new static file handler.
func NewHandler(cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		fs:     http.Dir(cfg.Root),
		logger: logger,
	}
}

// RegisterRoutes registers the catch-all file route. GET routes also answer HEAD.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleFile)
}

// HandleFile resolves the request to a file under the document root and sends it.
// The request itself is never modified; the debug rewrite only changes which
// path is opened.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	raw := c.OriginalURL()
	target, rewritten := EffectivePath(raw, string(c.Request().URI().Path()), h.cfg.DebugPrefix)

	l := logger.WithRayID(h.logger, c)
	if rewritten {
		l.Info("Debug path rewritten to document root", zap.String("path", raw))
	} else {
		l.Debug("Serving file", zap.String("method", c.Method()), zap.String("path", raw))
	}

	// Not-exist maps to 404 and a directory without index.html to 403.
	// Any other open or stat failure reaches the app ErrorHandler as a 500.
	return filesystem.SendFile(c, h.fs, target)
}
