package static

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     Config
	logger  *zap.Logger
	handler *Handler
}

// NewFeature creates a new static file feature.
func NewFeature(cfg Config, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, logger: logger, handler: NewHandler(cfg, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes. A missing document root is only
// reported: every request will 404 until the directory appears.
func (f *Feature) Load(app fiber.Router) error {
	if info, err := os.Stat(f.cfg.Root); err != nil || !info.IsDir() {
		f.logger.Warn("Document root is not a directory", zap.String("root", f.cfg.Root), zap.Error(err))
	}
	f.handler.RegisterRoutes(app)
	return nil
}
