package server

import (
	"errors"

	"devserve/core/loader"
	"devserve/core/logger"
	"devserve/core/middleware/nocache"
	"devserve/core/middleware/rayid"
	"devserve/core/middleware/serial"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the fiber app: RayID first so every log line is tagged, then
// request serialisation, header injection and finally the features.
func NewApp(cfg Config, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We will log our own startup message
		CaseSensitive:         true,
		ErrorHandler:          ErrorHandler(logg, nocache.DefaultHeaders),
	})

	app.Use(rayid.New())
	if cfg.Serial {
		app.Use(serial.New())
	}
	app.Use(nocache.New(nocache.Config{Headers: nocache.DefaultHeaders}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Debug("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

// ErrorHandler renders errors as plain-text responses. *fiber.Error keeps its
// code and message; anything else becomes a bare 500 so file system details
// stay in the log. The given headers are applied again in case the failing
// handler replaced them.
func ErrorHandler(logg *zap.Logger, headers []nocache.Header) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := fiber.ErrInternalServerError.Message

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		l := logger.WithRayID(logg, c)
		if code >= fiber.StatusInternalServerError {
			l.Error("Request failed", zap.String("path", c.OriginalURL()), zap.Int("status", code), zap.Error(err))
		} else {
			l.Debug("Request rejected", zap.String("path", c.OriginalURL()), zap.Int("status", code))
		}

		nocache.Apply(c, headers)
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}
}
