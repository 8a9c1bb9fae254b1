package nocache_test

import (
	"net/http/httptest"
	"testing"

	"devserve/core/middleware/nocache"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(nocache.New())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.ErrInternalServerError
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Success", "/ok", fiber.StatusOK},
		{"HandlerError", "/fail", fiber.StatusInternalServerError},
		{"NoRoute", "/nowhere", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
			assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
			assert.Equal(t, "0", resp.Header.Get("Expires"))
		})
	}
}

func TestNew_CustomHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(nocache.New(nocache.Config{Headers: []nocache.Header{{Key: "X-Test", Value: "1"}}}))
	app.Get("/", func(c *fiber.Ctx) error {
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Header.Get("X-Test"))
	assert.Empty(t, resp.Header.Get("Pragma"))
}

func TestApply_OverridesExisting(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		nocache.Apply(c, nocache.DefaultHeaders)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"no-cache, no-store, must-revalidate"}, resp.Header.Values("Cache-Control"))
}
