package serial_test

import (
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"devserve/core/middleware/serial"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew_OneRequestInFlight(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32

	app := fiber.New()
	app.Use(serial.New())
	app.Get("/", func(c *fiber.Ctx) error {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := maxInFlight.Load()
			if n <= old || maxInFlight.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return c.SendStatus(fiber.StatusNoContent)
	})

	const requests = 5
	var wg sync.WaitGroup
	statuses := make(chan int, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 5000)
			if err != nil {
				statuses <- -1
				return
			}
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, fiber.StatusNoContent, status)
	}
	assert.Equal(t, int32(1), maxInFlight.Load())
}
