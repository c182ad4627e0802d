// Package testutil builds minimal Fiber apps for handler tests.
package testutil

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/httpx/kit"
)

// Mount registers a slice of routes on an app.
type Mount func(*fiber.App)

// NewApp returns a Fiber app wired with the production error handler and the
// given mounts, so a test exercises only the routes it cares about.
func NewApp(mounts ...Mount) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	for _, mount := range mounts {
		if mount != nil {
			mount(app)
		}
	}
	return app
}
