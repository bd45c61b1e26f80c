package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hashnotes/internal/config"
	"hashnotes/internal/http/views"
)

// NewConfig returns the Fiber configuration shared by the server and tests:
// embedded views with the page layout and the standard error handler.
// Values read from the request outlive the handler in spans and metrics,
// so the app runs Immutable.
func NewConfig(cfg config.ServerConfig) fiber.Config {
	return fiber.Config{
		AppName:      "hashnotes",
		Immutable:    true,
		Views:        views.New(),
		ViewsLayout:  views.Layout,
		ErrorHandler: ErrorHandler(),
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
	}
}
