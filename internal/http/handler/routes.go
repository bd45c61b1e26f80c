package handler

import (
	"github.com/gofiber/fiber/v2"

	"hashnotes/internal/service"
)

// RegisterRoutes attaches the note routes to the provided Fiber app.
// The catch-all note route is registered last, so any fixed route
// (metrics, docs) must be added before calling this.
func RegisterRoutes(app *fiber.App, store Pinger, svc service.NoteService, maxLength int) {
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	app.Get("/", Index())

	// "/edit", "/edit/" and "/edit/<name>"
	app.Get("/edit/:name?", EditNote(svc, maxLength))
	app.Post("/edit/:name?", SubmitNote(svc))

	app.Get("/:name", ViewNote(svc))
}
