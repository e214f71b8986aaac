package handler

import (
	"github.com/gofiber/fiber/v2"

	"formapi/internal/service"
)

// NewApp builds the Fiber application with the standardized error handler. bodyLimit caps
// request bodies in bytes; a non-positive value keeps Fiber's 4 MiB default.
func NewApp(bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
		BodyLimit:    bodyLimit,
	})
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static segments under /form-structures are registered before /:id so they are not read as ids.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.FormStructureService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	forms := app.Group("/form-structures")
	forms.Get("/", ListFormStructures(svc))
	forms.Post("/", CreateFormStructure(svc))
	forms.Get("/search", SearchFormStructures(svc))
	forms.Get("/summary", ListFormSummaries(svc))
	forms.Get("/:id", GetFormStructure(svc))
	forms.Put("/:id", UpdateFormStructure(svc))
	forms.Delete("/:id", DeleteFormStructure(svc))
	forms.Post("/:id/export", ExportFormStructure(svc))
}
