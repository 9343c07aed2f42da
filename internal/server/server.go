package server

import (
	"time"

	"github.com/flowbaker/ticket-classifier/internal/controllers"
	"github.com/flowbaker/ticket-classifier/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

type HTTPServerDependencies struct {
	ClassifyController *controllers.ClassifyController

	// DisableRequestLog turns off the access log middleware
	DisableRequestLog bool
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "ticket-classifier",
	})

	router.Use(recover.New())
	router.Use(cors.New())
	if !deps.DisableRequestLog {
		router.Use(logger.New())
	}

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "ticket-classifier",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")

	api.Post("/tickets/classify/", deps.ClassifyController.Classify)

	return router
}
