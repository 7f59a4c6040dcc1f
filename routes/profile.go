package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/controllers"
	"github.com/homehero/booking-app/middleware"
)

// SetupProfileRoutes configures all profile related routes
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profiles", middleware.Protected())
	profile.Post("/", controllers.UpsertProfile)
	profile.Get("/:uid", controllers.GetProfile)
}
