package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/controllers"
	"github.com/homehero/booking-app/middleware"
)

// SetupAnalyticsRoutes configures the admin dashboard analytics route
func SetupAnalyticsRoutes(app *fiber.App) {
	app.Get("/analytics", middleware.Protected(), middleware.RequireAdmin(), controllers.GetAnalytics)
}
