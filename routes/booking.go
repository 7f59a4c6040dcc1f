package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/controllers"
	"github.com/homehero/booking-app/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Post("/", controllers.CreateBooking)
	booking.Get("/", controllers.GetBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Patch("/:id/status", middleware.RequireAdmin(), controllers.UpdateBookingStatus)
	booking.Delete("/:id", middleware.RequireAdmin(), controllers.DeleteBooking)
}
