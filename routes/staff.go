package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/controllers"
	"github.com/homehero/booking-app/middleware"
)

// SetupStaffRoutes configures all staff roster routes; the roster is
// admin-only in both directions.
func SetupStaffRoutes(app *fiber.App) {
	staff := app.Group("/staff", middleware.Protected(), middleware.RequireAdmin())
	staff.Get("/", controllers.GetAllStaff)
	staff.Get("/:id", controllers.GetStaffMember)
	staff.Post("/", controllers.CreateStaffMember)
	staff.Put("/:id", controllers.UpdateStaffMember)
	staff.Delete("/:id", controllers.DeleteStaffMember)
}
