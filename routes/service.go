package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/controllers"
	"github.com/homehero/booking-app/middleware"
)

// SetupServiceRoutes configures all catalog related routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireAdmin(), controllers.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteService)
	service.Post("/:id/image", middleware.Protected(), middleware.RequireAdmin(), controllers.UploadServiceImage)
}
