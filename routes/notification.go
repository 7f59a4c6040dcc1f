package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/controllers"
	"github.com/homehero/booking-app/middleware"
)

// SetupNotificationRoutes configures the notification endpoints and the live
// websocket feed.
func SetupNotificationRoutes(app *fiber.App) {
	notification := app.Group("/notifications", middleware.Protected())
	notification.Get("/", controllers.GetNotifications)
	notification.Post("/mark-read", controllers.MarkNotificationsRead)

	notification.Get("/feed", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}, websocket.New(controllers.NotificationFeedHandler()))
}
