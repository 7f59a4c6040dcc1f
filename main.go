package main

import (
	"flag"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/homehero/booking-app/cron"
	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/redis"
	"github.com/homehero/booking-app/routes"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations and the admin seed, then exit")
	flag.Parse()

	if *migrate {
		db.Migrate()
		return
	}

	app := fiber.New()
	db.Init()
	redis.Init()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupAnalyticsRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
