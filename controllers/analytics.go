package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
)

// GetAnalytics returns the admin dashboard counts: totals per entity, a
// bookings-by-status breakdown and the bookings created in the last 7 days.
func GetAnalytics(c *fiber.Ctx) error {
	var analytics struct {
		TotalBookings    int64            `json:"totalBookings"`
		TotalServices    int64            `json:"totalServices"`
		TotalStaff       int64            `json:"totalStaff"`
		TotalCustomers   int64            `json:"totalCustomers"`
		BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
		RecentBookings   []models.Booking `json:"recentBookings"`
		LastUpdated      time.Time        `json:"lastUpdated"`
	}

	db.DB.Model(&models.Booking{}).Count(&analytics.TotalBookings)
	db.DB.Model(&models.Service{}).Count(&analytics.TotalServices)
	db.DB.Model(&models.StaffMember{}).Count(&analytics.TotalStaff)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&analytics.TotalCustomers)

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := db.DB.Model(&models.Booking{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		log.Printf("Error counting bookings by status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute analytics",
		})
	}
	analytics.BookingsByStatus = make(map[string]int64, len(counts))
	for _, sc := range counts {
		analytics.BookingsByStatus[sc.Status] = sc.Count
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := db.DB.
		Where("created_at > ?", weekAgo).
		Order("created_at desc").
		Find(&analytics.RecentBookings).Error; err != nil {
		log.Printf("Error fetching recent bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute analytics",
		})
	}

	analytics.LastUpdated = time.Now()

	return c.JSON(analytics)
}
