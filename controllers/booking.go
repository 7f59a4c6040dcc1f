package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
	"github.com/homehero/booking-app/redis"
	"github.com/homehero/booking-app/utils"
)

// CreateBooking persists a booking for the caller. The owning user id always
// comes from the verified token, never from the request body, and the booking
// plus the admin notification are written in one transaction so a storage
// failure can't leave a booking without its notification.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "User ID not found in context",
		})
	}

	booking := new(models.Booking)
	if err := c.BodyParser(booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Failed to parse request body",
		})
	}

	if booking.ServiceID == 0 && booking.ServiceName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "A service is required",
		})
	}
	if booking.Date == "" || booking.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Date and time are required",
		})
	}

	// Canonicalize the service reference: an id wins over a free-text name.
	if booking.ServiceID != 0 {
		var service models.Service
		if err := db.DB.First(&service, booking.ServiceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Error: "Service not found",
			})
		}
		booking.ServiceName = service.Title
	}

	// Server-stamped fields; whatever the client sent here is discarded.
	booking.ID = 0
	booking.UserID = userID
	booking.Status = models.StatusPending
	booking.Reference = ""
	booking.CreatedAt = time.Time{}
	booking.UpdatedAt = time.Time{}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		notification := models.Notification{
			UserID:    models.AdminChannel,
			Type:      models.NotificationNewBooking,
			BookingID: booking.ID,
			Message:   fmt.Sprintf("New booking received for %s", booking.ServiceName),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to create booking",
		})
	}

	redis.PublishNotificationEvent(models.AdminChannel)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBookings returns the caller's bookings, or every booking for an admin,
// newest first.
func GetBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	query := db.DB.Model(&models.Booking{})
	if role != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		log.Printf("Error fetching bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns a single booking to its owner or an admin.
func GetBooking(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Booking not found",
		})
	}

	if booking.UserID != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Error: "Forbidden",
		})
	}

	return c.JSON(booking)
}

// UpdateBookingStatus moves a booking to a new status. A real change writes
// exactly one notification to the booking's owner in the same transaction;
// re-submitting the current status writes none. The feed publish and the
// customer email happen after commit and are best-effort.
func UpdateBookingStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Failed to parse request body",
		})
	}
	if !models.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: fmt.Sprintf("Invalid status %q", input.Status),
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Booking not found",
		})
	}

	if booking.Status == input.Status {
		return c.JSON(booking)
	}

	booking.Status = input.Status
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		notification := models.Notification{
			UserID:    models.UserChannel(booking.UserID),
			Type:      models.NotificationStatusUpdate,
			BookingID: booking.ID,
			Message:   fmt.Sprintf("Your booking status has been updated to %s", booking.Status),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		log.Printf("Error updating booking %d status: %v", booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to update booking",
		})
	}

	redis.PublishNotificationEvent(models.UserChannel(booking.UserID))
	sendStatusEmail(&booking)

	return c.JSON(booking)
}

// DeleteBooking soft-deletes a booking.
func DeleteBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if db.DB.First(&booking, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Booking not found",
		})
	}
	if err := db.DB.Delete(&booking).Error; err != nil {
		log.Printf("Error deleting booking %d: %v", booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to delete booking",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sendStatusEmail mails the customer about the new status. Failures are
// logged only.
func sendStatusEmail(booking *models.Booking) {
	if booking.Email == "" {
		return
	}
	subject := fmt.Sprintf("Booking %s: %s", booking.Reference, booking.Status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking status has been updated to <strong>%s</strong>.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The HomeHero Team</p>
	`, booking.CustomerName, booking.Status, booking.ServiceName,
		booking.Date, booking.Time, booking.Reference)

	if err := utils.SendEmail(booking.Email, subject, body); err != nil {
		log.Printf("Failed to send status email for booking %d: %v", booking.ID, err)
	}
}
