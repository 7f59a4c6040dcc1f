package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
	"github.com/homehero/booking-app/utils"
)

// notificationFeedCap bounds every feed read; older read notifications fall
// off the end.
const notificationFeedCap = 50

// callerChannel maps the authenticated caller to their notification channel.
// Admins read the shared admin channel.
func callerChannel(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return "", false
	}
	if role, _ := c.Locals("role").(string); role == models.RoleAdmin {
		return models.AdminChannel, true
	}
	return models.UserChannel(userID), true
}

// GetNotifications returns the caller's channel, unread first then newest
// first, capped at 50.
func GetNotifications(c *fiber.Ctx) error {
	channel, ok := callerChannel(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "User ID not found in context",
		})
	}

	notifications, err := ListNotifications(channel)
	if err != nil {
		log.Printf("Error fetching notifications for %s: %v", channel, err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to fetch notifications",
		})
	}
	return c.JSON(notifications)
}

// ListNotifications is the shared query behind the REST endpoint and the
// websocket feed.
func ListNotifications(channel string) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0, notificationFeedCap)
	err := db.DB.
		Where("user_id = ?", channel).
		Order("read asc").
		Order("created_at desc").
		Limit(notificationFeedCap).
		Find(&notifications).Error
	return notifications, err
}

// MarkNotificationsRead flips read on the given ids in one batched update.
// The update is scoped to the caller's channel, so ids belonging to someone
// else are silently skipped rather than flipped.
func MarkNotificationsRead(c *fiber.Ctx) error {
	channel, ok := callerChannel(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "User ID not found in context",
		})
	}

	type MarkReadInput struct {
		NotificationIDs []uint `json:"notificationIds"`
	}
	input := new(MarkReadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Failed to parse request body",
		})
	}
	if len(input.NotificationIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "notificationIds is required",
		})
	}

	result := db.DB.Model(&models.Notification{}).
		Where("id IN ? AND user_id = ?", input.NotificationIDs, channel).
		Update("read", true)
	if result.Error != nil {
		log.Printf("Error marking notifications read for %s: %v", channel, result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to mark notifications read",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"updated": result.RowsAffected,
	})
}
