package controllers

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
)

// profileFields are the keys lifted out of the request body into real
// columns. Everything else the client sends is kept verbatim in Extra.
var profileFields = map[string]bool{
	"displayName": true,
	"phone":       true,
	"address":     true,
}

// reserved keys the client may not set at all.
var reservedProfileFields = map[string]bool{
	"id":        true,
	"userId":    true,
	"createdAt": true,
	"updatedAt": true,
	"extra":     true,
}

// UpsertProfile creates or replaces the caller's profile. The document is
// always keyed by the authenticated user id.
func UpsertProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	profile := models.Profile{UserID: userID}
	extra := map[string]interface{}{}
	for key, value := range body {
		if reservedProfileFields[key] {
			continue
		}
		if !profileFields[key] {
			extra[key] = value
			continue
		}
		s, _ := value.(string)
		switch key {
		case "displayName":
			profile.DisplayName = s
		case "phone":
			profile.Phone = s
		case "address":
			profile.Address = s
		}
	}
	if len(extra) > 0 {
		raw, err := json.Marshal(extra)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to encode profile fields",
			})
		}
		profile.Extra = datatypes.JSON(raw)
	}

	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&profile).Error
	if err != nil {
		log.Printf("Error upserting profile for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetProfile returns the profile for :uid. Only the owner or an admin may
// read it.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	uid, err := strconv.ParseUint(c.Params("uid"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	if uint(uid) != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	}

	var profile models.Profile
	if db.DB.Where("user_id = ?", uint(uid)).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	return c.JSON(profile)
}
