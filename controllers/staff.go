package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
)

// GetAllStaff returns the roster, newest first
func GetAllStaff(c *fiber.Ctx) error {
	var staff []models.StaffMember
	if err := db.DB.Order("created_at desc").Find(&staff).Error; err != nil {
		log.Printf("Error fetching staff: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch staff",
		})
	}
	return c.JSON(staff)
}

func GetStaffMember(c *fiber.Ctx) error {
	var member models.StaffMember
	if err := db.DB.First(&member, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}
	return c.JSON(member)
}

// CreateStaffMember adds someone to the roster
func CreateStaffMember(c *fiber.Ctx) error {
	member := new(models.StaffMember)
	if err := c.BodyParser(member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if member.Name == "" || member.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and email are required",
		})
	}

	member.ID = 0
	if err := db.DB.Create(member).Error; err != nil {
		log.Printf("Error creating staff member: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create staff member",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateStaffMember replaces a roster entry
func UpdateStaffMember(c *fiber.Ctx) error {
	var existing models.StaffMember
	if db.DB.First(&existing, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}

	member := new(models.StaffMember)
	if err := c.BodyParser(member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	member.ID = existing.ID
	member.CreatedAt = existing.CreatedAt
	if err := db.DB.Save(member).Error; err != nil {
		log.Printf("Error updating staff member %d: %v", existing.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update staff member",
		})
	}
	return c.JSON(member)
}

// DeleteStaffMember removes a roster entry
func DeleteStaffMember(c *fiber.Ctx) error {
	var member models.StaffMember
	if db.DB.First(&member, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}
	if err := db.DB.Delete(&member).Error; err != nil {
		log.Printf("Error deleting staff member %d: %v", member.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete staff member",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
