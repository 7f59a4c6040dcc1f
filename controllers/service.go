package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
	"github.com/homehero/booking-app/utils"
)

// GetAllServices returns the catalog, newest first
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Order("created_at desc").Find(&services).Error; err != nil {
		log.Printf("Error fetching services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch services",
		})
	}
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// CreateService creates a new catalog entry
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if service.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	service.ID = 0
	if err := db.DB.Create(service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service with this slug already exists",
			})
		}
		log.Printf("Error creating service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a catalog entry
func UpdateService(c *fiber.Ctx) error {
	var existing models.Service
	if db.DB.First(&existing, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt
	if service.Slug == "" {
		service.Slug = existing.Slug
	}
	if err := db.DB.Save(service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service with this slug already exists",
			})
		}
		log.Printf("Error updating service %d: %v", existing.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}
	return c.JSON(service)
}

// DeleteService deletes a catalog entry
func DeleteService(c *fiber.Ctx) error {
	var service models.Service
	if db.DB.First(&service, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		log.Printf("Error deleting service %d: %v", service.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadServiceImage replaces the catalog image for a service with an upload
// stored on Cloudinary.
func UploadServiceImage(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "An image file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadServiceImage(file, fmt.Sprintf("service-%d", service.ID))
	if err != nil {
		log.Printf("Error uploading image for service %d: %v", service.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload image",
		})
	}

	service.ImageURL = url
	if err := db.DB.Save(&service).Error; err != nil {
		log.Printf("Error saving image URL for service %d: %v", service.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image URL",
		})
	}
	return c.JSON(service)
}
