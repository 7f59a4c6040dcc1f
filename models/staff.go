package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StaffMember is part of the admin-managed roster. Skills, certifications
// and the day-by-slot availability grid are free-form JSON columns; there is
// no scheduling link between availability and bookings.
type StaffMember struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Role           string         `json:"role"`
	Skills         datatypes.JSON `json:"skills"`
	Certifications datatypes.JSON `json:"certifications"`
	Availability   datatypes.JSON `json:"availability"`
	JobsCompleted  int            `json:"jobsCompleted"`
	Rating         float64        `json:"rating"`
	OnTimeRate     int            `json:"onTimeRate"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
