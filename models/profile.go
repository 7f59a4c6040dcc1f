package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is keyed one-per-user; UserID always equals the owner. Fields the
// API doesn't model explicitly land in Extra.
type Profile struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"userId" gorm:"uniqueIndex"`
	DisplayName string         `json:"displayName"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Extra       datatypes.JSON `json:"extra,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
