package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Reference    string         `json:"reference" gorm:"uniqueIndex"`
	UserID       uint           `json:"userId" gorm:"index"`
	ServiceID    uint           `json:"serviceId"`
	ServiceName  string         `json:"serviceName"`
	CustomerName string         `json:"customerName"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Date         string         `json:"date"` // "2006-01-02"
	Time         string         `json:"time"` // "15:04" in 24h
	Status       BookingStatus  `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate stamps the fixed initial status and a booking reference.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Reference == "" {
		b.Reference = NewBookingReference()
	}
	return nil
}

// NewBookingReference returns a short customer-facing code, e.g. "BK-9F2C41A7".
func NewBookingReference() string {
	id := uuid.New()
	return "BK-" + strings.ToUpper(id.String()[:8])
}
