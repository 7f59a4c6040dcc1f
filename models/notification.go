package models

import (
	"strconv"
	"time"
)

const (
	// AdminChannel is the shared notification channel every admin reads.
	AdminChannel = "admin"

	NotificationNewBooking   = "new_booking"
	NotificationStatusUpdate = "booking_status_update"
)

// Notification fans booking events out to a channel: either the admin
// channel or a single user's channel.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index"`
	Type      string    `json:"type"`
	BookingID uint      `json:"bookingId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserChannel returns the notification channel for a user id.
func UserChannel(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
