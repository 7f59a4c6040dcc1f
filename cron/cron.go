package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
	"github.com/homehero/booking-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Hourly is plenty: bookings carry a date, not an exact timestamp.
	_, err := c.AddFunc("0 * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders emails every customer with a confirmed booking
// scheduled for tomorrow.
func sendBookingReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.
		Where("status = ? AND date = ?", models.StatusConfirmed, tomorrow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if booking.Email == "" {
			continue
		}
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.ServiceName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>The HomeHero Team</p>
	`, booking.CustomerName, booking.ServiceName, booking.Date, booking.Time,
		booking.Address, booking.Reference)

	return utils.SendEmail(booking.Email, subject, body)
}
