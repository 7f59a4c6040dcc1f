package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers an HTML mail through the configured SMTP relay.
// Without SMTP_HOST the send is skipped so local and test runs never dial out.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("SMTP not configured, skipping email to %s (%s)", to, subject)
		return nil
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		host,
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
