package controllers

import (
	"fmt"

	"github.com/go-gomail/gomail"

	"github.com/Iwan2264/HMS/models"
)

// Mailer sends booking confirmations. A nil Mailer disables mail entirely.
type Mailer interface {
	SendConfirmation(a models.Appointment) error
}

// SMTPMailer sends confirmations through a plain SMTP account.
type SMTPMailer struct {
	Host     string
	Port     int
	Email    string
	Password string
}

// SendConfirmation mails the booked patient a plain-text summary of the
// appointment.
func (s SMTPMailer) SendConfirmation(a models.Appointment) error {
	msg := fmt.Sprintf(
		"Hi %s,\n\nYour appointment with Dr. %s has been booked for %s at %s.\n\nThank you.",
		a.PatientName, a.DoctorName, a.Date, a.Time,
	)

	// Compose email message
	m := gomail.NewMessage()
	m.SetHeader("From", s.Email)
	m.SetHeader("To", a.Contact)
	m.SetHeader("Subject", "Appointment confirmation")
	m.SetBody("text/plain", msg)

	// Dial to SMTP server and send email
	d := gomail.NewDialer(s.Host, s.Port, s.Email, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
