// Package notify sends the plain-text booking confirmation email.
//
// Delivery never fails the booking flow: missing SMTP credentials report
// "skipped" and transport failures report "error", both as data the caller
// folds into a tool result.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

type Mailer struct {
	addr     string // host:port
	email    string
	password string

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(addr, email, password string) *Mailer {
	return &Mailer{addr: addr, email: email, password: password, sendMail: smtp.SendMail}
}

// SendConfirmation emails the passenger their booking confirmation and
// returns the delivery status plus a human-readable message.
func (m *Mailer) SendConfirmation(recipient string, bookingID int64, passengerName string) (Status, string) {
	if m.email == "" || m.password == "" {
		return StatusSkipped, "SMTP credentials not configured. Email not sent."
	}

	subject := fmt.Sprintf("OmniBook AI - Booking Confirmation #%d", bookingID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking #%d has been confirmed!\n\nYou can view your receipt at: http://localhost:8000/receipt/%d\n\nThank you for using OmniBook AI!\n\nBest regards,\nOmniBook AI Team",
		passengerName, bookingID, bookingID)

	msg := strings.Join([]string{
		"From: " + m.email,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	host := m.addr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	auth := smtp.PlainAuth("", m.email, m.password, host)
	if err := m.sendMail(m.addr, auth, m.email, []string{recipient}, []byte(msg)); err != nil {
		return StatusError, fmt.Sprintf("Failed to send email: %v", err)
	}
	return StatusSent, fmt.Sprintf("Confirmation email sent to %s", recipient)
}
