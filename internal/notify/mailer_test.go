package notify

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"
)

func TestSendConfirmation_SkippedWithoutCredentials(t *testing.T) {
	m := New("smtp.gmail.com:587", "", "")
	status, msg := m.SendConfirmation("user@example.com", 7, "Asha Rao")
	if status != StatusSkipped {
		t.Fatalf("unexpected status: %q", status)
	}
	if !strings.Contains(msg, "not configured") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestSendConfirmation_Sent(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := New("smtp.example.com:587", "agent@example.com", "secret")
	m.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	status, msg := m.SendConfirmation("user@example.com", 12, "Bo Li")
	if status != StatusSent {
		t.Fatalf("unexpected status: %q (%s)", status, msg)
	}
	if gotAddr != "smtp.example.com:587" || gotFrom != "agent@example.com" {
		t.Fatalf("unexpected send args: addr=%q from=%q", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "user@example.com" {
		t.Fatalf("unexpected recipients: %v", gotTo)
	}
	body := string(gotMsg)
	if !strings.Contains(body, "Subject: OmniBook AI - Booking Confirmation #12") {
		t.Fatalf("missing subject in message:\n%s", body)
	}
	if !strings.Contains(body, "Dear Bo Li,") || !strings.Contains(body, "/receipt/12") {
		t.Fatalf("missing body fields in message:\n%s", body)
	}
}

func TestSendConfirmation_TransportError(t *testing.T) {
	m := New("smtp.example.com:587", "agent@example.com", "secret")
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	status, msg := m.SendConfirmation("user@example.com", 3, "A")
	if status != StatusError {
		t.Fatalf("unexpected status: %q", status)
	}
	if !strings.Contains(msg, "connection refused") {
		t.Fatalf("expected transport error in message, got %q", msg)
	}
}
