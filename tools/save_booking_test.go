package tools_test

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/Sudip-8345/OmniBook-AI/tools"
)

func bookingInput() tools.SaveBookingInput {
	return tools.SaveBookingInput{
		PassengerName:  "Asha Rao",
		PassengerEmail: "asha@example.com",
		PassengerPhone: "+91 98765 43210",
		PassengerAge:   34,
		TicketType:     "flight",
		TicketID:       "FL001",
		Origin:         "New York",
		Destination:    "Los Angeles",
		Date:           "2026-03-05",
		Price:          4500,
		TransactionID:  "TXN-AB12CD34",
	}
}

func TestSaveBooking_ReturnsBookingID(t *testing.T) {
	store := openStore(t)
	def := tools.SaveBookingTool(store)

	out, err := call(t, def, bookingInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gjson.Get(out, "status").String() != "saved" {
		t.Fatalf("expected saved, got %q", out)
	}
	if id := gjson.Get(out, "booking_id").Int(); id != 1 {
		t.Fatalf("expected booking_id 1, got %d", id)
	}
}

func TestSaveBooking_ThenReceipt(t *testing.T) {
	store := openStore(t)

	out, err := call(t, tools.SaveBookingTool(store), bookingInput())
	if err != nil {
		t.Fatal(err)
	}
	bookingID := gjson.Get(out, "booking_id").Int()

	receipt, err := call(t, tools.GenerateReceiptTool(store), tools.GenerateReceiptInput{BookingID: bookingID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, want := range []string{
		"OMNIBOOK AI - BOOKING RECEIPT",
		"Asha Rao",
		"FL001",
		"New York",
		"Los Angeles",
		"TXN-AB12CD34",
		"CONFIRMED",
		"COMPLETED",
	} {
		if !strings.Contains(receipt, want) {
			t.Errorf("receipt missing %q:\n%s", want, receipt)
		}
	}
}

func TestGenerateReceipt_MissingBooking(t *testing.T) {
	store := openStore(t)
	out, err := call(t, tools.GenerateReceiptTool(store), tools.GenerateReceiptInput{BookingID: 99})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "No booking found with ID #99" {
		t.Fatalf("unexpected message: %q", out)
	}
}

func TestSendEmail_SkippedWithoutCredentials(t *testing.T) {
	def := tools.SendEmailTool(unconfiguredMailer())
	out, err := call(t, def, tools.SendEmailInput{
		RecipientEmail: "asha@example.com", BookingID: 1, PassengerName: "Asha Rao",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gjson.Get(out, "status").String() != "skipped" {
		t.Fatalf("expected skipped, got %q", out)
	}
}
