package tools

import (
	"context"
	"encoding/json"

	"github.com/Sudip-8345/OmniBook-AI/internal/notify"
)

type SendEmailInput struct {
	RecipientEmail string `json:"recipient_email" jsonschema_description:"Passenger email address to notify."`
	BookingID      int64  `json:"booking_id" jsonschema_description:"Confirmed booking ID."`
	PassengerName  string `json:"passenger_name" jsonschema_description:"Passenger name for the greeting."`
}

var SendEmailInputSchema = GenerateSchema[SendEmailInput]()

// SendEmailTool delivers the booking confirmation email. Whatever happens to
// the delivery (sent, skipped, transport error) is reported as data.
func SendEmailTool(mailer *notify.Mailer) ToolDefinition {
	return ToolDefinition{
		Name:        "send_email_confirmation",
		Description: "Send a booking confirmation email to the passenger via SMTP.",
		InputSchema: SendEmailInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in SendEmailInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			status, msg := mailer.SendConfirmation(in.RecipientEmail, in.BookingID, in.PassengerName)
			return marshalJSON(map[string]any{"status": status, "message": msg})
		},
	}
}
