package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
)

type GenerateReceiptInput struct {
	BookingID int64 `json:"booking_id" jsonschema_description:"Booking ID returned by save_booking_to_db."`
}

var GenerateReceiptInputSchema = GenerateSchema[GenerateReceiptInput]()

// GenerateReceiptTool renders the fixed-width text receipt for a completed
// booking.
func GenerateReceiptTool(store *bookingdb.Store) ToolDefinition {
	return ToolDefinition{
		Name: "generate_receipt",
		Description: `Generate a formatted receipt for a completed booking.
Use the booking_id returned from save_booking_to_db.`,
		InputSchema: GenerateReceiptInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in GenerateReceiptInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}

			data, err := store.Receipt(ctx, in.BookingID)
			if err != nil {
				return "", err
			}
			if data == nil {
				return fmt.Sprintf("No booking found with ID #%d", in.BookingID), nil
			}
			return formatReceipt(data), nil
		},
	}
}

func formatReceipt(d *bookingdb.Receipt) string {
	receipt := fmt.Sprintf(`
========================================
     OMNIBOOK AI - BOOKING RECEIPT
========================================
Booking ID    : #%d
Date Booked   : %s
Status        : %s
----------------------------------------
PASSENGER DETAILS
  Name        : %s
  Email       : %s
  Phone       : %s
  Age         : %d
----------------------------------------
TICKET DETAILS
  Type        : %s
  Ticket ID   : %s
  From        : %s
  To          : %s
  Date        : %s
----------------------------------------
PAYMENT DETAILS
  Amount      : $%.2f
  Transaction : %s
  Pay Status  : %s
========================================
 Thank you for booking with OmniBook AI!
========================================`,
		d.BookingID, d.CreatedAt, strings.ToUpper(d.Status),
		d.PassengerName, d.Email, d.Phone, d.Age,
		strings.ToUpper(d.TicketType), d.TicketID, d.Origin, d.Destination, d.Date,
		d.Price, d.TransactionID, strings.ToUpper(d.PaymentStatus))
	return strings.TrimSpace(receipt)
}
