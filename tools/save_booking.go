package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
)

type SaveBookingInput struct {
	PassengerName  string  `json:"passenger_name" jsonschema_description:"Validated passenger name."`
	PassengerEmail string  `json:"passenger_email" jsonschema_description:"Validated passenger email."`
	PassengerPhone string  `json:"passenger_phone" jsonschema_description:"Validated passenger phone."`
	PassengerAge   int     `json:"passenger_age" jsonschema_description:"Validated passenger age."`
	TicketType     string  `json:"ticket_type" jsonschema_description:"flight, train, or movie."`
	TicketID       string  `json:"ticket_id" jsonschema_description:"ID of the selected ticket."`
	Origin         string  `json:"origin" jsonschema_description:"Departure city, or city for movies."`
	Destination    string  `json:"destination" jsonschema_description:"Arrival city, or N/A for movies."`
	Date           string  `json:"date" jsonschema_description:"Travel date."`
	Price          float64 `json:"price" jsonschema_description:"Ticket price in INR."`
	TransactionID  string  `json:"transaction_id" jsonschema_description:"Transaction ID from process_payment_mock."`
}

var SaveBookingInputSchema = GenerateSchema[SaveBookingInput]()

// SaveBookingTool persists a confirmed booking: user row, booking row,
// payment row, in that order. Store failures come back as an in-band error
// status, not a handler error, so the model can tell the user what happened.
func SaveBookingTool(store *bookingdb.Store) ToolDefinition {
	return ToolDefinition{
		Name: "save_booking_to_db",
		Description: `Save a confirmed booking to the database.
Call this after payment is processed successfully.
Returns the booking ID for receipt generation.`,
		InputSchema: SaveBookingInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in SaveBookingInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}

			userID, err := store.CreateUser(ctx, in.PassengerName, in.PassengerEmail, in.PassengerPhone, in.PassengerAge)
			if err != nil {
				return marshalJSON(map[string]any{"status": "error", "message": err.Error()})
			}
			bookingID, err := store.CreateBooking(ctx, userID, in.TicketType, in.TicketID, in.Origin, in.Destination, in.Date, in.Price, in.TransactionID)
			if err != nil {
				return marshalJSON(map[string]any{"status": "error", "message": err.Error()})
			}
			if _, err := store.CreatePayment(ctx, bookingID, in.Price, in.TransactionID, "completed"); err != nil {
				return marshalJSON(map[string]any{"status": "error", "message": err.Error()})
			}

			return marshalJSON(map[string]any{
				"status":     "saved",
				"booking_id": bookingID,
				"message":    fmt.Sprintf("Booking #%d saved successfully for %s", bookingID, in.PassengerName),
			})
		},
	}
}
