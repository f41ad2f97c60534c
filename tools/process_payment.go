package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type ProcessPaymentInput struct {
	Amount         float64 `json:"amount" jsonschema_description:"Amount to charge in INR."`
	PassengerName  string  `json:"passenger_name" jsonschema_description:"Name on the booking."`
	PassengerEmail string  `json:"passenger_email" jsonschema_description:"Email for the payment record."`
}

var ProcessPaymentInputSchema = GenerateSchema[ProcessPaymentInput]()

var ProcessPaymentDefinition = ToolDefinition{
	Name: "process_payment_mock",
	Description: `Process a mock payment for ticket booking.
Returns a transaction ID on success. No real charges are made.`,
	InputSchema: ProcessPaymentInputSchema,
	Function:    processPayment,
}

func processPayment(ctx context.Context, input json.RawMessage) (string, error) {
	var in ProcessPaymentInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	if in.Amount <= 0 {
		return marshalJSON(map[string]any{"status": "failed", "error": "Amount must be greater than zero"})
	}

	transactionID := "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return marshalJSON(map[string]any{
		"status":         "success",
		"transaction_id": transactionID,
		"amount_charged": in.Amount,
		"passenger_name": in.PassengerName,
		"message":        fmt.Sprintf("Payment of ₹%.2f processed successfully for %s", in.Amount, in.PassengerName),
	})
}
