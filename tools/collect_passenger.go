package tools

import (
	"context"
	"encoding/json"
	"strings"
)

type CollectPassengerInput struct {
	Name  string `json:"name" jsonschema_description:"Passenger's full name."`
	Age   int    `json:"age" jsonschema_description:"Passenger's age in years."`
	Email string `json:"email" jsonschema_description:"Passenger's email address."`
	Phone string `json:"phone" jsonschema_description:"Passenger's phone number."`
}

var CollectPassengerInputSchema = GenerateSchema[CollectPassengerInput]()

// Passenger is the validated, trimmed echo returned on success.
type Passenger struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var CollectPassengerDefinition = ToolDefinition{
	Name: "collect_passenger_details",
	Description: `Validate and collect passenger details for booking.
All fields are required. Returns validation result.`,
	InputSchema: CollectPassengerInputSchema,
	Function:    collectPassenger,
}

func collectPassenger(ctx context.Context, input json.RawMessage) (string, error) {
	var in CollectPassengerInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	var errs []string
	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters")
	}
	if in.Age < 1 || in.Age > 120 {
		errs = append(errs, "Age must be between 1 and 120")
	}
	if !strings.Contains(in.Email, "@") || !strings.Contains(in.Email, ".") {
		errs = append(errs, "Invalid email address")
	}
	digits := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(in.Phone)
	if len(digits) < 10 {
		errs = append(errs, "Phone number must be at least 10 digits")
	}

	if len(errs) > 0 {
		return marshalJSON(map[string]any{"status": "invalid", "errors": errs})
	}
	return marshalJSON(map[string]any{
		"status": "valid",
		"passenger": Passenger{
			Name:  strings.TrimSpace(in.Name),
			Age:   in.Age,
			Email: strings.TrimSpace(in.Email),
			Phone: strings.TrimSpace(in.Phone),
		},
	})
}

func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
