package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sudip-8345/OmniBook-AI/internal/catalog"
)

type FilterByBudgetInput struct {
	TicketType  string  `json:"ticket_type" jsonschema_description:"Ticket category: flight, train, or movie."`
	MaxBudget   float64 `json:"max_budget" jsonschema_description:"Maximum price in INR (Indian Rupees)."`
	Origin      string  `json:"origin,omitempty" jsonschema_description:"Departure city; for movies this is the city name. Substring match, case-insensitive."`
	Destination string  `json:"destination,omitempty" jsonschema_description:"Arrival city; N/A for movies. Substring match, case-insensitive."`
	Date        string  `json:"date,omitempty" jsonschema_description:"Exact travel date, YYYY-MM-DD."`
}

var FilterByBudgetInputSchema = GenerateSchema[FilterByBudgetInput]()

// FilterByBudgetTool is search_tickets plus a price ceiling: only tickets
// with price <= max_budget come back. An empty result names the budget so
// the model can quote it back to the user.
func FilterByBudgetTool(cat *catalog.Catalog) ToolDefinition {
	return ToolDefinition{
		Name: "filter_by_budget",
		Description: `Filter available tickets by maximum budget.
Returns only tickets with price <= max_budget.
ticket_type: flight, train, or movie. max_budget: maximum price in INR (Indian Rupees).`,
		InputSchema: FilterByBudgetInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in FilterByBudgetInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			results, err := cat.Lookup(in.TicketType)
			if err != nil {
				return err.Error(), nil
			}
			results = filterTickets(results, in.Origin, in.Destination, in.Date)
			results = keep(results, func(t catalog.Ticket) bool { return t.Price <= in.MaxBudget })
			if len(results) == 0 {
				return fmt.Sprintf("No tickets found within budget of ₹%.2f. Try increasing your budget.", in.MaxBudget), nil
			}
			return marshalTickets(results)
		},
	}
}
