package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Sudip-8345/OmniBook-AI/internal/catalog"
)

type SearchTicketsInput struct {
	TicketType  string `json:"ticket_type" jsonschema_description:"Ticket category: flight, train, or movie."`
	Origin      string `json:"origin,omitempty" jsonschema_description:"Departure city; for movies this is the city name. Substring match, case-insensitive."`
	Destination string `json:"destination,omitempty" jsonschema_description:"Arrival city; N/A for movies. Substring match, case-insensitive."`
	Date        string `json:"date,omitempty" jsonschema_description:"Exact travel date, YYYY-MM-DD. Leave empty to see all dates."`
}

var SearchTicketsInputSchema = GenerateSchema[SearchTicketsInput]()

// SearchTicketsTool searches the catalog by type with optional origin,
// destination, and date filters. Empty filters match everything of that type.
func SearchTicketsTool(cat *catalog.Catalog) ToolDefinition {
	return ToolDefinition{
		Name: "search_tickets",
		Description: `Search for available tickets by type (flight, train, or movie).
For movies, 'origin' is the city name. Date format: YYYY-MM-DD.
Leave fields empty to see all available options for that type.`,
		InputSchema: SearchTicketsInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in SearchTicketsInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			results, err := cat.Lookup(in.TicketType)
			if err != nil {
				// Catalog errors read well as-is; send them to the model.
				return err.Error(), nil
			}
			results = filterTickets(results, in.Origin, in.Destination, in.Date)
			if len(results) == 0 {
				return "No tickets found matching your criteria. Try broadening your search.", nil
			}
			return marshalTickets(results)
		},
	}
}

func filterTickets(tickets []catalog.Ticket, origin, destination, date string) []catalog.Ticket {
	out := tickets
	if origin != "" {
		out = keep(out, func(t catalog.Ticket) bool {
			return strings.Contains(strings.ToLower(t.Origin), strings.ToLower(origin))
		})
	}
	if destination != "" {
		out = keep(out, func(t catalog.Ticket) bool {
			return strings.Contains(strings.ToLower(t.Destination), strings.ToLower(destination))
		})
	}
	if date != "" {
		out = keep(out, func(t catalog.Ticket) bool { return t.Date == date })
	}
	return out
}

func keep(tickets []catalog.Ticket, pred func(catalog.Ticket) bool) []catalog.Ticket {
	var out []catalog.Ticket
	for _, t := range tickets {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func marshalTickets(tickets []catalog.Ticket) (string, error) {
	b, err := json.MarshalIndent(tickets, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
