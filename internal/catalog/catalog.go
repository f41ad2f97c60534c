// Package catalog is the read-only ticket inventory, backed by a JSON file.
// The file is reloaded on every lookup so edits show up without a restart;
// nothing here caches.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Ticket is one bookable item. Movies use the city as origin and "N/A" as
// destination.
type Ticket struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	Destination string  `json:"destination,omitempty"`
	Date        string  `json:"date,omitempty"`
	Time        string  `json:"time,omitempty"`
	Price       float64 `json:"price"`
}

type Catalog struct {
	path string
}

func New(path string) *Catalog {
	return &Catalog{path: path}
}

// NormalizeType folds "flight"/"Flights"/"FLIGHT" into the catalog key
// "flights", and likewise for trains and movies.
func NormalizeType(ticketType string) string {
	return strings.TrimSuffix(strings.ToLower(ticketType), "s") + "s"
}

// Lookup returns every ticket of the given type. Unknown types error with
// the valid choices so the text can go straight back to the model.
func (c *Catalog) Lookup(ticketType string) ([]Ticket, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	var data map[string][]Ticket
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse tickets: %w", err)
	}

	key := NormalizeType(ticketType)
	tickets, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("unknown ticket type %q. Choose from: flight, train, movie", ticketType)
	}
	return tickets, nil
}
