package tools

import (
	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
	"github.com/Sudip-8345/OmniBook-AI/internal/catalog"
	"github.com/Sudip-8345/OmniBook-AI/internal/notify"
)

// Registry returns all booking tool definitions wired to their
// collaborators. Built once at startup; read-only thereafter.
func Registry(cat *catalog.Catalog, store *bookingdb.Store, mailer *notify.Mailer) []ToolDefinition {
	return []ToolDefinition{
		SearchTicketsTool(cat),
		FilterByBudgetTool(cat),
		CollectPassengerDefinition,
		ProcessPaymentDefinition,
		SaveBookingTool(store),
		GenerateReceiptTool(store),
		SendEmailTool(mailer),
	}
}
