// Package tools defines the booking tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - The booking tools: search_tickets, filter_by_budget,
//     collect_passenger_details, process_payment_mock, save_booking_to_db,
//     generate_receipt, send_email_confirmation.
//
// Handlers return their result as text; anything that can go wrong inside a
// tool is encoded in that text so the model can read it and recover. The
// (string, error) return exists for malformed input; the dispatcher folds the
// error into an in-band result too.
package tools
