// Package protocol models the booking confirmation flow as a finite-state
// machine with a per-stage tool whitelist.
//
// The flow the assistant walks a user through is search -> select ->
// validate passenger -> confirm payment -> finalize. The prompt instructs the
// model to stop at each stage, but instructions alone don't stop a misbehaving
// model from calling the payment or persistence tools early. The whitelist is
// the structural guard: a call outside the current stage is rejected in-band
// and the loop continues, so the model can recover by doing the missing step.
//
// What the machine cannot see is user intent. Payment still happens when the
// model decides the user said yes; the machine only guarantees payment is
// unreachable before passenger validation has succeeded, and that persistence,
// receipt, and email are unreachable before payment.
package protocol

import "github.com/tidwall/gjson"

// Stage is one state of the booking flow. The zero value is not valid;
// Normalize maps it to StageSearching so freshly created sessions work.
type Stage string

const (
	StageSearching       Stage = "searching"
	StageSelecting       Stage = "selecting"
	StageValidating      Stage = "validating"
	StageAwaitingPayment Stage = "awaiting-payment-confirmation"
	StageFinalizing      Stage = "finalizing"
)

// Normalize maps the zero value to the entry stage.
func Normalize(s Stage) Stage {
	if s == "" {
		return StageSearching
	}
	return s
}

var whitelist = map[Stage][]string{
	StageSearching: {"search_tickets", "filter_by_budget"},
	StageSelecting: {"search_tickets", "filter_by_budget", "collect_passenger_details"},
	StageValidating: {"collect_passenger_details"},
	StageAwaitingPayment: {
		"search_tickets", "filter_by_budget", "collect_passenger_details", "process_payment_mock",
	},
	StageFinalizing: {"save_booking_to_db", "generate_receipt", "send_email_confirmation"},
}

// Allowed reports whether the named tool may execute in the given stage.
// Unknown tool names are allowed through; the dispatcher reports those as
// not found, which is the more useful result for the model.
func Allowed(s Stage, tool string) bool {
	names, ok := whitelist[Normalize(s)]
	if !ok {
		return false
	}
	for _, n := range names {
		if n == tool {
			return true
		}
	}
	return !gated(tool)
}

// gated tools are the ones the flow exists to protect. Anything else that
// is missing from a whitelist is simply an unknown name.
func gated(tool string) bool {
	switch tool {
	case "search_tickets", "filter_by_budget", "collect_passenger_details",
		"process_payment_mock", "save_booking_to_db", "generate_receipt",
		"send_email_confirmation":
		return true
	}
	return false
}

// Denial returns the in-band rejection text for a tool call outside the
// current stage. The text names the step the user still has to complete so
// the model can steer the conversation there.
func Denial(s Stage, tool string) string {
	switch Normalize(s) {
	case StageSearching:
		return "Cannot run " + tool + " yet: search for tickets and let the user pick one first."
	case StageSelecting:
		return "Cannot run " + tool + " yet: collect and validate the passenger's details first."
	case StageValidating:
		return "Cannot run " + tool + " yet: passenger details have not validated successfully."
	case StageAwaitingPayment:
		return "Cannot run " + tool + " yet: process the payment first, after the user confirms."
	case StageFinalizing:
		return "Cannot run " + tool + " now: finish saving the booking, the receipt, and the confirmation email."
	}
	return "Cannot run " + tool + " in the current booking stage."
}

// Advance returns the stage that follows after the named tool produced the
// given result text. Results are the in-band JSON strings the tools return;
// a result that doesn't signal progress leaves the stage unchanged.
func Advance(s Stage, tool, result string) Stage {
	s = Normalize(s)
	switch tool {
	case "search_tickets", "filter_by_budget":
		// The tools return a JSON array on a hit and a plain sentence
		// ("No tickets found ...") otherwise.
		if gjson.Valid(result) && gjson.Parse(result).IsArray() {
			return StageSelecting
		}
	case "collect_passenger_details":
		switch gjson.Get(result, "status").String() {
		case "valid":
			return StageAwaitingPayment
		case "invalid":
			return StageValidating
		}
	case "process_payment_mock":
		if gjson.Get(result, "status").String() == "success" {
			return StageFinalizing
		}
	case "send_email_confirmation":
		// Any terminal email status closes out the booking; the session is
		// ready to start a new search.
		if gjson.Get(result, "status").Exists() {
			return StageSearching
		}
	}
	return s
}
