// Package agentloop coordinates message exchange with the Anthropic Messages
// API and dispatches booking tool calls.
//
// Invariants:
//   - decide and dispatch strictly alternate within a turn; the router picks
//     dispatch exactly when the newest assistant message carries pending
//     calls, and the turn ends otherwise.
//   - each tool-result message answers exactly one call of the immediately
//     preceding assistant message, in request order.
//   - a turn runs at most MaxCycles decide/dispatch cycles.
//
// Flow:
//
//	user(text) -> assistant(tool calls) -> tool results -> assistant(text)
package agentloop
