// Package memory holds per-session conversation state and the session store.
//
// State model:
//   - Messages are append-only and never reordered; insertion order is causal
//     order. A tool-result message answers exactly one call issued by the
//     assistant message immediately before it.
//   - StepLog collects bounded previews of replies, call signatures, and call
//     results. Observability only; nothing reads it back into the loop.
//   - Stage tracks where the session is in the booking flow and persists with
//     the rest of the state.
//
// Snapshots are optional JSON files, one per session, so a restart can
// restore conversations.
package memory
