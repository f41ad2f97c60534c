// Package preview produces bounded text previews for the step log and
// telemetry. Step-log entries must never carry unbounded payloads, so every
// string that leaves the loop for observability passes through Clamp first.
package preview

// Default caps per preview kind.
const (
	ReplyRunes  = 300 // assistant reply previews
	CallRunes   = 150 // tool call argument previews
	ResultRunes = 200 // tool result previews
)

// Clamp returns at most n runes of s. A clamped string ends with an ellipsis
// so a truncated log line is distinguishable from a short one.
func Clamp(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
