package memory

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/Sudip-8345/OmniBook-AI/internal/protocol"
)

// Role identifies who produced a message.
type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleToolResult Role = "tool-result"
)

// ToolCall is one tool invocation requested by the assistant. IDs are unique
// within the batch that produced them.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Message is one entry of the conversation. Immutable once appended.
// RespondsToCallID is set only on tool-result messages and names the
// ToolCall.ID of the assistant call it answers.
type Message struct {
	Role             Role       `json:"role"`
	Content          string     `json:"content,omitempty"`
	PendingCalls     []ToolCall `json:"pending_calls,omitempty"`
	RespondsToCallID string     `json:"responds_to_call_id,omitempty"`
}

// State is the conversation container for one session.
type State struct {
	Messages []Message      `json:"messages"`
	StepLog  []string       `json:"step_log"`
	Stage    protocol.Stage `json:"stage,omitempty"`
}

// Append adds a message. Messages are never removed or reordered afterwards.
func (s *State) Append(m Message) {
	s.Messages = append(s.Messages, m)
}

// Step records one step-log entry. Callers clamp the text first.
func (s *State) Step(entry string) {
	s.StepLog = append(s.StepLog, entry)
}

// Last returns the newest message, if any.
func (s *State) Last() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// LoadState reads a session snapshot. A missing file yields a nil state and
// no error so callers can treat it as a fresh session.
func LoadState(path string) (*State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveState writes a session snapshot.
func SaveState(path string, st *State) error {
	b, err := json.MarshalIndent(st, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
