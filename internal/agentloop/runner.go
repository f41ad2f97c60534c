package agentloop

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Sudip-8345/OmniBook-AI/internal/preview"
	"github.com/Sudip-8345/OmniBook-AI/internal/protocol"
	"github.com/Sudip-8345/OmniBook-AI/internal/telemetry"
	"github.com/Sudip-8345/OmniBook-AI/memory"
	"github.com/Sudip-8345/OmniBook-AI/tools"
)

const (
	defaultMaxCycles    = 10
	defaultModelTimeout = 60 * time.Second
	defaultToolTimeout  = 15 * time.Second
	maxReplyTokens      = 1024
)

type Runner struct {
	Client *anthropic.Client
	Model  anthropic.Model
	Tools  []tools.ToolDefinition

	// MaxCycles bounds decide/dispatch cycles per turn; the model is
	// expected to stop requesting tools long before this trips.
	MaxCycles    int
	ModelTimeout time.Duration
	ToolTimeout  time.Duration
}

func New(client *anthropic.Client, model anthropic.Model, toolDefs []tools.ToolDefinition) *Runner {
	return &Runner{
		Client:       client,
		Model:        model,
		Tools:        toolDefs,
		MaxCycles:    defaultMaxCycles,
		ModelTimeout: defaultModelTimeout,
		ToolTimeout:  defaultToolTimeout,
	}
}

// Turn is what one completed turn hands back to the caller.
type Turn struct {
	Reply string
	Steps []string
}

// RunTurn appends the user message and drives decide -> route -> dispatch
// until the model answers without requesting tools, or a turn-level failure
// stops it. State mutations already applied stay committed either way.
func (r *Runner) RunTurn(ctx context.Context, st *memory.State, userText string) (Turn, error) {
	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", time.Now().UnixNano())
		ctx = telemetry.WithTurnID(ctx, turnID)
	}
	telemetry.Emit("turn_started", map[string]any{
		"turn_id": turnID,
		"stage":   string(protocol.Normalize(st.Stage)),
	})

	stepsBefore := len(st.StepLog)
	st.Append(memory.Message{Role: memory.RoleUser, Content: userText})

	var reply string
	for cycle := 1; ; cycle++ {
		if cycle > r.MaxCycles {
			telemetry.Emit("turn_finished", map[string]any{"turn_id": turnID, "outcome": "iteration_bound"})
			return Turn{}, fmt.Errorf("%w (%d)", ErrIterationBound, r.MaxCycles)
		}

		msg, err := r.decide(ctx, st)
		if err != nil {
			telemetry.Emit("turn_finished", map[string]any{"turn_id": turnID, "outcome": "model_error"})
			return Turn{}, fmt.Errorf("%w: %v", ErrModelInvocation, err)
		}
		st.Append(msg)

		if !NeedsDispatch(msg) {
			reply = msg.Content
			break
		}
		for _, res := range r.dispatch(ctx, st, msg.PendingCalls) {
			st.Append(res)
		}
	}

	telemetry.Emit("turn_finished", map[string]any{
		"turn_id": turnID,
		"outcome": "reply",
		"stage":   string(protocol.Normalize(st.Stage)),
	})
	return Turn{Reply: reply, Steps: st.StepLog[stepsBefore:]}, nil
}

// NeedsDispatch is the routing rule: dispatch if and only if the message
// carries pending tool calls. Nothing else affects routing.
func NeedsDispatch(m memory.Message) bool {
	return len(m.PendingCalls) > 0
}

// decide invokes the model with the full history and produces exactly one
// assistant message carrying reply text and/or requested tool calls.
func (r *Runner) decide(ctx context.Context, st *memory.State) (memory.Message, error) {
	params := anthropic.MessageNewParams{
		Model:     r.Model,
		MaxTokens: int64(maxReplyTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:  toProviderMessages(st.Messages),
		Tools:     r.anthropicTools(),
	}

	ctx, cancel := context.WithTimeout(ctx, r.ModelTimeout)
	defer cancel()

	resp, err := r.Client.Messages.New(ctx, params)
	if err != nil {
		return memory.Message{}, err
	}

	msg := memory.Message{Role: memory.RoleAssistant}
	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if msg.Content == "" {
				msg.Content = v.Text
			} else {
				msg.Content += "\n" + v.Text
			}
		case anthropic.ToolUseBlock:
			msg.PendingCalls = append(msg.PendingCalls, memory.ToolCall{
				ID:        v.ID,
				Name:      v.Name,
				Arguments: json.RawMessage(v.JSON.Input.Raw()),
			})
		}
	}

	turnID, _ := telemetry.TurnIDFromContext(ctx)
	if msg.Content != "" {
		st.Step("Agent: " + preview.Clamp(msg.Content, preview.ReplyRunes))
	}
	for _, call := range msg.PendingCalls {
		st.Step(fmt.Sprintf("Calling: %s(%s)", call.Name, preview.Clamp(string(call.Arguments), preview.CallRunes)))
	}
	telemetry.Emit("decision", map[string]any{
		"turn_id":    turnID,
		"model":      string(r.Model),
		"tool_calls": len(msg.PendingCalls),
		"has_text":   msg.Content != "",
	})
	return msg, nil
}

// dispatch executes the batch of calls in request order and returns one
// correlated result message per call. A single call's failure never aborts
// the loop; whatever went wrong is encoded in the result text for the next
// decide to read.
func (r *Runner) dispatch(ctx context.Context, st *memory.State, calls []memory.ToolCall) []memory.Message {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	results := make([]memory.Message, 0, len(calls))
	for _, call := range calls {
		start := time.Now()
		var result string
		var execErr string

		switch {
		case !protocol.Allowed(st.Stage, call.Name):
			result = protocol.Denial(st.Stage, call.Name)
			execErr = "stage denied"
		default:
			def := r.lookup(call.Name)
			if def == nil {
				result = fmt.Sprintf("Tool '%s' not found", call.Name)
				execErr = "tool not found"
				break
			}
			out, err := r.execTool(ctx, *def, call.Arguments)
			if err != nil {
				result = fmt.Sprintf("Error running %s: %v", call.Name, err)
				execErr = "tool error"
				break
			}
			result = out
			st.Stage = protocol.Advance(st.Stage, call.Name, result)
		}

		results = append(results, memory.Message{
			Role:             memory.RoleToolResult,
			Content:          result,
			RespondsToCallID: call.ID,
		})
		st.Step(fmt.Sprintf("Result [%s]: %s", call.Name, preview.Clamp(result, preview.ResultRunes)))

		fields := map[string]any{
			"turn_id":     turnID,
			"tool_name":   call.Name,
			"duration_ms": time.Since(start).Milliseconds(),
			"input_size":  len(call.Arguments),
			"output_size": len(result),
		}
		if execErr != "" {
			fields["error"] = execErr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}
	return results
}

func (r *Runner) lookup(name string) *tools.ToolDefinition {
	for i := range r.Tools {
		if r.Tools[i].Name == name {
			return &r.Tools[i]
		}
	}
	return nil
}

// execTool runs a handler under the per-tool timeout. A handler that
// overruns is abandoned to finish on its own; its result is discarded.
func (r *Runner) execTool(ctx context.Context, def tools.ToolDefinition, input json.RawMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.ToolTimeout)
	defer cancel()

	type outcome struct {
		out string
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		out, err := def.Function(ctx, input)
		ch <- outcome{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("timed out after %s", r.ToolTimeout)
	case o := <-ch:
		return o.out, o.err
	}
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// toProviderMessages converts the domain conversation to the wire shape.
// Tool results travel back to the model as user messages carrying
// tool_result blocks, correlated by the originating call id.
func toProviderMessages(msgs []memory.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case memory.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case memory.RoleAssistant:
			var blocks []anthropic.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, call := range m.PendingCalls {
				tu := anthropic.ToolUseBlockParam{
					Type:  "tool_use",
					ID:    call.ID,
					Name:  call.Name,
					Input: call.Arguments,
				}
				blocks = append(blocks, anthropic.ContentBlockParamUnion{OfToolUse: &tu})
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		case memory.RoleToolResult:
			out = append(out, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(m.RespondsToCallID, m.Content, false),
			))
		}
	}
	return out
}
