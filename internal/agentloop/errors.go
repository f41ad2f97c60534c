package agentloop

import "errors"

// Turn-level failures. Everything else that goes wrong in a turn is encoded
// in-band as a tool result and the loop continues.
var (
	// ErrModelInvocation wraps a failed call to the model capability. State
	// appended before the failure stays committed so the next turn can retry.
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrIterationBound means the model kept requesting tools past the
	// per-turn cycle budget.
	ErrIterationBound = errors.New("turn exceeded maximum decision/dispatch cycles")
)
