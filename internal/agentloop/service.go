package agentloop

import (
	"context"
	"errors"

	"github.com/Sudip-8345/OmniBook-AI/memory"
)

// Service is the turn entry point: it owns session acquisition around the
// runner so callers never touch conversation state directly.
type Service struct {
	Store  memory.Store
	Runner *Runner
}

func NewService(store memory.Store, runner *Runner) *Service {
	return &Service{Store: store, Runner: runner}
}

// Submit runs one turn against the identified session and returns the reply
// plus the step log produced by this turn. The session lock is held for the
// whole turn, so concurrent submits on one session serialize.
func (s *Service) Submit(ctx context.Context, sessionID, userText string) (Turn, error) {
	sess, err := s.Store.Acquire(sessionID)
	if err != nil {
		return Turn{}, err
	}

	turn, runErr := s.Runner.RunTurn(ctx, sess.State(), userText)
	// State committed so far persists even when the turn failed, so the
	// conversation survives for a retry.
	releaseErr := sess.Release()

	if runErr != nil {
		return Turn{}, runErr
	}
	if releaseErr != nil {
		return Turn{}, releaseErr
	}
	if turn.Reply == "" {
		turn.Reply = "Done."
	}
	return turn, nil
}

// ClearSession drops a session and its snapshot so the next contact starts
// fresh.
func (s *Service) ClearSession(sessionID string) error {
	if s.Store == nil {
		return errors.New("no session store configured")
	}
	return s.Store.Delete(sessionID)
}
