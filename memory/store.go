package memory

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// Store is the session repository. Acquire blocks while another turn holds
// the same session, so two concurrent turns on one session id serialize;
// different sessions proceed independently.
type Store interface {
	Acquire(id string) (*Session, error)
	Delete(id string) error
}

// Session is one acquired conversation. Release it when the turn is done.
type Session struct {
	id      string
	state   *State
	release func(*Session) error
}

// State exposes the conversation state. Valid only between Acquire and
// Release.
func (s *Session) State() *State { return s.state }

// Release persists the snapshot (when enabled) and unlocks the session.
func (s *Session) Release() error { return s.release(s) }

type storeEntry struct {
	mu    sync.Mutex
	state *State
}

// InMemoryStore keeps sessions in a map guarded per key. With a snapshot
// directory set, sessions load from disk on first contact and save on every
// Release.
type InMemoryStore struct {
	mu          sync.Mutex
	sessions    map[string]*storeEntry
	snapshotDir string
}

// NewInMemoryStore returns a store without snapshot persistence.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: map[string]*storeEntry{}}
}

// NewSnapshotStore returns a store that mirrors each session to a JSON file
// under dir.
func NewSnapshotStore(dir string) (*InMemoryStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot dir: %w", err)
	}
	return &InMemoryStore{sessions: map[string]*storeEntry{}, snapshotDir: dir}, nil
}

func (s *InMemoryStore) snapshotPath(id string) string {
	return filepath.Join(s.snapshotDir, url.PathEscape(id)+".json")
}

// Acquire returns the session for id, creating it on first contact, with its
// per-session lock held.
func (s *InMemoryStore) Acquire(id string) (*Session, error) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if !ok {
		entry = &storeEntry{state: &State{}}
		s.sessions[id] = entry
	}
	s.mu.Unlock()

	// Lock the session outside the map lock so a long turn on one session
	// doesn't stall every other session.
	entry.mu.Lock()

	if !ok && s.snapshotDir != "" {
		st, err := LoadState(s.snapshotPath(id))
		if err != nil {
			entry.mu.Unlock()
			return nil, fmt.Errorf("load session %q: %w", id, err)
		}
		if st != nil {
			entry.state = st
		}
	}

	return &Session{id: id, state: entry.state, release: func(sess *Session) error {
		defer entry.mu.Unlock()
		if s.snapshotDir == "" {
			return nil
		}
		return SaveState(s.snapshotPath(sess.id), sess.state)
	}}, nil
}

// Delete removes the session and its snapshot. A turn already in flight on
// the session finishes against its own copy of the state.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	if s.snapshotDir == "" {
		return nil
	}
	err := os.Remove(s.snapshotPath(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
