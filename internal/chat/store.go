package chat

import (
	"sync"

	"github.com/hearthlane/chatkit/internal/model"
)

// Store is the canonical in-memory view of one conversation's messages,
// newest first. It merges authoritative server snapshots with entries
// minted locally by optimistic sends, and guarantees that no two entries
// ever share an ID. A store is private to a single open session.
type Store struct {
	mu       sync.Mutex
	messages model.MessageList
	pending  map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		pending: make(map[string]struct{}),
	}
}

// AppendPending makes an optimistic entry visible and registers its
// local ID as awaiting confirmation. Both happen under one lock so a
// concurrent merge can never observe the entry without its pending mark.
func (s *Store) AppendPending(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[msg.ID] = struct{}{}
	s.messages = append(model.MessageList{msg}, s.messages...)
}

// Confirm replaces the optimistic entry identified by localID with the
// server-confirmed record and clears the pending mark. If the confirmed
// ID somehow already exists in the list, the optimistic entry is simply
// removed so the uniqueness invariant holds.
func (s *Store) Confirm(localID string, confirmed model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, localID)

	duplicate := false
	for _, msg := range s.messages {
		if msg.ID == confirmed.ID {
			duplicate = true
			break
		}
	}

	out := s.messages[:0]
	for _, msg := range s.messages {
		switch {
		case msg.ID != localID:
			out = append(out, msg)
		case !duplicate:
			out = append(out, confirmed)
		}
	}
	s.messages = out
}

// Drop removes a rolled-back optimistic entry and its pending mark.
func (s *Store) Drop(localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, localID)

	out := s.messages[:0]
	for _, msg := range s.messages {
		if msg.ID != localID {
			out = append(out, msg)
		}
	}
	s.messages = out
}

// MergeSnapshot reconciles a full server snapshot (newest first, never a
// diff) with the local list. With nothing pending the snapshot replaces
// the list outright. Otherwise local entries survive only while their ID
// is still pending and absent from the snapshot, and are kept ahead of
// the server messages.
func (s *Store) MergeSnapshot(server model.MessageList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(server))
	snapshot := make(model.MessageList, 0, len(server))
	for _, msg := range server {
		if _, dup := seen[msg.ID]; dup {
			continue
		}
		seen[msg.ID] = struct{}{}
		snapshot = append(snapshot, msg)
	}

	if len(s.pending) == 0 {
		s.messages = snapshot
		return
	}

	retained := make(model.MessageList, 0, len(s.pending))
	for _, msg := range s.messages {
		if _, isPending := s.pending[msg.ID]; !isPending {
			continue
		}
		if _, confirmed := seen[msg.ID]; confirmed {
			continue
		}
		retained = append(retained, msg)
	}

	s.messages = append(retained, snapshot...)
}

// AppendOlder attaches a backward-pagination page to the tail, skipping
// anything already present.
func (s *Store) AppendOlder(older model.MessageList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]struct{}, len(s.messages))
	for _, msg := range s.messages {
		known[msg.ID] = struct{}{}
	}

	for _, msg := range older {
		if _, dup := known[msg.ID]; dup {
			continue
		}
		known[msg.ID] = struct{}{}
		s.messages = append(s.messages, msg)
	}
}

// Snapshot returns a copy of the current list, newest first.
func (s *Store) Snapshot() model.MessageList {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(model.MessageList, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// OldestID returns the ID of the oldest server-confirmed message, used
// as the backward-pagination cursor. Local entries never page.
func (s *Store) OldestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.messages) - 1; i >= 0; i-- {
		if !s.messages[i].IsLocal() {
			return s.messages[i].ID
		}
	}
	return ""
}

// HasPending reports whether any optimistic entry is still awaiting its
// server-confirmed counterpart.
func (s *Store) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

// IsPending reports whether the given local ID is still unconfirmed.
func (s *Store) IsPending(localID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[localID]
	return ok
}
