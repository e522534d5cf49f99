// Package entrystore is the client-side view of a user's journal list:
// a single-writer, versioned collection reconciled against a remote
// store. Screens render from the local snapshot; every mutation goes
// through the store's own methods, never by splicing the slice
// directly. Local state only changes after a positive remote
// acknowledgment, so a failed call leaves the list untouched and the
// user can retry the same action.
package entrystore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"haven/internal/models/db_models"
)

// ErrOperationInFlight is returned when an operation of the same kind
// is still outstanding. Callers disable the triggering control and
// surface nothing; a second tap must not race the first.
var ErrOperationInFlight = errors.New("operation already in flight")

// RemoteStore is the narrow remote contract the store reconciles
// against.
type RemoteStore interface {
	List(ctx context.Context) ([]db_models.JournalEntry, error)
	Create(ctx context.Context, entry *db_models.JournalEntry) error
	Remove(ctx context.Context, entryId string) error
}

type operation int

const (
	opRefresh operation = iota
	opCreate
	opRemove
)

type EntryStore struct {
	remote RemoteStore

	mu      sync.Mutex
	entries []db_models.JournalEntry
	version uint64
	busy    map[operation]bool
}

func New(remote RemoteStore) *EntryStore {
	return &EntryStore{
		remote: remote,
		busy:   make(map[operation]bool),
	}
}

// Entries returns a snapshot of the local list, newest first.
func (s *EntryStore) Entries() []db_models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]db_models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Version increments on every applied mutation; renderers use it to
// detect staleness cheaply.
func (s *EntryStore) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Refresh replaces the local list with the remote one, sorted by entry
// date descending. Ties keep the remote order (stable sort).
func (s *EntryStore) Refresh(ctx context.Context) error {
	if err := s.begin(opRefresh); err != nil {
		return err
	}
	defer s.end(opRefresh)

	entries, err := s.remote.List(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EntryDate.After(entries[j].EntryDate)
	})

	s.mu.Lock()
	s.entries = entries
	s.version++
	s.mu.Unlock()
	return nil
}

// Create submits the entry and, only on success, prepends it to the
// local list (optimistic insert at the head, no re-fetch).
func (s *EntryStore) Create(ctx context.Context, entry *db_models.JournalEntry) error {
	if err := s.begin(opCreate); err != nil {
		return err
	}
	defer s.end(opCreate)

	if err := s.remote.Create(ctx, entry); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = append([]db_models.JournalEntry{*entry}, s.entries...)
	s.version++
	s.mu.Unlock()
	return nil
}

// Remove deletes the entry remotely and, only on success, drops it from
// the local list by identifier equality.
func (s *EntryStore) Remove(ctx context.Context, entryId string) error {
	if err := s.begin(opRemove); err != nil {
		return err
	}
	defer s.end(opRemove)

	if err := s.remote.Remove(ctx, entryId); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID.String() != entryId {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.version++
	s.mu.Unlock()
	return nil
}

func (s *EntryStore) begin(op operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[op] {
		return ErrOperationInFlight
	}
	s.busy[op] = true
	return nil
}

func (s *EntryStore) end(op operation) {
	s.mu.Lock()
	s.busy[op] = false
	s.mu.Unlock()
}
