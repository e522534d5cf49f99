package entrystore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"haven/internal/models/db_models"
	"haven/pkg/entrystore"
)

type remoteMock struct {
	entries   []db_models.JournalEntry
	listErr   error
	createErr error
	removeErr error
	removed   []string
}

func (m *remoteMock) List(ctx context.Context) ([]db_models.JournalEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]db_models.JournalEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *remoteMock) Create(ctx context.Context, entry *db_models.JournalEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	entry.ID = uuid.New()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *remoteMock) Remove(ctx context.Context, entryId string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, entryId)
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.ID.String() != entryId {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func dated(offsetDays int) db_models.JournalEntry {
	return db_models.JournalEntry{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		EntryDate: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offsetDays),
		Type:      db_models.EntryTypeBlank,
		Body:      "entry",
	}
}

func TestRefreshSortsNewestFirst(t *testing.T) {
	remote := &remoteMock{entries: []db_models.JournalEntry{
		dated(1), dated(3), dated(0), dated(2),
	}}
	store := entrystore.New(remote)

	err := store.Refresh(context.Background())
	assert.NoError(t, err)

	entries := store.Entries()
	assert.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].EntryDate.After(entries[i-1].EntryDate),
			"entries must be ordered newest first")
	}
	assert.Equal(t, uint64(1), store.Version())
}

func TestRefreshFailureLeavesListUntouched(t *testing.T) {
	remote := &remoteMock{entries: []db_models.JournalEntry{dated(0)}}
	store := entrystore.New(remote)
	assert.NoError(t, store.Refresh(context.Background()))

	remote.listErr = errors.New("network down")
	err := store.Refresh(context.Background())
	assert.Error(t, err)
	assert.Len(t, store.Entries(), 1)
	assert.Equal(t, uint64(1), store.Version())
}

func TestCreatePrependsOnAck(t *testing.T) {
	remote := &remoteMock{entries: []db_models.JournalEntry{dated(0)}}
	store := entrystore.New(remote)
	assert.NoError(t, store.Refresh(context.Background()))

	entry := dated(5)
	entry.ID = uuid.Nil
	err := store.Create(context.Background(), &entry)
	assert.NoError(t, err)

	entries := store.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, entry.ID, entries[0].ID, "new entry sits at the head")
	assert.NotEqual(t, uuid.Nil, entries[0].ID)
}

func TestCreateFailureLeavesListUntouched(t *testing.T) {
	remote := &remoteMock{createErr: errors.New("network down")}
	store := entrystore.New(remote)

	entry := dated(0)
	err := store.Create(context.Background(), &entry)
	assert.Error(t, err)
	assert.Empty(t, store.Entries())
	assert.Equal(t, uint64(0), store.Version())
}

func TestRemoveDropsById(t *testing.T) {
	first := dated(0)
	second := dated(1)
	remote := &remoteMock{entries: []db_models.JournalEntry{first, second}}
	store := entrystore.New(remote)
	assert.NoError(t, store.Refresh(context.Background()))

	err := store.Remove(context.Background(), first.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, []string{first.ID.String()}, remote.removed)

	entries := store.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
}

func TestRemoveFailureLeavesListUntouched(t *testing.T) {
	first := dated(0)
	remote := &remoteMock{entries: []db_models.JournalEntry{first}}
	store := entrystore.New(remote)
	assert.NoError(t, store.Refresh(context.Background()))

	remote.removeErr = errors.New("network down")
	err := store.Remove(context.Background(), first.ID.String())
	assert.Error(t, err)
	assert.Len(t, store.Entries(), 1)
}

func TestCreateThenRefreshAgree(t *testing.T) {
	remote := &remoteMock{}
	store := entrystore.New(remote)

	entry := dated(0)
	assert.NoError(t, store.Create(context.Background(), &entry))
	optimistic := store.Entries()

	assert.NoError(t, store.Refresh(context.Background()))
	refreshed := store.Entries()

	assert.Len(t, refreshed, 1)
	assert.Equal(t, optimistic[0].ID, refreshed[0].ID)
	assert.Equal(t, optimistic[0].Body, refreshed[0].Body)
}

type blockingRemote struct {
	remoteMock
	entered chan struct{}
	release chan struct{}
}

func (m *blockingRemote) Create(ctx context.Context, entry *db_models.JournalEntry) error {
	close(m.entered)
	<-m.release
	return m.remoteMock.Create(ctx, entry)
}

func TestCreateRejectsSecondInFlight(t *testing.T) {
	remote := &blockingRemote{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	store := entrystore.New(remote)

	done := make(chan error, 1)
	go func() {
		entry := dated(0)
		done <- store.Create(context.Background(), &entry)
	}()
	<-remote.entered

	second := dated(1)
	err := store.Create(context.Background(), &second)
	assert.ErrorIs(t, err, entrystore.ErrOperationInFlight)

	close(remote.release)
	assert.NoError(t, <-done)
	assert.Len(t, store.Entries(), 1)
}

func TestDistinctOperationsDoNotBlockEachOther(t *testing.T) {
	remote := &blockingRemote{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	store := entrystore.New(remote)

	done := make(chan error, 1)
	go func() {
		entry := dated(0)
		done <- store.Create(context.Background(), &entry)
	}()
	<-remote.entered

	// A refresh is a different operation kind and proceeds while the
	// create is still outstanding.
	assert.NoError(t, store.Refresh(context.Background()))

	close(remote.release)
	assert.NoError(t, <-done)
}
