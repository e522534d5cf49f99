package mem_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mem "haven/pkg/memcache"
)

func newSession() *mem.GuidedSession {
	return &mem.GuidedSession{
		UserID:    "user-1",
		Seed:      "feeling anxious",
		Questions: []string{"q1", "q2"},
		Answers:   make([]string, 2),
	}
}

func TestGetReturnsLiveSession(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), time.Minute)

	got := store.Get("s1")
	assert.NotNil(t, got)
	assert.Equal(t, "feeling anxious", got.Seed)
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := mem.NewGuidedSessions()
	assert.Nil(t, store.Get("missing"))
}

func TestGetExpiredReturnsNil(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), -time.Second)
	assert.Nil(t, store.Get("s1"))
}

func TestGetReturnsACopy(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), time.Minute)

	got := store.Get("s1")
	got.Answers[0] = "scribbled on"
	got.Index = 99

	again := store.Get("s1")
	assert.Equal(t, "", again.Answers[0])
	assert.Equal(t, 0, again.Index)
}

func TestAdvanceRecordsAndMovesIndex(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), time.Minute)

	got := store.Advance("s1", "user-1", "first", time.Minute)
	assert.NotNil(t, got)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, "first", got.Answers[0])

	got = store.Advance("s1", "user-1", "second", time.Minute)
	assert.Equal(t, 2, got.Index)
	assert.True(t, got.Done())

	// Past the last question nothing moves.
	got = store.Advance("s1", "user-1", "extra", time.Minute)
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, "second", got.Answers[1])
}

func TestAdvanceWrongOwnerOrMissing(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), time.Minute)

	assert.Nil(t, store.Advance("s1", "someone-else", "x", time.Minute))
	assert.Nil(t, store.Advance("missing", "user-1", "x", time.Minute))

	// The wrong-owner attempt recorded nothing.
	got := store.Get("s1")
	assert.Equal(t, 0, got.Index)
}

func TestAdvanceConcurrentNeverOverruns(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Advance("s1", "user-1", "answer", time.Minute)
		}()
	}
	wg.Wait()

	got := store.Get("s1")
	assert.Equal(t, 2, got.Index)
	assert.True(t, got.Done())
}

func TestConsumeIsSingleUse(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), time.Minute)

	assert.NotNil(t, store.Consume("s1"))
	assert.Nil(t, store.Consume("s1"))
	assert.Nil(t, store.Get("s1"))
}

func TestConsumeExpiredReturnsNil(t *testing.T) {
	store := mem.NewGuidedSessions()
	store.Set("s1", newSession(), -time.Second)
	assert.Nil(t, store.Consume("s1"))
}

func TestDone(t *testing.T) {
	s := newSession()
	assert.False(t, s.Done())

	s.Index = 1
	assert.False(t, s.Done())

	s.Index = 2
	assert.True(t, s.Done())
}
