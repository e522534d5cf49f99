// pkg/mem/guided_sessions.go
package mem

import (
	"sync"
	"time"
)

// GuidedSession is one in-flight AI-guided journaling flow: the seed the
// user typed, the generated questions, the answers collected so far, and
// the single active question index. Sessions live only in memory; an
// abandoned session simply expires.
type GuidedSession struct {
	UserID    string
	Seed      string
	Questions []string
	Answers   []string
	Index     int
}

// Done reports whether the user has advanced past the last question.
// Empty answers count; the flow never blocks on a non-empty answer.
func (s *GuidedSession) Done() bool {
	return s.Index >= len(s.Questions)
}

// snapshot is a deep copy. The store only ever hands out snapshots so
// callers can read them without holding the store's lock.
func (s *GuidedSession) snapshot() *GuidedSession {
	out := *s
	out.Questions = append([]string(nil), s.Questions...)
	out.Answers = append([]string(nil), s.Answers...)
	return &out
}

type SessionStore interface {
	Set(id string, session *GuidedSession, ttl time.Duration)

	// Get returns a copy of the session for id if not expired, or nil.
	Get(id string) *GuidedSession

	// Advance records the answer for the session's active question and
	// moves the index forward, all under the store's lock, refreshing
	// the TTL. Returns a copy of the updated session, or nil when the
	// session is missing, expired, or owned by someone else. A session
	// already past its last question is returned unchanged.
	Advance(id string, userId string, answer string, ttl time.Duration) *GuidedSession

	// Consume returns a copy of the session and removes it (single-use,
	// called when the flow finishes). Returns nil if missing/expired.
	Consume(id string) *GuidedSession
}

type entry struct {
	session   *GuidedSession
	expiresAt time.Time
}

type GuidedSessions struct {
	mu   sync.Mutex
	data map[string]entry
}

func NewGuidedSessions() *GuidedSessions {
	return &GuidedSessions{
		data: make(map[string]entry),
	}
}

func (s *GuidedSessions) Set(id string, session *GuidedSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		session:   session.snapshot(),
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *GuidedSessions) Get(id string) *GuidedSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil
	}
	return e.session.snapshot()
}

func (s *GuidedSessions) Advance(id string, userId string, answer string, ttl time.Duration) *GuidedSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) || e.session.UserID != userId {
		return nil
	}

	if !e.session.Done() {
		e.session.Answers[e.session.Index] = answer
		e.session.Index++
	}
	e.expiresAt = time.Now().Add(ttl)
	s.data[id] = e

	return e.session.snapshot()
}

func (s *GuidedSessions) Consume(id string) *GuidedSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil
	}
	delete(s.data, id) // single-use
	return e.session.snapshot()
}
