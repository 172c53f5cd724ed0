package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pubguide/internal/guide"
)

type session struct {
	nav      *guide.Navigator
	lastSeen time.Time
}

// SessionStore maps session IDs to each reader's navigation state. The
// mutex guards the map only; every Navigator belongs to one session.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	max      int
	now      func() time.Time
	sessions map[string]*session
}

// NewSessionStore keeps sessions for ttl after their last use. max caps the
// number of live sessions; zero means no cap.
func NewSessionStore(ttl time.Duration, max int) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Acquire returns the navigator for id, starting a new session when id is
// unknown, malformed or expired. The returned ID is the one to hand back to
// the client.
func (s *SessionStore) Acquire(id string) (string, *guide.Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, err := uuid.Parse(id); err == nil {
		if sess, ok := s.sessions[id]; ok && now.Sub(sess.lastSeen) < s.ttl {
			sess.lastSeen = now
			return id, sess.nav
		}
		delete(s.sessions, id)
	}

	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictLocked(now)
	}
	id = uuid.NewString()
	sess := &session{nav: guide.NewNavigator(), lastSeen: now}
	s.sessions[id] = sess
	return id, sess.nav
}

// Len reports the number of stored sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *SessionStore) sweepLocked(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// evictLocked makes room for one session: expired sessions go first, then
// the least recently used.
func (s *SessionStore) evictLocked(now time.Time) {
	s.sweepLocked(now)
	if len(s.sessions) < s.max {
		return
	}
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.sessions[ids[i]].lastSeen.Before(s.sessions[ids[j]].lastSeen)
	})
	for _, id := range ids[:len(ids)-s.max+1] {
		delete(s.sessions, id)
	}
}

// Run sweeps expired sessions until ctx is done.
func (s *SessionStore) Run(ctx context.Context, logger *zap.Logger) error {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Debug("swept sessions", zap.Int("removed", n), zap.Int("live", s.Len()))
			}
		}
	}
}
