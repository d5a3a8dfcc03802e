// Package session keeps the most recent resume upload per browser session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session id.
const CookieName = "ats_session"

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 2 * time.Hour

// Resume is the uploaded resume held for a session.
type Resume struct {
	Filename   string
	Text       string
	Skills     []string
	UploadedAt time.Time
}

type entry struct {
	resume     *Resume
	lastAccess time.Time
}

// Store is an in-memory session store with idle expiry. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewStore creates a Store. When cleanupInterval is positive a goroutine evicts
// expired sessions periodically; call Stop to end it.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}

	if cleanupInterval > 0 {
		s.cleanupTicker = time.NewTicker(cleanupInterval)
		s.cleanupStop = make(chan struct{})
		go s.cleanup()
	}
	return s
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Put stores the resume for a session, replacing any previous upload.
func (s *Store) Put(id string, r *Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{resume: r, lastAccess: s.now()}
}

// Get returns the resume for a session. Expired sessions are reported as absent.
func (s *Store) Get(id string) (*Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastAccess) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	e.lastAccess = now
	return e.resume, true
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of stored sessions, including expired ones not yet evicted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// cleanup evicts expired sessions until Stop is called.
func (s *Store) cleanup() {
	for {
		select {
		case <-s.cleanupTicker.C:
			s.evictExpired()
		case <-s.cleanupStop:
			return
		}
	}
}

// evictExpired removes sessions idle for longer than the TTL and returns how many.
func (s *Store) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if e.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Stop stops the cleanup goroutine.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		if s.cleanupTicker != nil {
			s.cleanupTicker.Stop()
		}
		if s.cleanupStop != nil {
			close(s.cleanupStop)
		}
	})
}
