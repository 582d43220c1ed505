// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out session tokens until they would
// have expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, username string, ttl time.Duration)

	// IsRevoked reports whether tokenID was revoked and has not yet aged out.
	IsRevoked(tokenID string) bool

	// Purge drops aged-out entries and returns how many were removed.
	Purge() int
}

type entry struct {
	username  string
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, username string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = entry{
		username:  username,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	e, ok := s.data[tokenID]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, tokenID)
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *RevokedTokens) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
