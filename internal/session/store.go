package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultCapacity bounds how many concurrent user sessions are kept
const DefaultCapacity = 1024

// lruStore is a Store over an expiring LRU cache. Sessions untouched for
// the TTL are evicted, which is how abandoned conversations get cleaned
// up without a reaper goroutine.
type lruStore struct {
	cache *expirable.LRU[string, *Session]
}

// NewLRUStore creates a session store with the given capacity and TTL.
// Non-positive capacity falls back to DefaultCapacity.
func NewLRUStore(capacity int, ttl time.Duration) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &lruStore{
		cache: expirable.NewLRU[string, *Session](capacity, nil, ttl),
	}
}

func (s *lruStore) Get(userID string) (*Session, bool) {
	return s.cache.Get(userID)
}

func (s *lruStore) Put(userID string, sess *Session) {
	s.cache.Add(userID, sess)
}

func (s *lruStore) Delete(userID string) {
	s.cache.Remove(userID)
}

func (s *lruStore) Has(userID string) bool {
	return s.cache.Contains(userID)
}
