package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is the process-local cache contract: get, set with TTL, delete.
// Entries expire lazily; an expired entry reads as a miss. The cache is never
// authoritative — every miss self-heals from the store on the read path.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(keys ...string)
	Flush()
}

// memoryStore backs Store with an in-process TTL map
type memoryStore struct {
	c          *gocache.Cache
	defaultTTL time.Duration
}

// New creates a process-local cache store with the given default TTL.
func New(defaultTTL time.Duration) Store {
	// Cleanup at twice the TTL keeps memory bounded; correctness relies on
	// lazy expiry, not the janitor.
	return &memoryStore{
		c:          gocache.New(defaultTTL, 2*defaultTTL),
		defaultTTL: defaultTTL,
	}
}

func (s *memoryStore) Get(key string) (interface{}, bool) {
	return s.c.Get(key)
}

func (s *memoryStore) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	s.c.Set(key, value, ttl)
}

func (s *memoryStore) Delete(keys ...string) {
	for _, key := range keys {
		s.c.Delete(key)
	}
}

func (s *memoryStore) Flush() {
	s.c.Flush()
}
