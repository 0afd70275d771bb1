package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

// Cache stores rendered chart images keyed by their render request
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte) error
	Close() error
}

// Key derives the cache key for a render request: the sha256 of its
// canonical JSON encoding.
func Key(req types.RenderRequest) (string, error) {
	buf, err := req.CacheKey()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}

// New returns a badger-backed cache when dir is set, otherwise a
// process-local memory cache.
func New(dir string) (Cache, error) {
	if dir == "" {
		return NewMemory(), nil
	}
	return OpenBadger(dir)
}

// Memory is an in-process cache with no eviction; it lives only as long
// as the server process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty memory cache
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.entries[key]
	return val, ok
}

func (m *Memory) Set(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = val
	return nil
}

func (m *Memory) Close() error { return nil }
