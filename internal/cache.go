package internal

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	cacheFileName   = "scover_cache.gob"
	defaultCacheAge = 24 * time.Hour
)

type CacheEntry[V any] struct {
	Value        V
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache is a gob-persisted map from hashed keys to values. Entries expire
// after maxAge. It is safe for concurrent use.
type Cache[V any] struct {
	CacheDir string
	entries  map[string]CacheEntry[V]
	mutex    sync.RWMutex
	maxAge   time.Duration
	dirty    bool
}

func NewCache[V any](cacheDir string) (*Cache[V], error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache[V]{
		CacheDir: cacheDir,
		entries:  make(map[string]CacheEntry[V]),
		maxAge:   defaultCacheAge,
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return cache, nil
}

// CacheKey hashes parts into a fixed-size key.
func CacheKey(parts ...string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(strings.Join(parts, "\x00"))))
}

func (c *Cache[V]) path() string {
	return filepath.Join(c.CacheDir, cacheFileName)
}

func (c *Cache[V]) load() error {
	file, err := os.Open(c.path())
	if os.IsNotExist(err) {
		return nil // nothing saved yet
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}

	return nil
}

// Save writes the entries to disk if anything changed since the last save.
func (c *Cache[V]) Save() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.dirty {
		return nil
	}
	if err := c.save(); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

func (c *Cache[V]) save() error {
	file, err := os.Create(c.path())
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}

	return nil
}

func (c *Cache[V]) Set(key string, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	c.entries[key] = CacheEntry[V]{
		Value:        value,
		CreatedAt:    now,
		LastAccessed: now,
	}
	c.dirty = true
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero V
	entry, exists := c.entries[key]
	if !exists {
		return zero, false
	}

	if time.Since(entry.CreatedAt) > c.maxAge {
		delete(c.entries, key)
		c.dirty = true
		return zero, false
	}

	entry.LastAccessed = time.Now()
	c.entries[key] = entry

	return entry.Value, true
}

func (c *Cache[V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

func (c *Cache[V]) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]CacheEntry[V])
	c.dirty = false
	return c.save()
}
