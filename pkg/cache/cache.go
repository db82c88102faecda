// Package cache remembers which files were already sorted so repeated runs
// can skip them.
package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/xxh3"
)

// Current schema version - increment when payload format changes
const schemaVersion uint16 = 1

// payload is the on-disk form
type payload struct {
	Schema      uint16
	Fingerprint string
	Entries     map[string]uint64
}

// Cache maps file paths to the hash of their last known sorted content.
// Thread-safe for concurrent access.
type Cache struct {
	mu          sync.RWMutex
	path        string
	fingerprint string
	entries     map[string]uint64
	dirty       bool
}

// Load reads the cache at path. A missing file, a different schema or a
// different options fingerprint all yield an empty cache.
func Load(path, fingerprint string) (*Cache, error) {
	c := &Cache{
		path:        path,
		fingerprint: fingerprint,
		entries:     map[string]uint64{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}

	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Schema != schemaVersion || p.Fingerprint != fingerprint {
		c.dirty = true
		return c, nil
	}
	for k, v := range p.Entries {
		c.entries[k] = v
	}
	return c, nil
}

// Hash is the content digest stored per file
func Hash(content []byte) uint64 {
	return xxh3.Hash(content)
}

// Unchanged reports whether content is what was recorded for file
func (c *Cache) Unchanged(file string, content []byte) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.entries[key(file)]
	return ok && h == Hash(content)
}

// Update records the sorted content of file
func (c *Cache) Update(file string, content []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	k, h := key(file), Hash(content)
	if old, ok := c.entries[k]; !ok || old != h {
		c.entries[k] = h
		c.dirty = true
	}
}

// Forget drops the entry for file
func (c *Cache) Forget(file string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key(file)]; ok {
		delete(c.entries, key(file))
		c.dirty = true
	}
}

// Len returns the number of recorded files
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Save writes the cache back when it changed since Load
func (c *Cache) Save() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}

	data, err := msgpack.Marshal(&payload{
		Schema:      schemaVersion,
		Fingerprint: c.fingerprint,
		Entries:     c.entries,
	})
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".impsort-cache-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(f.Name(), c.path); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

func key(file string) string {
	if abs, err := filepath.Abs(file); err == nil {
		return abs
	}
	return filepath.Clean(file)
}
