package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/proteinnavi/backend/internal/domain"
)

// fileEnvelope is the on-disk format: the value plus when it was written and
// how long it stays valid.
type fileEnvelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix millis
	TTLMillis int64           `json:"ttlMillis"`
}

// FileCache layers file persistence under a memory cache so cached data
// survives process restarts. Reads hit memory first and fall back to disk;
// writes go to both.
type FileCache struct {
	memory *MemoryCache
	dir    string
}

// NewFileCache creates a hybrid memory+file cache rooted at dir
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}

	return &FileCache{
		memory: NewMemoryCache(),
		dir:    dir,
	}, nil
}

// Get retrieves a value, reading through to the file layer on a memory miss
func (c *FileCache) Get(ctx context.Context, key string) (interface{}, error) {
	value, err := c.memory.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	envelope, err := c.readEnvelope(key)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	age := time.Since(time.UnixMilli(envelope.Timestamp))
	ttl := time.Duration(envelope.TTLMillis) * time.Millisecond
	if age >= ttl {
		return nil, domain.ErrCacheMiss
	}

	var decoded interface{}
	if err := json.Unmarshal(envelope.Data, &decoded); err != nil {
		return nil, domain.ErrCacheMiss
	}

	// Warm the memory layer with the remaining lifetime
	if err := c.memory.Set(ctx, key, decoded, ttl-age); err != nil {
		log.Printf("[CACHE] failed to warm memory layer for %q: %v", key, err)
	}

	return decoded, nil
}

// Set stores a value in memory and on disk with the given TTL
func (c *FileCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := c.memory.Set(ctx, key, value, ttl); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	envelope := fileEnvelope{
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
		TTLMillis: ttl.Milliseconds(),
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	// Memory already holds the value, so a failed disk write only costs
	// durability across restarts
	if err := os.WriteFile(c.filePath(key), raw, 0o644); err != nil {
		log.Printf("[CACHE] failed to persist %q to disk: %v", key, err)
	}

	return nil
}

// Delete removes a value from both layers
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := c.memory.Delete(ctx, key); err != nil {
		return err
	}
	if err := os.Remove(c.filePath(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists checks both layers for a live entry
func (c *FileCache) Exists(ctx context.Context, key string) (bool, error) {
	if ok, _ := c.memory.Exists(ctx, key); ok {
		return true, nil
	}

	envelope, err := c.readEnvelope(key)
	if err != nil {
		return false, nil
	}

	age := time.Since(time.UnixMilli(envelope.Timestamp))
	return age < time.Duration(envelope.TTLMillis)*time.Millisecond, nil
}

func (c *FileCache) readEnvelope(key string) (*fileEnvelope, error) {
	raw, err := os.ReadFile(c.filePath(key))
	if err != nil {
		return nil, err
	}

	var envelope fileEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// filePath maps a cache key to a file name, replacing separators that are
// unsafe on disk
func (c *FileCache) filePath(key string) string {
	safe := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(c.dir, safe+".json")
}
