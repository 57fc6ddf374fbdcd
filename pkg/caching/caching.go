// Package caching stores extracted page text between runs so repeated
// summaries of the same URL skip the browser.
package caching

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/suenkler-ai/scraper-summarizer/internal/common"
)

// Cache is a file-based page-text cache with a TTL. Entries are keyed by
// the SHA256 of the encoded URL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates the cache directory if it does not exist. A TTL of
// zero means every lookup misses (cache effectively disabled).
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

func (c *Cache) entryPath(url string) string {
	return filepath.Join(c.path, common.ContentHash([]byte(url))+".txt")
}

// GetText retrieves the cached text for a URL. Returns ok=false on miss,
// expiry, or read failure; a cache problem is never fatal.
func (c *Cache) GetText(url string) (string, bool) {
	filePath := c.entryPath(url)

	info, err := os.Stat(filePath)
	if err != nil {
		return "", false
	}
	if c.ttl <= 0 || time.Since(info.ModTime()) > c.ttl {
		return "", false // expired
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// SetText stores the extracted text for a URL.
func (c *Cache) SetText(url, text string) error {
	if err := os.WriteFile(c.entryPath(url), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
