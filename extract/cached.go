package extract

import (
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/policybin/cache"
)

// DefaultCacheSize is the number of extracted texts kept by NewCached
const DefaultCacheSize = 256

// Cached memoizes extraction by content hash and extension
type Cached struct {
	inner Extractor
	texts *lru.Cache[string, string]
}

// Extract returns cached text or delegates to the wrapped extractor
func (c *Cached) Extract(name string, data []byte) string {
	key, err := cache.Key(strings.ToLower(filepath.Ext(extensionSource(name))), data)
	if err != nil {
		return c.inner.Extract(name, data)
	}
	if text, ok := c.texts.Get(key); ok {
		return text
	}
	text := c.inner.Extract(name, data)
	c.texts.Add(key, text)
	return text
}

// Len returns number of cached entries
func (c *Cached) Len() int {
	return c.texts.Len()
}

// NewCached wraps inner with an LRU of size entries
func NewCached(inner Extractor, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	texts, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, texts: texts}, nil
}
