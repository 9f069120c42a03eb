// Package cache provides page cache implementations for skipping unchanged
// pages across runs.
package cache

// PageCache is the interface for per-language page state caching. Values are
// small strings: content hashes or rendered output.
type PageCache interface {
	// Get retrieves a cached value. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}
