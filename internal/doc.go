// Package internal holds the infrastructure shared by the batch and watch
// modes of scover.
//
// Key components:
//
// Cache: a generic, mutex-protected key/value store persisted with
// encoding/gob. Entries older than the configured max age are dropped on
// lookup. CacheKey derives a stable key from any number of strings.
//
// Watcher: wraps fsnotify and reports writes to matching files after a
// short debounce, so an editor saving a file in several steps triggers a
// single callback.
//
// Usage:
//
//	cache, err := internal.NewCache[*analyzer.Result](".scover-cache")
//	if err != nil {
//	    // handle error
//	}
//	cache.Set(internal.CacheKey("basic", "a and b"), res)
//	defer cache.Save()
//
// This package is intended for internal use within scover and should not be
// imported by external packages.
package internal
