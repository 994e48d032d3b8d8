// Package kv provides the synchronous string key-value storage the
// checklist state persists through, with two interchangeable backends
// and a polling watcher for cross-process change notification.
package kv

// KV is a flat string-keyed store. Values are raw strings; callers own
// their encoding. All operations are synchronous.
type KV interface {
	// Get returns the raw value for key. The second result is false
	// when the key is absent.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	Close() error
}
