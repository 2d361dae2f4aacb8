// Package repository defines the string key-value boundary the store
// persists through, with Redis and in-memory implementations.
package repository

import "errors"

// ErrKeyNotFound is returned by Get when a key has never been written
// or has been removed.
var ErrKeyNotFound = errors.New("key not found")

// Storage keys used by the store. All values are JSON documents except
// KeyLastSync, which holds a raw RFC 3339 timestamp.
const (
	KeyEventsCache    = "events_cache"
	KeyAttendeesCache = "attendees_cache"
	KeyTicketsCache   = "tickets_cache"
	KeyTeamCache      = "team_cache"
	KeyJobsCache      = "jobs_cache"
	KeyAnalyticsCache = "analytics_cache"
	KeyUserSettings   = "user_settings"
	KeyLastSync       = "last_sync"
)

// CacheKeys lists every key the store may hold, in reset order
func CacheKeys() []string {
	return []string{
		KeyEventsCache,
		KeyAttendeesCache,
		KeyTicketsCache,
		KeyTeamCache,
		KeyJobsCache,
		KeyAnalyticsCache,
		KeyUserSettings,
		KeyLastSync,
	}
}

// KV is the persistence contract. Implementations store opaque strings;
// serialization is the caller's concern.
type KV interface {
	// Get returns the value for key, or ErrKeyNotFound
	Get(key string) (string, error)

	// Set writes the value for key, overwriting any previous value
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
