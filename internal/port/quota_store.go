package port

import "time"

// QuotaStore tracks per-key counters over a fixed window. Increment is
// atomic per key; a key's counter resets once its window expires.
type QuotaStore interface {
	// Increment advances the counter for key and returns the count observed
	// within the key's current window, including this call.
	Increment(key string, window time.Duration) int
	// Count returns the current count for key without advancing it.
	Count(key string) int
}
