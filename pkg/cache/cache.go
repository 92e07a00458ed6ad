// Package cache provides byte-level caching for geometry results and
// rendered artifacts.
//
// Layout, stitching, and room detection are pure functions of their inputs,
// so results are cached under content-addressed keys: a SHA-256 hash of the
// input snapshot combined with the options in effect. Backends cover local
// CLI usage (FileCache), server deployments (RedisCache), and disabled
// caching (NullCache).
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores opaque byte payloads under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero or negative ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// keyType extracts the namespace prefix of a key ("arrange", "stitch", ...)
// for observability labeling.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
