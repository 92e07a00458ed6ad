package cache

import "time"

// Default TTLs per entry class. Geometry results are pure functions of
// their keys, so expiry only bounds disk growth, not staleness.
const (
	// TTLGeometry applies to arrange, stitch, and rooms results.
	TTLGeometry = 24 * time.Hour

	// TTLArtifact applies to rendered images, which are larger and cheaper
	// to keep than to redraw.
	TTLArtifact = 7 * 24 * time.Hour
)
