package cache

// Keyer generates cache keys for the geometry pipeline stages. Each key
// embeds a content hash of the stage input plus the options in effect, so
// any change to either produces a distinct key.
type Keyer interface {
	// ArrangeKey keys an auto-arrange result by snapshot hash and layout options.
	ArrangeKey(snapshotHash string, opts any) string

	// StitchKey keys a wall-stitching result by plan hash and tolerance options.
	StitchKey(planHash string, opts any) string

	// RoomsKey keys a room-detection result by plan hash and detection options.
	RoomsKey(planHash string, opts any) string

	// ArtifactKey keys a rendered artifact by result hash and render options.
	ArtifactKey(resultHash string, opts any) string
}

// DefaultKeyer is the standard key scheme: namespace prefix plus a SHA-256
// hash of the input hash and the JSON-encoded options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

func (DefaultKeyer) ArrangeKey(snapshotHash string, opts any) string {
	return hashKey("arrange", snapshotHash, opts)
}

func (DefaultKeyer) StitchKey(planHash string, opts any) string {
	return hashKey("stitch", planHash, opts)
}

func (DefaultKeyer) RoomsKey(planHash string, opts any) string {
	return hashKey("rooms", planHash, opts)
}

func (DefaultKeyer) ArtifactKey(resultHash string, opts any) string {
	return hashKey("artifact", resultHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation, so
// different users or projects get separate cache namespaces on a shared
// backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every generated key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArrangeKey(snapshotHash string, opts any) string {
	return k.prefix + k.inner.ArrangeKey(snapshotHash, opts)
}

func (k *ScopedKeyer) StitchKey(planHash string, opts any) string {
	return k.prefix + k.inner.StitchKey(planHash, opts)
}

func (k *ScopedKeyer) RoomsKey(planHash string, opts any) string {
	return k.prefix + k.inner.RoomsKey(planHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(resultHash string, opts any) string {
	return k.prefix + k.inner.ArtifactKey(resultHash, opts)
}
