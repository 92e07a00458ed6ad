// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about geometry computations and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeometryHooks(&myGeometryHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Geometry().OnArrangeStart(ctx, itemCount, connectorCount)
//	// ... compute layout ...
//	observability.Geometry().OnArrangeComplete(ctx, itemCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Geometry Hooks
// =============================================================================

// GeometryHooks receives events from the geometric computation pipeline.
type GeometryHooks interface {
	// Auto-arrange events
	OnArrangeStart(ctx context.Context, itemCount, connectorCount int)
	OnArrangeComplete(ctx context.Context, itemCount int, duration time.Duration)

	// Wall stitching events
	OnStitchStart(ctx context.Context, wallCount int)
	OnStitchComplete(ctx context.Context, wallCountIn, wallCountOut int, duration time.Duration)

	// Room detection events
	OnDetectStart(ctx context.Context, width, height int)
	OnDetectComplete(ctx context.Context, roomCount int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGeometryHooks is a no-op implementation of GeometryHooks.
type NoopGeometryHooks struct{}

func (NoopGeometryHooks) OnArrangeStart(context.Context, int, int)                  {}
func (NoopGeometryHooks) OnArrangeComplete(context.Context, int, time.Duration)     {}
func (NoopGeometryHooks) OnStitchStart(context.Context, int)                        {}
func (NoopGeometryHooks) OnStitchComplete(context.Context, int, int, time.Duration) {}
func (NoopGeometryHooks) OnDetectStart(context.Context, int, int)                   {}
func (NoopGeometryHooks) OnDetectComplete(context.Context, int, time.Duration)      {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	geometryHooks GeometryHooks = NoopGeometryHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetGeometryHooks registers custom geometry hooks.
// This should be called once at application startup before any computations.
func SetGeometryHooks(h GeometryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		geometryHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Geometry returns the registered geometry hooks.
func Geometry() GeometryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return geometryHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	geometryHooks = NoopGeometryHooks{}
	cacheHooks = NoopCacheHooks{}
}
