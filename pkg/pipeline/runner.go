package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rickerduniya/Sayanho-sub002/pkg/cache"
	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan/rooms"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan/stitch"
	"github.com/rickerduniya/Sayanho-sub002/pkg/observability"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic/arrange"
)

// Runner executes pipeline stages with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer gets the DefaultKeyer; a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs arrange, stitch, and room detection over a design, honoring
// the stage toggles in opts. Skipped stages pass their input through.
func (r *Runner) Execute(ctx context.Context, snap schematic.Snapshot, plan floorplan.Plan, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	result := &Result{Schematic: snap, Plan: plan}
	result.Stats.ItemCount = len(snap.Items)
	result.Stats.WallCountIn = len(plan.Walls)

	if !opts.SkipArrange {
		start := time.Now()
		arranged, hit, err := r.ArrangeWithCacheInfo(ctx, snap, opts)
		if err != nil {
			return nil, err
		}
		result.Schematic = arranged
		result.Stats.ArrangeTime = time.Since(start)
		result.CacheInfo.ArrangeHit = hit

		opts.Logger.Info("arranged schematic",
			"items", len(arranged.Items),
			"cached", hit,
			"duration", result.Stats.ArrangeTime)
	}

	if !opts.SkipStitch {
		start := time.Now()
		stitched, hit, err := r.StitchWithCacheInfo(ctx, result.Plan, opts)
		if err != nil {
			return nil, err
		}
		result.Plan = stitched
		result.Stats.StitchTime = time.Since(start)
		result.CacheInfo.StitchHit = hit

		opts.Logger.Info("stitched walls",
			"in", result.Stats.WallCountIn,
			"out", len(stitched.Walls),
			"cached", hit,
			"duration", result.Stats.StitchTime)
	}
	result.Stats.WallCountOut = len(result.Plan.Walls)

	if !opts.SkipRooms {
		start := time.Now()
		detected, hit, err := r.DetectRoomsWithCacheInfo(ctx, result.Plan, opts)
		if err != nil {
			return nil, err
		}
		result.Plan.Rooms = detected
		result.Stats.RoomsTime = time.Since(start)
		result.CacheInfo.RoomsHit = hit

		opts.Logger.Info("detected rooms",
			"rooms", len(detected),
			"cached", hit,
			"duration", result.Stats.RoomsTime)
	}
	result.Stats.RoomCount = len(result.Plan.Rooms)

	return result, nil
}

// ArrangeWithCacheInfo lays out the snapshot with caching and reports
// whether the result came from cache.
func (r *Runner) ArrangeWithCacheInfo(ctx context.Context, snap schematic.Snapshot, opts Options) (schematic.Snapshot, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return schematic.Snapshot{}, false, err
	}

	key, err := r.arrangeKey(snap, opts)
	if err != nil {
		return schematic.Snapshot{}, false, err
	}
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached schematic.Snapshot
			if json.Unmarshal(data, &cached) == nil {
				return cached, true, nil
			}
		}
	}

	observability.Geometry().OnArrangeStart(ctx, len(snap.Items), len(snap.Connectors))
	start := time.Now()
	items := arrange.Arrange(snap.Items, snap.Connectors, opts.Arrange)
	out := schematic.Snapshot{Items: items, Connectors: snap.Connectors}
	observability.Geometry().OnArrangeComplete(ctx, len(items), time.Since(start))

	if data, err := json.Marshal(out); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLGeometry)
	}
	return out, false, nil
}

// Arrange is a convenience wrapper that discards the cache hit info.
func (r *Runner) Arrange(ctx context.Context, snap schematic.Snapshot, opts Options) (schematic.Snapshot, error) {
	out, _, err := r.ArrangeWithCacheInfo(ctx, snap, opts)
	return out, err
}

// StitchWithCacheInfo merges the plan's walls with caching and reports
// whether the result came from cache. Rooms are carried over unchanged.
func (r *Runner) StitchWithCacheInfo(ctx context.Context, plan floorplan.Plan, opts Options) (floorplan.Plan, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return floorplan.Plan{}, false, err
	}

	key, err := r.stitchKey(plan, opts)
	if err != nil {
		return floorplan.Plan{}, false, err
	}
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var walls []floorplan.Wall
			if json.Unmarshal(data, &walls) == nil {
				out := plan
				out.Walls = walls
				return out, true, nil
			}
		}
	}

	observability.Geometry().OnStitchStart(ctx, len(plan.Walls))
	start := time.Now()
	walls := stitch.Walls(plan.Walls, plan.Doors, plan.Windows, opts.Stitch)
	observability.Geometry().OnStitchComplete(ctx, len(plan.Walls), len(walls), time.Since(start))

	if data, err := json.Marshal(walls); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLGeometry)
	}
	out := plan
	out.Walls = walls
	return out, false, nil
}

// Stitch is a convenience wrapper that discards the cache hit info.
func (r *Runner) Stitch(ctx context.Context, plan floorplan.Plan, opts Options) (floorplan.Plan, error) {
	out, _, err := r.StitchWithCacheInfo(ctx, plan, opts)
	return out, err
}

// DetectRoomsWithCacheInfo detects rooms in the plan with caching and
// reports whether the result came from cache.
func (r *Runner) DetectRoomsWithCacheInfo(ctx context.Context, plan floorplan.Plan, opts Options) ([]floorplan.Room, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	key, err := r.roomsKey(plan, opts)
	if err != nil {
		return nil, false, err
	}
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached []floorplan.Room
			if json.Unmarshal(data, &cached) == nil {
				return cached, true, nil
			}
		}
	}

	width, height := int(opts.CanvasWidth), int(opts.CanvasHeight)
	observability.Geometry().OnDetectStart(ctx, width, height)
	start := time.Now()
	detected := rooms.FromGeometry(width, height, plan.Walls, plan.Doors, plan.Windows, opts.Rooms)
	observability.Geometry().OnDetectComplete(ctx, len(detected), time.Since(start))

	if data, err := json.Marshal(detected); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLGeometry)
	}
	return detected, false, nil
}

// DetectRooms is a convenience wrapper that discards the cache hit info.
func (r *Runner) DetectRooms(ctx context.Context, plan floorplan.Plan, opts Options) ([]floorplan.Room, error) {
	out, _, err := r.DetectRoomsWithCacheInfo(ctx, plan, opts)
	return out, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) arrangeKey(snap schematic.Snapshot, opts Options) (string, error) {
	hash, err := cache.HashJSON(snap)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash snapshot")
	}
	return r.Keyer.ArrangeKey(hash, opts.Arrange), nil
}

func (r *Runner) stitchKey(plan floorplan.Plan, opts Options) (string, error) {
	// Rooms are excluded: stitching depends on walls and openings only.
	input := floorplan.Plan{Walls: plan.Walls, Doors: plan.Doors, Windows: plan.Windows}
	hash, err := cache.HashJSON(input)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash plan")
	}
	return r.Keyer.StitchKey(hash, opts.Stitch), nil
}

func (r *Runner) roomsKey(plan floorplan.Plan, opts Options) (string, error) {
	input := floorplan.Plan{Walls: plan.Walls, Doors: plan.Doors, Windows: plan.Windows}
	hash, err := cache.HashJSON(input)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash plan")
	}
	keyOpts := struct {
		Config rooms.Config
		Width  float64
		Height float64
	}{opts.Rooms, opts.CanvasWidth, opts.CanvasHeight}
	return r.Keyer.RoomsKey(hash, keyOpts), nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
