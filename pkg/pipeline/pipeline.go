// Package pipeline runs the geometry stages over a design with caching.
//
// The pipeline consists of three stages:
//
//  1. Arrange: lay out the schematic items from their connectivity
//  2. Stitch: merge fragmented floor-plan walls into a sealed skeleton
//  3. Rooms: detect enclosed rooms from the stitched walls
//
// Each stage is a pure function of its input and options, so results are
// cached under content-addressed keys. The CLI and the HTTP API both drive
// their geometry through a Runner to keep caching and logging in one place.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{CanvasWidth: 1000, CanvasHeight: 800}
//	result, err := runner.Execute(ctx, snapshot, plan, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rooms := result.Plan.Rooms
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan/rooms"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan/stitch"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic/arrange"
)

// Default canvas dimensions when the caller does not supply any. They match
// the editor's default drawing surface.
const (
	DefaultCanvasWidth  = 1000.0
	DefaultCanvasHeight = 800.0
)

// Options configures a pipeline run. The struct supports JSON serialization
// for API requests; zero values mean "use defaults".
type Options struct {
	// Stage toggles. All stages run by default.
	SkipArrange bool `json:"skip_arrange,omitempty"`
	SkipStitch  bool `json:"skip_stitch,omitempty"`
	SkipRooms   bool `json:"skip_rooms,omitempty"`

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Canvas dimensions, used for the room-detection raster and for
	// tolerance scaling.
	CanvasWidth  float64 `json:"canvas_width,omitempty"`
	CanvasHeight float64 `json:"canvas_height,omitempty"`

	// ScaleTolerances derives stitching tolerances from the canvas size
	// instead of using fixed pixel values.
	ScaleTolerances bool `json:"scale_tolerances,omitempty"`

	// Per-stage geometry options. Zero structs take stage defaults.
	Arrange arrange.Config `json:"arrange,omitempty"`
	Stitch  stitch.Config  `json:"stitch,omitempty"`
	Rooms   rooms.Config   `json:"rooms,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults.
// The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.CanvasWidth < 0 || o.CanvasHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas dimensions must be non-negative")
	}
	if o.CanvasWidth == 0 {
		o.CanvasWidth = DefaultCanvasWidth
	}
	if o.CanvasHeight == 0 {
		o.CanvasHeight = DefaultCanvasHeight
	}
	if o.Arrange == (arrange.Config{}) {
		o.Arrange = arrange.DefaultConfig()
	}
	if o.Stitch == (stitch.Config{}) {
		o.Stitch = stitch.DefaultConfig()
	}
	if o.Rooms == (rooms.Config{}) {
		o.Rooms = rooms.DefaultConfig()
	}
	if o.ScaleTolerances {
		o.Stitch = o.Stitch.Scaled(o.CanvasWidth, o.CanvasHeight)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Schematic is the input snapshot with arranged positions.
	Schematic schematic.Snapshot

	// Plan is the input plan with stitched walls and detected rooms.
	Plan floorplan.Plan

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount    int
	WallCountIn  int
	WallCountOut int
	RoomCount    int
	ArrangeTime  time.Duration
	StitchTime   time.Duration
	RoomsTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ArrangeHit bool
	StitchHit  bool
	RoomsHit   bool
}
