package rooms

// Config holds the detection thresholds. The historical values are kept as
// defaults but everything is tunable; in particular the luminance threshold
// and the large-area fraction are heuristics, not constants with a
// correctness guarantee.
type Config struct {
	// GridStep is the downsampling factor: one grid cell per GridStep
	// source pixels in each direction. Larger steps are faster and produce
	// coarser room polygons.
	GridStep int `toml:"grid_step"`

	// LuminanceThreshold separates open floor from painted obstacles.
	// Pixels strictly brighter than this are open. Mid-gray (128) works for
	// black-and-white rasterizations and is brittle on anything else.
	LuminanceThreshold uint8 `toml:"luminance_threshold"`

	// MinRoomArea rejects components smaller than this many source pixels
	// squared; tiny pockets between wall strokes are noise, not rooms.
	MinRoomArea float64 `toml:"min_room_area"`

	// BorderAreaFraction controls the all-components-touch-border fallback:
	// when every component touches the raster border, the largest one is
	// dropped as background only if it exceeds this fraction of the grid.
	BorderAreaFraction float64 `toml:"border_area_fraction"`

	// ClosureBreadth is the across-wall breadth of the rectangles painted
	// over doors and windows so rooms do not leak through their openings.
	ClosureBreadth float64 `toml:"closure_breadth"`
}

// DefaultConfig returns the detection thresholds used by the editor.
func DefaultConfig() Config {
	return Config{
		GridStep:           4,
		LuminanceThreshold: 128,
		MinRoomArea:        200,
		BorderAreaFraction: 0.35,
		ClosureBreadth:     12,
	}
}
