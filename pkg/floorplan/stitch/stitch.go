// Package stitch merges fragmented wall segments into a continuous wall
// skeleton. Detection output routinely stops walls short of every door and
// window; stitching closes those gaps and fuses nearly-collinear fragments
// so room detection sees sealed boundaries.
//
// The approach is axis-aligned clustering: walls are bucketed by dominant
// axis, clustered by their perpendicular alignment coordinate, and merged by
// a sorted sweep along the line axis. Diagonal walls pass through unmodified.
// Clustering is deliberately local - two far-apart fragments on the same
// infinite line are never fused, only adjacent-in-sorted-order ones.
package stitch

import (
	"math"
	"slices"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
)

// Config holds the stitching tolerances, in design-space pixels.
type Config struct {
	// AlignTolerance is the maximum perpendicular distance between two
	// fragments that still count as the same wall line.
	AlignTolerance float64 `toml:"align_tolerance"`

	// BridgeTolerance is the maximum along-axis gap that is closed when
	// merging adjacent fragments. Gaps wider than this stay separate walls
	// unless an opening sits inside them.
	BridgeTolerance float64 `toml:"bridge_tolerance"`

	// MaxSkew is the maximum perpendicular drift over a fragment's length
	// for it to be classified as horizontal or vertical at all.
	MaxSkew float64 `toml:"max_skew"`
}

// DefaultConfig returns tolerances tuned for a ~1000px floor plan.
func DefaultConfig() Config {
	return Config{
		AlignTolerance:  15,
		BridgeTolerance: 45,
		MaxSkew:         10,
	}
}

// Scaled returns a config whose tolerances are scaled as a fraction of the
// smaller canvas dimension, clamped to sane absolute bounds. Fixed pixel
// tolerances break on very large or very small detector imagery.
func (c Config) Scaled(canvasWidth, canvasHeight float64) Config {
	smaller := math.Min(canvasWidth, canvasHeight)
	if smaller <= 0 {
		return c
	}
	out := c
	out.AlignTolerance = clamp(smaller*0.015, 8, 40)
	out.BridgeTolerance = clamp(smaller*0.045, 20, 120)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Walls merges the wall set and returns a new slice. Degenerate walls
// (start == end) are dropped; diagonal walls are passed through untouched.
// Openings widen the bridging rule: a gap wider than BridgeTolerance is
// still closed when a door or window sits inside it, since the detector cut
// the wall there on purpose.
func Walls(walls []floorplan.Wall, doors []floorplan.Door, windows []floorplan.Window, cfg Config) []floorplan.Wall {
	var horizontal, vertical, out []floorplan.Wall

	for _, w := range walls {
		if w.Segment().IsDegenerate() {
			continue
		}
		dx := math.Abs(w.End.X - w.Start.X)
		dy := math.Abs(w.End.Y - w.Start.Y)
		switch {
		case dx > dy && dy < cfg.MaxSkew:
			horizontal = append(horizontal, normalizeH(w))
		case dy > dx && dx < cfg.MaxSkew:
			vertical = append(vertical, normalizeV(w))
		default:
			out = append(out, w)
		}
	}

	openings := collectOpenings(doors, windows)
	out = append(out, mergeAxis(horizontal, openings, cfg, horizontalAxis{})...)
	out = append(out, mergeAxis(vertical, openings, cfg, verticalAxis{})...)
	return out
}

// opening is a door or window reduced to its center point.
type opening struct {
	x, y float64
}

func collectOpenings(doors []floorplan.Door, windows []floorplan.Window) []opening {
	ops := make([]opening, 0, len(doors)+len(windows))
	for _, d := range doors {
		ops = append(ops, opening{x: d.Center.X, y: d.Center.Y})
	}
	for _, w := range windows {
		ops = append(ops, opening{x: w.Center.X, y: w.Center.Y})
	}
	return ops
}

// axis abstracts the along/across coordinate split so horizontal and
// vertical clusters share one merge implementation.
type axis interface {
	along(w floorplan.Wall) (lo, hi float64)
	across(w floorplan.Wall) float64
	openingCoords(o opening) (along, across float64)
	build(lo, hi, across, thickness float64, id string) floorplan.Wall
}

type horizontalAxis struct{}

func (horizontalAxis) along(w floorplan.Wall) (float64, float64) { return w.Start.X, w.End.X }
func (horizontalAxis) across(w floorplan.Wall) float64           { return (w.Start.Y + w.End.Y) / 2 }
func (horizontalAxis) openingCoords(o opening) (float64, float64) {
	return o.x, o.y
}
func (horizontalAxis) build(lo, hi, across, thickness float64, id string) floorplan.Wall {
	return floorplan.Wall{
		ID:        id,
		Start:     pt(lo, across),
		End:       pt(hi, across),
		Thickness: thickness,
	}
}

type verticalAxis struct{}

func (verticalAxis) along(w floorplan.Wall) (float64, float64) { return w.Start.Y, w.End.Y }
func (verticalAxis) across(w floorplan.Wall) float64           { return (w.Start.X + w.End.X) / 2 }
func (verticalAxis) openingCoords(o opening) (float64, float64) {
	return o.y, o.x
}
func (verticalAxis) build(lo, hi, across, thickness float64, id string) floorplan.Wall {
	return floorplan.Wall{
		ID:        id,
		Start:     pt(across, lo),
		End:       pt(across, hi),
		Thickness: thickness,
	}
}

// mergeAxis clusters one axis bucket by the across coordinate and sweeps
// each cluster along the line axis, fusing fragments whose gap is within
// tolerance (or bridged by an opening).
func mergeAxis(walls []floorplan.Wall, openings []opening, cfg Config, ax axis) []floorplan.Wall {
	if len(walls) == 0 {
		return nil
	}

	slices.SortStableFunc(walls, func(a, b floorplan.Wall) int {
		if d := ax.across(a) - ax.across(b); d != 0 {
			return sign(d)
		}
		alo, _ := ax.along(a)
		blo, _ := ax.along(b)
		return sign(alo - blo)
	})

	var out []floorplan.Wall
	for start := 0; start < len(walls); {
		// Grow the cluster while adjacent across-coordinates stay within
		// the alignment tolerance.
		end := start + 1
		for end < len(walls) && ax.across(walls[end])-ax.across(walls[end-1]) < cfg.AlignTolerance {
			end++
		}
		out = append(out, mergeCluster(walls[start:end], openings, cfg, ax)...)
		start = end
	}
	return out
}

// mergeCluster fuses one same-line cluster. The merged wall's across
// coordinate is the length-weighted average of its fragments, its thickness
// the maximum.
func mergeCluster(cluster []floorplan.Wall, openings []opening, cfg Config, ax axis) []floorplan.Wall {
	frags := slices.Clone(cluster)
	slices.SortStableFunc(frags, func(a, b floorplan.Wall) int {
		alo, _ := ax.along(a)
		blo, _ := ax.along(b)
		return sign(alo - blo)
	})

	var out []floorplan.Wall

	type active struct {
		id            string
		lo, hi        float64
		thickness     float64
		weightedCoord float64 // sum of across * length
		totalLen      float64
	}

	flush := func(a active) {
		across := a.weightedCoord / a.totalLen
		out = append(out, ax.build(a.lo, a.hi, across, a.thickness, a.id))
	}

	begin := func(w floorplan.Wall) active {
		lo, hi := ax.along(w)
		length := hi - lo
		return active{
			id:            w.ID,
			lo:            lo,
			hi:            hi,
			thickness:     w.Thickness,
			weightedCoord: ax.across(w) * length,
			totalLen:      length,
		}
	}

	curr := begin(frags[0])
	for _, w := range frags[1:] {
		lo, hi := ax.along(w)
		gap := lo - curr.hi
		if gap <= cfg.BridgeTolerance || openingInGap(openings, curr.hi, lo, ax.across(w), cfg, ax) {
			length := hi - lo
			curr.hi = math.Max(curr.hi, hi)
			curr.thickness = math.Max(curr.thickness, w.Thickness)
			curr.weightedCoord += ax.across(w) * length
			curr.totalLen += length
			continue
		}
		flush(curr)
		curr = begin(w)
	}
	flush(curr)
	return out
}

// openingInGap reports whether a door or window center falls inside the
// along-axis gap, close enough to the wall line to belong to it.
func openingInGap(openings []opening, gapLo, gapHi, across float64, cfg Config, ax axis) bool {
	const margin = 2.0
	for _, o := range openings {
		along, oAcross := ax.openingCoords(o)
		if along < gapLo-margin || along > gapHi+margin {
			continue
		}
		if math.Abs(oAcross-across) <= cfg.BridgeTolerance {
			return true
		}
	}
	return false
}

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

// normalizeH orients a horizontal wall left to right.
func normalizeH(w floorplan.Wall) floorplan.Wall {
	if w.Start.X > w.End.X {
		w.Start, w.End = w.End, w.Start
	}
	return w
}

// normalizeV orients a vertical wall top to bottom.
func normalizeV(w floorplan.Wall) floorplan.Wall {
	if w.Start.Y > w.End.Y {
		w.Start, w.End = w.End, w.Start
	}
	return w
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
