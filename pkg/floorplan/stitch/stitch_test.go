package stitch

import (
	"testing"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
)

func wall(id string, x1, y1, x2, y2, thickness float64) floorplan.Wall {
	return floorplan.Wall{
		ID:        id,
		Start:     geometry.Point{X: x1, Y: y1},
		End:       geometry.Point{X: x2, Y: y2},
		Thickness: thickness,
	}
}

func totalLength(walls []floorplan.Wall) float64 {
	var sum float64
	for _, w := range walls {
		sum += w.Length()
	}
	return sum
}

// Two collinear horizontal fragments with a 40px gap merge
// into a single wall spanning both.
func TestWalls_BridgesOpeningGap(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 0, 0, 100, 0, 10),
		wall("w2", 140, 0, 240, 0, 10),
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want 1 merged wall", len(got))
	}
	w := got[0]
	if w.Start.X != 0 || w.End.X != 240 {
		t.Errorf("merged span = (%v, %v), want (0, 240)", w.Start.X, w.End.X)
	}
	if w.Start.Y != 0 || w.End.Y != 0 {
		t.Errorf("merged wall drifted off the line: %+v", w)
	}
}

func TestWalls_GapBeyondToleranceStaysSplit(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 0, 0, 100, 0, 10),
		wall("w2", 200, 0, 300, 0, 10),
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 2 {
		t.Fatalf("got %d walls, want 2 (gap of 100 > tolerance)", len(got))
	}
}

func TestWalls_WideGapBridgedByDoor(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 0, 0, 100, 0, 10),
		wall("w2", 200, 0, 300, 0, 10),
	}
	doors := []floorplan.Door{{
		ID:     "d1",
		Center: geometry.Point{X: 150, Y: 0},
		Width:  90,
	}}

	got := Walls(in, doors, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want 1 (door sits in the gap)", len(got))
	}
	if got[0].Start.X != 0 || got[0].End.X != 300 {
		t.Errorf("merged span = (%v, %v), want (0, 300)", got[0].Start.X, got[0].End.X)
	}
}

func TestWalls_MergedThicknessIsMax(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 0, 0, 100, 0, 8),
		wall("w2", 120, 0, 220, 0, 14),
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want 1", len(got))
	}
	if got[0].Thickness != 14 {
		t.Errorf("thickness = %v, want max of contributors (14)", got[0].Thickness)
	}
}

// Slightly misaligned fragments land on the length-weighted average line:
// the longer fragment pulls the merged wall toward its own y.
func TestWalls_WeightedAlignment(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 0, 0, 300, 0, 10),  // length 300 at y=0
		wall("w2", 320, 6, 420, 6, 10), // length 100 at y=6
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want 1", len(got))
	}
	want := (0.0*300 + 6.0*100) / 400
	if y := got[0].Start.Y; y != want {
		t.Errorf("merged y = %v, want length-weighted %v", y, want)
	}
}

func TestWalls_ParallelLinesStaySeparate(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 0, 0, 200, 0, 10),
		wall("w2", 0, 100, 200, 100, 10), // parallel wall of another room
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 2 {
		t.Fatalf("got %d walls, want 2 parallel walls kept apart", len(got))
	}
}

func TestWalls_VerticalMerge(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 50, 0, 50, 120, 10),
		wall("w2", 50, 150, 50, 280, 10),
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want 1", len(got))
	}
	if got[0].Start.Y != 0 || got[0].End.Y != 280 {
		t.Errorf("merged span = (%v, %v), want (0, 280)", got[0].Start.Y, got[0].End.Y)
	}
}

func TestWalls_DiagonalPassthrough(t *testing.T) {
	diag := wall("w1", 0, 0, 100, 100, 10)

	got := Walls([]floorplan.Wall{diag}, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want 1", len(got))
	}
	if got[0] != diag {
		t.Errorf("diagonal wall modified: %+v", got[0])
	}
}

func TestWalls_DegenerateDropped(t *testing.T) {
	in := []floorplan.Wall{
		wall("w1", 10, 10, 10, 10, 10), // zero length
		wall("w2", 0, 0, 100, 0, 10),
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d walls, want degenerate wall dropped", len(got))
	}
	if got[0].ID != "w2" {
		t.Errorf("surviving wall = %s, want w2", got[0].ID)
	}
}

// Property: stitching never increases the wall count and never shrinks
// total coverage.
func TestWalls_CountAndCoverage(t *testing.T) {
	in := []floorplan.Wall{
		wall("a", 0, 0, 80, 0, 10),
		wall("b", 100, 0, 180, 0, 10),
		wall("c", 200, 2, 300, 2, 12),
		wall("d", 50, 200, 50, 300, 10),
		wall("e", 50, 320, 50, 400, 10),
		wall("f", 500, 500, 600, 580, 10),
	}

	got := Walls(in, nil, nil, DefaultConfig())

	if len(got) > len(in) {
		t.Errorf("wall count grew: %d -> %d", len(in), len(got))
	}
	if totalLength(got) < totalLength(in) {
		t.Errorf("coverage shrank: %v -> %v", totalLength(in), totalLength(got))
	}
}

func TestConfig_Scaled(t *testing.T) {
	cfg := DefaultConfig().Scaled(1000, 2000)
	if cfg.AlignTolerance != 15 {
		t.Errorf("AlignTolerance = %v, want 15 at 1000px", cfg.AlignTolerance)
	}
	if cfg.BridgeTolerance != 45 {
		t.Errorf("BridgeTolerance = %v, want 45 at 1000px", cfg.BridgeTolerance)
	}

	tiny := DefaultConfig().Scaled(100, 100)
	if tiny.BridgeTolerance != 20 {
		t.Errorf("BridgeTolerance = %v, want clamped to 20", tiny.BridgeTolerance)
	}

	huge := DefaultConfig().Scaled(10000, 10000)
	if huge.AlignTolerance != 40 {
		t.Errorf("AlignTolerance = %v, want clamped to 40", huge.AlignTolerance)
	}

	unscaled := DefaultConfig().Scaled(0, 0)
	if unscaled != DefaultConfig() {
		t.Errorf("Scaled(0,0) = %+v, want defaults untouched", unscaled)
	}
}
