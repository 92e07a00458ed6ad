package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

func decodePNG(t *testing.T, data []byte) (w, h int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestPlanPNG(t *testing.T) {
	plan := floorplan.Plan{
		Walls: []floorplan.Wall{
			{ID: "w1", Start: geometry.Point{X: 50, Y: 50}, End: geometry.Point{X: 450, Y: 50}, Thickness: 10},
			{ID: "w2", Start: geometry.Point{X: 450, Y: 50}, End: geometry.Point{X: 450, Y: 350}, Thickness: 10},
		},
		Doors: []floorplan.Door{
			{ID: "d1", Center: geometry.Point{X: 200, Y: 50}, Width: 80, Swing: floorplan.SwingLeft},
		},
		Windows: []floorplan.Window{
			{ID: "win1", Center: geometry.Point{X: 450, Y: 200}, Width: 60, Rotation: 90},
		},
		Rooms: []floorplan.Room{
			{ID: "r1", Name: "Room 1", Polygon: []geometry.Point{{X: 60, Y: 60}, {X: 440, Y: 60}, {X: 440, Y: 340}, {X: 60, Y: 340}}},
		},
	}

	data, err := PlanPNG(plan, 500, 400, Options{Labels: true})
	if err != nil {
		t.Fatalf("PlanPNG: %v", err)
	}
	if w, h := decodePNG(t, data); w != 500 || h != 400 {
		t.Errorf("image is %dx%d, want 500x400", w, h)
	}
}

func TestPlanPNGScaled(t *testing.T) {
	plan := floorplan.Plan{
		Walls: []floorplan.Wall{
			{ID: "w1", Start: geometry.Point{X: 10, Y: 10}, End: geometry.Point{X: 90, Y: 10}, Thickness: 6},
		},
	}

	data, err := PlanPNG(plan, 100, 80, Options{Scale: 2})
	if err != nil {
		t.Fatalf("PlanPNG: %v", err)
	}
	if w, h := decodePNG(t, data); w != 200 || h != 160 {
		t.Errorf("image is %dx%d, want 200x160 at scale 2", w, h)
	}
}

func TestPlanPNGInvalidCanvas(t *testing.T) {
	if _, err := PlanPNG(floorplan.Plan{}, 0, 100, Options{}); err == nil {
		t.Error("zero-width canvas should error")
	}
}

func TestSchematicPNG(t *testing.T) {
	snap := schematic.Snapshot{
		Items: []schematic.Item{
			{ID: "db1", Type: schematic.TypeDistributionBoard, Position: geometry.Point{X: 100, Y: 0}, Width: 120, Height: 80, Label: "DB-1"},
			{ID: "load1", Type: schematic.TypeLoad, Position: geometry.Point{X: 130, Y: 200}, Width: 60, Height: 40},
		},
		Connectors: []schematic.Connector{
			{From: "db1", To: "load1"},
			{From: "db1", To: "ghost"}, // dangling, must not panic
		},
	}

	data, err := SchematicPNG(snap, Options{Labels: true})
	if err != nil {
		t.Fatalf("SchematicPNG: %v", err)
	}
	// Content spans x 100..220, y 0..240; default margin 40 on each side.
	if w, h := decodePNG(t, data); w != 200 || h != 320 {
		t.Errorf("image is %dx%d, want 200x320", w, h)
	}
}

func TestSchematicPNGEmpty(t *testing.T) {
	if _, err := SchematicPNG(schematic.Snapshot{}, Options{}); err == nil {
		t.Error("empty snapshot should error")
	}
}

func TestToDOT(t *testing.T) {
	snap := schematic.Snapshot{
		Items: []schematic.Item{
			{ID: "db1", Type: schematic.TypeDistributionBoard, Label: "Main Board"},
			{ID: "load1", Type: schematic.TypeLoad},
		},
		Connectors: []schematic.Connector{
			{From: "db1", FromPoint: "phase_R_out1", To: "load1"},
		},
	}

	dot := ToDOT(snap, DOTOptions{})

	if !strings.Contains(dot, "digraph connectivity") {
		t.Error("missing digraph declaration")
	}
	if !strings.Contains(dot, `"db1"`) || !strings.Contains(dot, `"load1"`) {
		t.Error("missing nodes")
	}
	if !strings.Contains(dot, `"db1" -> "load1"`) {
		t.Error("missing edge")
	}
	if !strings.Contains(dot, `taillabel="phase_R_out1"`) {
		t.Error("missing phase tail label")
	}
	if !strings.Contains(dot, "Main Board") {
		t.Error("missing item label")
	}
	if !strings.Contains(dot, "fillcolor=lightyellow") {
		t.Error("distribution board should get board styling")
	}
}

func TestToDOTDetailed(t *testing.T) {
	snap := schematic.Snapshot{
		Items: []schematic.Item{
			{ID: "m1", Type: schematic.TypeMeter, Position: geometry.Point{X: 10, Y: 20}},
		},
	}

	dot := ToDOT(snap, DOTOptions{Detailed: true})

	if !strings.Contains(dot, "type: meter") {
		t.Errorf("detailed label missing type:\n%s", dot)
	}
	if !strings.Contains(dot, "at: (10, 20)") {
		t.Errorf("detailed label missing position:\n%s", dot)
	}
	if !strings.Contains(dot, "shape=ellipse") {
		t.Error("meter should get ellipse styling")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="134pt" height="116pt" viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg">body</svg>`)

	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 134.00 116.00"`) {
		t.Errorf("viewBox not normalized:\n%s", out)
	}
	if !strings.Contains(out, `width="134" height="116"`) {
		t.Errorf("pixel dimensions not set:\n%s", out)
	}

	// No viewBox: left untouched.
	plain := []byte(`<svg>x</svg>`)
	if got := string(normalizeViewBox(plain)); got != `<svg>x</svg>` {
		t.Errorf("unexpected rewrite: %s", got)
	}
}
