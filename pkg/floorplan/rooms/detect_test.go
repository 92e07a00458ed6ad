package rooms

import (
	"testing"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
)

// whiteBuffer returns an all-open grayscale buffer.
func whiteBuffer(w, h int) []uint8 {
	buf := make([]uint8, w*h)
	for i := range buf {
		buf[i] = 255
	}
	return buf
}

// paintRect blacks out the pixel rectangle [x0,x1) x [y0,y1).
func paintRect(buf []uint8, w, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf[y*w+x] = 0
		}
	}
}

// paintBox draws a hollow rectangular wall outline of the given thickness.
func paintBox(buf []uint8, w, x0, y0, x1, y1, thickness int) {
	paintRect(buf, w, x0, y0, x1, y0+thickness)         // top
	paintRect(buf, w, x0, y1-thickness, x1, y1)         // bottom
	paintRect(buf, w, x0, y0, x0+thickness, y1)         // left
	paintRect(buf, w, x1-thickness, y0, x1, y1)         // right
}

// assertRectilinear fails if any three consecutive vertices are collinear.
func assertRectilinear(t *testing.T, poly []geometry.Point) {
	t.Helper()
	n := len(poly)
	if n < 3 {
		t.Fatalf("polygon has %d vertices, want >= 3", n)
	}
	for i := 0; i < n; i++ {
		a, b, c := poly[(i-1+n)%n], poly[i], poly[(i+1)%n]
		d1 := geometry.Point{X: b.X - a.X, Y: b.Y - a.Y}
		d2 := geometry.Point{X: c.X - b.X, Y: c.Y - b.Y}
		sameX := (d1.X > 0) == (d2.X > 0) && (d1.X < 0) == (d2.X < 0)
		sameY := (d1.Y > 0) == (d2.Y > 0) && (d1.Y < 0) == (d2.Y < 0)
		if sameX && sameY {
			t.Fatalf("vertices %v, %v, %v are collinear", a, b, c)
		}
	}
}

func TestFromPixels_SingleRoom(t *testing.T) {
	buf := whiteBuffer(200, 200)
	paintBox(buf, 200, 20, 20, 180, 180, 6)

	got := FromPixels(200, 200, buf, 0, 0, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d rooms, want 1", len(got))
	}
	room := got[0]
	if room.Name != "Room 1" {
		t.Errorf("Name = %q, want %q", room.Name, "Room 1")
	}
	if room.Type != floorplan.RoomTypeOther {
		t.Errorf("Type = %q, want %q", room.Type, floorplan.RoomTypeOther)
	}
	if len(room.Polygon) != 4 {
		t.Errorf("polygon has %d vertices, want 4 for a rectangular room", len(room.Polygon))
	}
	assertRectilinear(t, room.Polygon)

	// The polygon approximates the 26..174 interior within grid-step slack.
	b := room.Bounds()
	step := float64(DefaultConfig().GridStep)
	if b.Left() < 20 || b.Left() > 26+step {
		t.Errorf("left = %v, want near interior edge 26", b.Left())
	}
	if b.Right() < 174-step || b.Right() > 180 {
		t.Errorf("right = %v, want near interior edge 174", b.Right())
	}
}

func TestFromPixels_OffsetTranslation(t *testing.T) {
	buf := whiteBuffer(200, 200)
	paintBox(buf, 200, 20, 20, 180, 180, 6)

	plain := FromPixels(200, 200, buf, 0, 0, DefaultConfig())
	shifted := FromPixels(200, 200, buf, 1000, 500, DefaultConfig())

	if len(plain) != 1 || len(shifted) != 1 {
		t.Fatalf("got %d and %d rooms, want 1 each", len(plain), len(shifted))
	}
	for i, p := range plain[0].Polygon {
		s := shifted[0].Polygon[i]
		if s.X != p.X+1000 || s.Y != p.Y+500 {
			t.Fatalf("vertex %d = %v, want %v translated by (1000, 500)", i, s, p)
		}
	}
}

func TestFromPixels_OpenCanvasYieldsNoRooms(t *testing.T) {
	// No walls at all: the single open component touches the border and
	// covers the whole grid, so the background fallback drops it.
	got := FromPixels(100, 100, whiteBuffer(100, 100), 0, 0, DefaultConfig())

	if len(got) != 0 {
		t.Errorf("got %d rooms on an empty canvas, want 0", len(got))
	}
}

func TestFromPixels_BorderFallbackKeepsSmallerRegions(t *testing.T) {
	// A single full-height wall splits the canvas into two border-touching
	// regions (~30% and ~60%). Only the largest is background.
	buf := whiteBuffer(100, 100)
	paintRect(buf, 100, 30, 0, 38, 100)

	got := FromPixels(100, 100, buf, 0, 0, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d rooms, want 1 (largest dropped as background)", len(got))
	}
	if b := got[0].Bounds(); b.Right() > 30 {
		t.Errorf("kept region reaches x=%v, want the smaller left side", b.Right())
	}
}

func TestFromPixels_TinyPocketRejected(t *testing.T) {
	buf := whiteBuffer(200, 200)
	paintBox(buf, 200, 40, 40, 60, 60, 4) // interior ~12x12 px < 200 px² min

	got := FromPixels(200, 200, buf, 0, 0, DefaultConfig())

	if len(got) != 0 {
		t.Errorf("got %d rooms, want tiny pocket rejected", len(got))
	}
}

func TestFromPixels_TwoRoomsNamedSequentially(t *testing.T) {
	buf := whiteBuffer(400, 200)
	paintBox(buf, 400, 20, 20, 180, 180, 6)
	paintBox(buf, 400, 220, 20, 380, 180, 6)

	got := FromPixels(400, 200, buf, 0, 0, DefaultConfig())

	if len(got) != 2 {
		t.Fatalf("got %d rooms, want 2", len(got))
	}
	if got[0].Name != "Room 1" || got[1].Name != "Room 2" {
		t.Errorf("names = %q, %q, want sequential Room 1, Room 2", got[0].Name, got[1].Name)
	}
	if got[0].ID == got[1].ID {
		t.Error("room IDs must be unique")
	}
	if got[0].Bounds().Left() >= got[1].Bounds().Left() {
		t.Error("rooms not in discovery order (left box first)")
	}
}

func TestFromPixels_MalformedInput(t *testing.T) {
	if got := FromPixels(0, 0, nil, 0, 0, DefaultConfig()); got != nil {
		t.Errorf("FromPixels(0,0,nil) = %v, want nil", got)
	}
	if got := FromPixels(100, 100, make([]uint8, 10), 0, 0, DefaultConfig()); got != nil {
		t.Errorf("short buffer: got %v, want nil", got)
	}
}

// A closed 400x300 box of four walls yields exactly one room
// approximating the box interior, clear of the raster border.
func TestFromGeometry_ClosedBox(t *testing.T) {
	walls := []floorplan.Wall{
		{ID: "n", Start: geometry.Point{X: 50, Y: 50}, End: geometry.Point{X: 450, Y: 50}, Thickness: 10},
		{ID: "e", Start: geometry.Point{X: 450, Y: 50}, End: geometry.Point{X: 450, Y: 350}, Thickness: 10},
		{ID: "s", Start: geometry.Point{X: 450, Y: 350}, End: geometry.Point{X: 50, Y: 350}, Thickness: 10},
		{ID: "w", Start: geometry.Point{X: 50, Y: 350}, End: geometry.Point{X: 50, Y: 50}, Thickness: 10},
	}

	got := FromGeometry(500, 400, walls, nil, nil, DefaultConfig())

	if len(got) != 1 {
		t.Fatalf("got %d rooms, want 1", len(got))
	}
	room := got[0]
	assertRectilinear(t, room.Polygon)

	b := room.Bounds()
	tol := 2 * float64(DefaultConfig().GridStep)
	if diff := b.Left() - 55; diff < -tol || diff > tol {
		t.Errorf("left = %v, want ~55 (inner face of the west wall)", b.Left())
	}
	if diff := b.Right() - 445; diff < -tol || diff > tol {
		t.Errorf("right = %v, want ~445", b.Right())
	}
	if diff := b.Top() - 55; diff < -tol || diff > tol {
		t.Errorf("top = %v, want ~55", b.Top())
	}
	if diff := b.Bottom() - 345; diff < -tol || diff > tol {
		t.Errorf("bottom = %v, want ~345", b.Bottom())
	}
	if b.Left() <= 0 || b.Top() <= 0 || b.Right() >= 500 || b.Bottom() >= 400 {
		t.Errorf("room touches the raster border: %+v", b)
	}
}

func TestFromGeometry_DoorClosureSealsRoom(t *testing.T) {
	walls := []floorplan.Wall{
		{ID: "n1", Start: geometry.Point{X: 50, Y: 50}, End: geometry.Point{X: 220, Y: 50}, Thickness: 10},
		{ID: "n2", Start: geometry.Point{X: 280, Y: 50}, End: geometry.Point{X: 450, Y: 50}, Thickness: 10},
		{ID: "e", Start: geometry.Point{X: 450, Y: 50}, End: geometry.Point{X: 450, Y: 350}, Thickness: 10},
		{ID: "s", Start: geometry.Point{X: 450, Y: 350}, End: geometry.Point{X: 50, Y: 350}, Thickness: 10},
		{ID: "w", Start: geometry.Point{X: 50, Y: 350}, End: geometry.Point{X: 50, Y: 50}, Thickness: 10},
	}
	door := floorplan.Door{
		ID:     "d1",
		Center: geometry.Point{X: 250, Y: 50},
		Width:  70,
		WallID: "n1",
	}

	// Without the door closure the room leaks out through the gap and
	// merges with the border-touching background.
	open := FromGeometry(500, 400, walls, nil, nil, DefaultConfig())
	if len(open) != 0 {
		t.Fatalf("got %d rooms with an open gap, want 0", len(open))
	}

	sealed := FromGeometry(500, 400, walls, []floorplan.Door{door}, nil, DefaultConfig())
	if len(sealed) != 1 {
		t.Fatalf("got %d rooms with the door closure painted, want 1", len(sealed))
	}
}

func TestFromGeometry_DegenerateWallSkipped(t *testing.T) {
	walls := []floorplan.Wall{
		{ID: "z", Start: geometry.Point{X: 100, Y: 100}, End: geometry.Point{X: 100, Y: 100}, Thickness: 10},
	}

	// Must not panic; a degenerate wall paints nothing.
	got := FromGeometry(200, 200, walls, nil, nil, DefaultConfig())
	if len(got) != 0 {
		t.Errorf("got %d rooms, want 0", len(got))
	}
}

func TestSimplifyCollinear(t *testing.T) {
	// A staircase-free rectangle with redundant mid-edge vertices.
	poly := []gridVertex{
		{0, 0}, {2, 0}, {5, 0}, {5, 3}, {5, 6}, {0, 6}, {0, 2},
	}

	got := simplifyCollinear(poly)

	want := []gridVertex{{0, 0}, {5, 0}, {5, 6}, {0, 6}}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSimplifyCollinear_DegeneratePolygon(t *testing.T) {
	if got := simplifyCollinear([]gridVertex{{0, 0}, {1, 0}}); got != nil {
		t.Errorf("got %v, want nil for a two-vertex polygon", got)
	}
	// All vertices on one line collapse below three corners.
	line := []gridVertex{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if got := simplifyCollinear(line); got != nil {
		t.Errorf("got %v, want nil for a collinear run", got)
	}
}
