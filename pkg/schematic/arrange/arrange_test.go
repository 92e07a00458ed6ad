package arrange

import (
	"testing"

	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

func item(id string, x, y, w, h float64) schematic.Item {
	return schematic.Item{
		ID:       id,
		Position: geometry.Point{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
}

func conn(from, to string) schematic.Connector {
	return schematic.Connector{From: from, To: to}
}

func findItem(t *testing.T, items []schematic.Item, id string) schematic.Item {
	t.Helper()
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("item %s not in result", id)
	return schematic.Item{}
}

func TestArrange_NoConnectors(t *testing.T) {
	items := []schematic.Item{
		item("a", 10, 20, 100, 80),
		item("b", 300, 40, 100, 80),
	}

	got := Arrange(items, nil, DefaultConfig())

	for i := range items {
		if got[i].Position != items[i].Position {
			t.Errorf("item %s moved to %+v, want untouched", got[i].ID, got[i].Position)
		}
	}
}

func TestArrange_DanglingConnectorsFiltered(t *testing.T) {
	items := []schematic.Item{item("a", 0, 0, 100, 80)}
	connectors := []schematic.Connector{
		conn("a", "ghost"),
		conn("ghost", "a"),
		conn("a", "a"),
	}

	got := Arrange(items, connectors, DefaultConfig())

	if got[0].Position != items[0].Position {
		t.Errorf("item moved to %+v despite only dangling connectors", got[0].Position)
	}
}

func TestArrange_DoesNotMutateInput(t *testing.T) {
	items := []schematic.Item{
		item("src", 500, 500, 100, 80),
		item("load", 0, 0, 60, 40),
	}
	connectors := []schematic.Connector{conn("src", "load")}

	_ = Arrange(items, connectors, DefaultConfig())

	if items[0].Position != (geometry.Point{X: 500, Y: 500}) {
		t.Errorf("input slice mutated: %+v", items[0].Position)
	}
}

// One source feeding one load: the source ends up above the
// load and horizontally centered on the load's connection point.
func TestArrange_SourceAboveLoad(t *testing.T) {
	load := item("load", 400, 0, 60, 40)
	load.Points = map[string]geometry.Point{"in": {X: 30, Y: 0}}
	src := item("src", 0, 300, 100, 80)

	got := Arrange([]schematic.Item{src, load}, []schematic.Connector{
		{From: "src", To: "load", ToPoint: "in"},
	}, DefaultConfig())

	s := findItem(t, got, "src")
	l := findItem(t, got, "load")

	if l.Position.Y <= s.Position.Y {
		t.Errorf("load y = %v, want below source y = %v", l.Position.Y, s.Position.Y)
	}
	if s.Position.Y != 0 {
		t.Errorf("top tier y = %v, want 0", s.Position.Y)
	}

	loadAnchorX := l.Position.X + 30
	srcCenterX := s.Position.X + s.Width/2
	if srcCenterX != loadAnchorX {
		t.Errorf("source center x = %v, want centered on load anchor x = %v", srcCenterX, loadAnchorX)
	}

	wantGap := DefaultConfig().BaseTierGapY + DefaultConfig().TierGapPerCrossing // one connector crosses
	if gotGap := l.Position.Y - (s.Position.Y + s.Height); gotGap != wantGap {
		t.Errorf("tier gap = %v, want %v", gotGap, wantGap)
	}
}

func TestArrange_LockedItemInvariant(t *testing.T) {
	locked := item("panel", 123, 456, 100, 80)
	locked.Locked = true
	load := item("load", 0, 0, 60, 40)

	got := Arrange([]schematic.Item{locked, load}, []schematic.Connector{
		conn("panel", "load"),
	}, DefaultConfig())

	p := findItem(t, got, "panel")
	if p.Position != (geometry.Point{X: 123, Y: 456}) {
		t.Errorf("locked item moved to %+v", p.Position)
	}
	// The connector touches a locked item, so the load must not move either.
	l := findItem(t, got, "load")
	if l.Position != (geometry.Point{}) {
		t.Errorf("load moved to %+v, want untouched", l.Position)
	}
}

// Three-level chain: meter -> board -> two loads. Checks tier monotonicity
// and the no-overlap invariant within a tier.
func TestArrange_ChainTiers(t *testing.T) {
	items := []schematic.Item{
		item("meter", 0, 0, 80, 60),
		item("board", 200, 0, 120, 90),
		item("l1", 400, 0, 60, 40),
		item("l2", 600, 0, 60, 40),
	}
	connectors := []schematic.Connector{
		conn("meter", "board"),
		conn("board", "l1"),
		conn("board", "l2"),
	}

	got := Arrange(items, connectors, DefaultConfig())

	meter := findItem(t, got, "meter")
	board := findItem(t, got, "board")
	l1 := findItem(t, got, "l1")
	l2 := findItem(t, got, "l2")

	if !(meter.Position.Y < board.Position.Y && board.Position.Y < l1.Position.Y) {
		t.Errorf("tier order broken: meter %v board %v l1 %v",
			meter.Position.Y, board.Position.Y, l1.Position.Y)
	}
	if l1.Position.Y != l2.Position.Y {
		t.Errorf("loads on different tiers: %v vs %v", l1.Position.Y, l2.Position.Y)
	}
	if l1.Bounds().OverlapsX(l2.Bounds()) {
		t.Errorf("loads overlap: %+v and %+v", l1.Bounds(), l2.Bounds())
	}
	if gap := DefaultConfig().SiblingGapX; l2.Position.X-(l1.Position.X+l1.Width) != gap &&
		l1.Position.X-(l2.Position.X+l2.Width) != gap {
		t.Errorf("sibling gap not applied: l1 %v l2 %v", l1.Position.X, l2.Position.X)
	}
}

func TestArrange_Idempotent(t *testing.T) {
	items := []schematic.Item{
		item("meter", 50, 10, 80, 60),
		item("board", 200, 300, 120, 90),
		item("l1", 30, 700, 60, 40),
		item("l2", 500, 650, 60, 40),
		item("l3", 900, 720, 60, 40),
	}
	connectors := []schematic.Connector{
		conn("meter", "board"),
		conn("board", "l1"),
		conn("board", "l2"),
		conn("board", "l3"),
	}

	once := Arrange(items, connectors, DefaultConfig())
	twice := Arrange(once, connectors, DefaultConfig())

	for i := range once {
		if once[i].Position != twice[i].Position {
			t.Errorf("item %s drifted: %+v -> %+v", once[i].ID, once[i].Position, twice[i].Position)
		}
	}
}

// Distribution board outlets order by phase R, Y, B then outlet number,
// regardless of where the loads originally sat.
func TestArrange_DistributionBoardPhaseOrdering(t *testing.T) {
	board := item("db", 0, 0, 200, 100)
	board.Type = schematic.TypeDistributionBoard
	// Loads deliberately positioned in reverse phase order.
	lb := item("lb", 0, 300, 60, 40)
	ly := item("ly", 200, 300, 60, 40)
	lr2 := item("lr2", 400, 300, 60, 40)
	lr1 := item("lr1", 600, 300, 60, 40)

	got := Arrange([]schematic.Item{board, lb, ly, lr2, lr1}, []schematic.Connector{
		{From: "db", FromPoint: "phase_B_out1", To: "lb"},
		{From: "db", FromPoint: "phase_Y_out1", To: "ly"},
		{From: "db", FromPoint: "phase_R_out2", To: "lr2"},
		{From: "db", FromPoint: "phase_R_out1", To: "lr1"},
	}, DefaultConfig())

	xr1 := findItem(t, got, "lr1").Position.X
	xr2 := findItem(t, got, "lr2").Position.X
	xy := findItem(t, got, "ly").Position.X
	xb := findItem(t, got, "lb").Position.X

	if !(xr1 < xr2 && xr2 < xy && xy < xb) {
		t.Errorf("phase order broken: R1=%v R2=%v Y=%v B=%v", xr1, xr2, xy, xb)
	}
}

func TestArrange_TwoComponentsPacked(t *testing.T) {
	items := []schematic.Item{
		// Right-hand component drawn first to check min-x ordering.
		item("s2", 1000, 0, 100, 80),
		item("t2", 1100, 200, 60, 40),
		item("s1", 0, 0, 100, 80),
		item("t1", 50, 200, 60, 40),
	}
	connectors := []schematic.Connector{
		conn("s2", "t2"),
		conn("s1", "t1"),
	}

	got := Arrange(items, connectors, DefaultConfig())

	left := findItem(t, got, "s1").Bounds().Union(findItem(t, got, "t1").Bounds())
	right := findItem(t, got, "s2").Bounds().Union(findItem(t, got, "t2").Bounds())

	if left.Left() >= right.Left() {
		t.Errorf("component order lost: left group at %v, right group at %v", left.Left(), right.Left())
	}
	if left.OverlapsX(right) {
		t.Errorf("components overlap: %+v and %+v", left, right)
	}
	if gap := right.Left() - left.Right(); gap != DefaultConfig().ComponentGapX {
		t.Errorf("component gap = %v, want %v", gap, DefaultConfig().ComponentGapX)
	}
}

// A pure two-cycle has no leaf; both members collapse onto one tier so
// tier(src) >= tier(dst) still holds on every edge.
func TestArrange_PureCycleFallback(t *testing.T) {
	items := []schematic.Item{
		item("a", 0, 0, 100, 80),
		item("b", 300, 0, 100, 80),
	}
	connectors := []schematic.Connector{
		conn("a", "b"),
		conn("b", "a"),
	}

	got := Arrange(items, connectors, DefaultConfig())

	a := findItem(t, got, "a")
	b := findItem(t, got, "b")
	if a.Position.Y != b.Position.Y {
		t.Errorf("pure cycle split across tiers: %v vs %v", a.Position.Y, b.Position.Y)
	}
	if a.Bounds().OverlapsX(b.Bounds()) {
		t.Errorf("cycle members overlap: %+v and %+v", a.Bounds(), b.Bounds())
	}
}

func TestTierGapCapped(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.tierGap(1000); got != cfg.MaxTierGapY {
		t.Errorf("tierGap(1000) = %v, want capped at %v", got, cfg.MaxTierGapY)
	}
	if got := cfg.tierGap(2); got != cfg.BaseTierGapY+2*cfg.TierGapPerCrossing {
		t.Errorf("tierGap(2) = %v", got)
	}
}

func TestPhaseKeyHelpers(t *testing.T) {
	tests := []struct {
		key       string
		wantPhase int
		wantOut   int
	}{
		{"phase_R_out1", 0, 1},
		{"phase_Y_out12", 1, 12},
		{"phase_B_out3", 2, 3},
		{"out7", 3, 7},
		{"in", 3, 1 << 30},
	}
	for _, tt := range tests {
		if got := phaseIndex(tt.key); got != tt.wantPhase {
			t.Errorf("phaseIndex(%q) = %d, want %d", tt.key, got, tt.wantPhase)
		}
		if got := outNumber(tt.key); got != tt.wantOut {
			t.Errorf("outNumber(%q) = %d, want %d", tt.key, got, tt.wantOut)
		}
	}
}
