// Package schematic defines the single-line-diagram data model: items placed
// on the design canvas and the connectors wired between them.
//
// The types in this package are plain snapshots. They are owned and mutated
// by the surrounding editing store; the layout engine in the arrange
// subpackage receives a snapshot and returns a new one without holding any
// state between calls.
//
// # Wire Format
//
// Snapshots use a simple JSON format designed for round-trip fidelity:
//
//	{
//	  "items": [{"id": "db1", "position": {"x": 0, "y": 0}, "width": 120, "height": 80}],
//	  "connectors": [{"from": "db1", "from_point": "out1", "to": "light1", "to_point": "in"}]
//	}
package schematic

import "github.com/rickerduniya/Sayanho-sub002/pkg/geometry"

// Well-known item types. Only the distribution board influences layout:
// its outgoing connectors are ordered by phase and outlet number instead
// of anchor position.
const (
	TypeDistributionBoard = "distribution_board"
	TypeMeter             = "meter"
	TypeLoad              = "load"
)

// Phase prefixes used in distribution-board connection point keys
// (e.g. "phase_R_out2"). The R/Y/B order matches the usual three-phase
// schematic convention.
const (
	PhaseR = "phase_R"
	PhaseY = "phase_Y"
	PhaseB = "phase_B"
)

// Item is a schematic node: a component placed on the canvas.
// Position is the top-left corner in design-space pixels.
type Item struct {
	ID       string                    `json:"id" bson:"id"`
	Type     string                    `json:"type,omitempty" bson:"type,omitempty"`
	Position geometry.Point            `json:"position" bson:"position"`
	Width    float64                   `json:"width" bson:"width"`
	Height   float64                   `json:"height" bson:"height"`
	Points   map[string]geometry.Point `json:"points,omitempty" bson:"points,omitempty"`
	Locked   bool                      `json:"locked,omitempty" bson:"locked,omitempty"`
	Label    string                    `json:"label,omitempty" bson:"label,omitempty"`
}

// Bounds returns the item's bounding rectangle in design space.
func (it Item) Bounds() geometry.Rect {
	return geometry.Rect{X: it.Position.X, Y: it.Position.Y, Width: it.Width, Height: it.Height}
}

// Anchor returns the absolute position of the named connection point.
// Unknown keys fall back to the item's center, so callers always get a
// usable coordinate even for sloppy input.
func (it Item) Anchor(key string) geometry.Point {
	if off, ok := it.Points[key]; ok {
		return it.Position.Add(off)
	}
	return geometry.Point{X: it.Bounds().CenterX(), Y: it.Bounds().CenterY()}
}

// Connector is a directed schematic edge from the supply side (From) to the
// load side (To). FromPoint/ToPoint name the connection points the wire
// attaches to.
type Connector struct {
	From      string `json:"from" bson:"from"`
	FromPoint string `json:"from_point,omitempty" bson:"from_point,omitempty"`
	To        string `json:"to" bson:"to"`
	ToPoint   string `json:"to_point,omitempty" bson:"to_point,omitempty"`
}

// Snapshot is a full copy of the schematic state handed to the layout engine.
type Snapshot struct {
	Items      []Item      `json:"items" bson:"items"`
	Connectors []Connector `json:"connectors" bson:"connectors"`
}

// ItemIndex builds a lookup from item ID to its index in items.
// Later duplicates win, mirroring how the editing store resolves IDs.
func ItemIndex(items []Item) map[string]int {
	idx := make(map[string]int, len(items))
	for i, it := range items {
		idx[it.ID] = i
	}
	return idx
}
