// Package floorplan defines the architectural data model that accompanies a
// schematic: walls, openings (doors and windows), and detected rooms.
//
// A wall is a center-line segment with a thickness, not a polygon; geometry
// code reconstructs its rectangular footprint where needed. Openings sit on
// a host wall and rotate with it. Rooms are closed polygons produced by the
// rooms subpackage.
package floorplan

import (
	"github.com/google/uuid"

	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
)

// Room type tags. Detection always assigns RoomTypeOther; the editor lets
// users reclassify afterwards.
const (
	RoomTypeOther   = "other"
	RoomTypeKitchen = "kitchen"
	RoomTypeBedroom = "bedroom"
	RoomTypeBath    = "bath"
)

// Door swing types.
const (
	SwingLeft   = "left"
	SwingRight  = "right"
	SwingDouble = "double"
)

// Wall is a line segment with perpendicular extent given by Thickness,
// in design-space pixels.
type Wall struct {
	ID        string         `json:"id" bson:"id"`
	Start     geometry.Point `json:"start" bson:"start"`
	End       geometry.Point `json:"end" bson:"end"`
	Thickness float64        `json:"thickness" bson:"thickness"`
}

// Segment returns the wall's center line.
func (w Wall) Segment() geometry.Segment {
	return geometry.Segment{Start: w.Start, End: w.End}
}

// Length returns the center-line length of the wall.
func (w Wall) Length() float64 { return w.Segment().Length() }

// Door is an opening with a swing direction, centered on its host wall.
// Rotation is in degrees, aligned with the host wall's angle.
type Door struct {
	ID       string         `json:"id" bson:"id"`
	Center   geometry.Point `json:"center" bson:"center"`
	Width    float64        `json:"width" bson:"width"`
	WallID   string         `json:"wall_id,omitempty" bson:"wall_id,omitempty"`
	Rotation float64        `json:"rotation" bson:"rotation"`
	Swing    string         `json:"swing,omitempty" bson:"swing,omitempty"`
}

// Window is an opening with a height, centered on its host wall.
type Window struct {
	ID       string         `json:"id" bson:"id"`
	Center   geometry.Point `json:"center" bson:"center"`
	Width    float64        `json:"width" bson:"width"`
	Height   float64        `json:"height" bson:"height"`
	WallID   string         `json:"wall_id,omitempty" bson:"wall_id,omitempty"`
	Rotation float64        `json:"rotation" bson:"rotation"`
}

// Room is an enclosed region traced from the wall skeleton. Polygon is an
// ordered vertex list without an explicit closing duplicate.
type Room struct {
	ID      string           `json:"id" bson:"id"`
	Name    string           `json:"name" bson:"name"`
	Polygon []geometry.Point `json:"polygon" bson:"polygon"`
	Type    string           `json:"type" bson:"type"`
	Color   string           `json:"color,omitempty" bson:"color,omitempty"`
}

// Bounds returns the axis-aligned bounding box of the room polygon.
// A room with an empty polygon yields the zero rectangle.
func (r Room) Bounds() geometry.Rect {
	if len(r.Polygon) == 0 {
		return geometry.Rect{}
	}
	b := geometry.Rect{X: r.Polygon[0].X, Y: r.Polygon[0].Y}
	for _, p := range r.Polygon[1:] {
		b = b.Union(geometry.Rect{X: p.X, Y: p.Y})
	}
	return b
}

// Plan is a full floor-plan snapshot.
type Plan struct {
	Walls   []Wall   `json:"walls" bson:"walls"`
	Doors   []Door   `json:"doors,omitempty" bson:"doors,omitempty"`
	Windows []Window `json:"windows,omitempty" bson:"windows,omitempty"`
	Rooms   []Room   `json:"rooms,omitempty" bson:"rooms,omitempty"`
}

// NewID returns a fresh identifier for walls, openings, and rooms.
func NewID() string { return uuid.NewString() }
