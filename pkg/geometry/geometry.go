// Package geometry provides the 2D primitives shared by the schematic and
// floor-plan engines. All coordinates are in design-space pixels with the
// y axis growing downward, matching the canvas convention.
package geometry

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Left returns the smallest x covered by the rectangle.
func (r Rect) Left() float64 { return r.X }

// Right returns the largest x covered by the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the smallest y covered by the rectangle.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the largest y covered by the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Union returns the smallest rectangle covering both r and s.
func (r Rect) Union(s Rect) Rect {
	left := math.Min(r.Left(), s.Left())
	top := math.Min(r.Top(), s.Top())
	right := math.Max(r.Right(), s.Right())
	bottom := math.Max(r.Bottom(), s.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// OverlapsX reports whether the horizontal spans of r and s intersect.
func (r Rect) OverlapsX(s Rect) bool {
	return r.Left() < s.Right() && s.Left() < r.Right()
}

// Segment is a straight line segment between two points.
type Segment struct {
	Start Point `json:"start" bson:"start"`
	End   Point `json:"end" bson:"end"`
}

// Length returns the segment length.
func (s Segment) Length() float64 { return s.Start.Dist(s.End) }

// IsDegenerate reports whether the segment has (near) zero length.
// Degenerate segments must be skipped before direction-vector
// normalization to avoid division by zero.
func (s Segment) IsDegenerate() bool { return s.Length() < 1e-9 }

// AngleDeg returns the segment direction in degrees in [0, 360).
func (s Segment) AngleDeg() float64 {
	a := math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// Midpoint returns the segment's center point.
func (s Segment) Midpoint() Point {
	return Point{(s.Start.X + s.End.X) / 2, (s.Start.Y + s.End.Y) / 2}
}
