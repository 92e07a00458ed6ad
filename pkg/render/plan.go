package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
)

// PlanPNG draws a floor plan onto a width x height design-space canvas and
// returns the encoded PNG. Rooms are painted first so walls and openings
// stay visible on top.
func PlanPNG(plan floorplan.Plan, width, height int, opts Options) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", width, height)
	}
	opts = opts.withDefaults()

	pw := int(float64(width+2*int(opts.Margin)) * opts.Scale)
	ph := int(float64(height+2*int(opts.Margin)) * opts.Scale)
	dc := gg.NewContext(pw, ph)
	dc.SetHexColor(colorBackground)
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(opts.Margin, opts.Margin)

	for _, room := range plan.Rooms {
		drawRoom(dc, room, opts)
	}
	for _, wall := range plan.Walls {
		drawWall(dc, wall)
	}
	for _, door := range plan.Doors {
		drawDoor(dc, door)
	}
	for _, win := range plan.Windows {
		drawWindow(dc, win)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawRoom(dc *gg.Context, room floorplan.Room, opts Options) {
	if len(room.Polygon) < 3 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(room.Polygon[0].X, room.Polygon[0].Y)
	for _, p := range room.Polygon[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()

	fill := room.Color
	if fill == "" {
		fill = colorRoomFill
	}
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(colorRoomEdge)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	if opts.Labels && room.Name != "" {
		b := room.Bounds()
		dc.SetHexColor(colorLabel)
		dc.DrawStringAnchored(room.Name, b.CenterX(), b.CenterY(), 0.5, 0.5)
	}
}

func drawWall(dc *gg.Context, wall floorplan.Wall) {
	t := wall.Thickness
	if t <= 0 {
		t = 4
	}
	dc.SetHexColor(colorWall)
	dc.SetLineWidth(t)
	dc.SetLineCapRound()
	dc.DrawLine(wall.Start.X, wall.Start.Y, wall.End.X, wall.End.Y)
	dc.Stroke()
}

// drawDoor paints the leaf across the opening plus a quarter-circle swing
// arc. Double doors get two half-width arcs.
func drawDoor(dc *gg.Context, door floorplan.Door) {
	dc.Push()
	dc.RotateAbout(gg.Radians(door.Rotation), door.Center.X, door.Center.Y)

	half := door.Width / 2
	dc.SetHexColor(colorOpening)
	dc.SetLineWidth(2)
	dc.DrawLine(door.Center.X-half, door.Center.Y, door.Center.X+half, door.Center.Y)
	dc.Stroke()

	switch door.Swing {
	case floorplan.SwingDouble:
		dc.DrawArc(door.Center.X-half, door.Center.Y, half, 0, -gg.Radians(90))
		dc.Stroke()
		dc.DrawArc(door.Center.X+half, door.Center.Y, half, gg.Radians(180), gg.Radians(90+180))
		dc.Stroke()
	case floorplan.SwingRight:
		dc.DrawArc(door.Center.X+half, door.Center.Y, door.Width, gg.Radians(180), gg.Radians(90+180))
		dc.Stroke()
	default: // SwingLeft and unspecified
		dc.DrawArc(door.Center.X-half, door.Center.Y, door.Width, 0, -gg.Radians(90))
		dc.Stroke()
	}
	dc.Pop()
}

// drawWindow paints a double line across the opening.
func drawWindow(dc *gg.Context, win floorplan.Window) {
	dc.Push()
	dc.RotateAbout(gg.Radians(win.Rotation), win.Center.X, win.Center.Y)

	half := win.Width / 2
	dc.SetHexColor(colorOpening)
	dc.SetLineWidth(1.5)
	for _, dy := range [2]float64{-2, 2} {
		dc.DrawLine(win.Center.X-half, win.Center.Y+dy, win.Center.X+half, win.Center.Y+dy)
		dc.Stroke()
	}
	dc.Pop()
}
