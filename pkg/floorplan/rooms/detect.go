// Package rooms extracts enclosed regions from floor-plan geometry. The
// wall skeleton is rasterized onto an offscreen bitmap (or supplied as a
// pixel buffer), downsampled onto a coarse grid, flood-filled, and each
// surviving component's boundary is traced into a simplified rectilinear
// polygon.
//
// Detection is heuristic by design: the luminance threshold and the
// background-rejection fraction have no correctness guarantee and are
// exposed on Config for tuning.
package rooms

import (
	"fmt"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
	"github.com/rickerduniya/Sayanho-sub002/pkg/raster"
)

// FromPixels detects rooms in a row-major grayscale buffer where open floor
// is bright and obstacles are dark. offsetX/offsetY translate the returned
// polygons back into the uncropped coordinate space when the buffer is a
// sub-region crop.
//
// The function is total: malformed or empty input yields an empty slice.
func FromPixels(width, height int, pixels []uint8, offsetX, offsetY float64, cfg Config) []floorplan.Room {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return nil
	}

	g := downsample(width, height, pixels, cfg)
	if g.cols == 0 || g.rows == 0 {
		return nil
	}

	labels, regions := floodRegions(g)
	selected := selectRooms(g, regions, cfg)

	rooms := make([]floorplan.Room, 0, len(selected))
	for _, reg := range selected {
		poly := regionPolygon(g, labels, reg)
		if len(poly) < 3 {
			continue
		}

		pts := make([]geometry.Point, len(poly))
		for i, v := range poly {
			pts[i] = geometry.Point{
				X: float64(v.c*g.step) + offsetX,
				Y: float64(v.r*g.step) + offsetY,
			}
		}

		rooms = append(rooms, floorplan.Room{
			ID:      floorplan.NewID(),
			Name:    fmt.Sprintf("Room %d", len(rooms)+1),
			Polygon: pts,
			Type:    floorplan.RoomTypeOther,
		})
	}
	return rooms
}

// regionPolygon traces the region boundary, falling back to the bounding
// box when the trace fails to close.
func regionPolygon(g *grid, labels []int, reg region) []gridVertex {
	if loop, ok := traceBoundary(g, labels, reg); ok {
		return simplifyCollinear(loop)
	}
	return []gridVertex{
		{reg.minC, reg.minR},
		{reg.maxC + 1, reg.minR},
		{reg.maxC + 1, reg.maxR + 1},
		{reg.minC, reg.maxR + 1},
	}
}

// FromGeometry rasterizes vector wall and opening geometry onto an
// offscreen bitmap and detects rooms in the result.
//
// Walls are painted as thick round-capped strokes so corners stay sealed;
// doors and windows are painted as closure rectangles over their host wall
// so a closed room does not leak through the opening gap.
func FromGeometry(width, height int, walls []floorplan.Wall, doors []floorplan.Door, windows []floorplan.Window, cfg Config) []floorplan.Room {
	if width <= 0 || height <= 0 {
		return nil
	}

	bmp := raster.New(width, height)

	thicknessByID := make(map[string]float64, len(walls))
	for _, w := range walls {
		if w.Segment().IsDegenerate() {
			continue
		}
		t := w.Thickness
		if t <= 0 {
			t = cfg.ClosureBreadth
		}
		thicknessByID[w.ID] = t
		bmp.StrokeLine(w.Start.X, w.Start.Y, w.End.X, w.End.Y, t)
	}

	closure := func(center geometry.Point, width, rotation float64, wallID string) {
		breadth := cfg.ClosureBreadth
		if t, ok := thicknessByID[wallID]; ok && t > breadth {
			breadth = t
		}
		// Slight overlength so the closure fuses with the wall stubs on
		// either side of the opening.
		bmp.FillRotatedRect(center.X, center.Y, width+4, breadth, rotation)
	}
	for _, d := range doors {
		closure(d.Center, d.Width, d.Rotation, d.WallID)
	}
	for _, w := range windows {
		closure(w.Center, w.Width, w.Rotation, w.WallID)
	}

	return FromPixels(width, height, bmp.Luminance(), 0, 0, cfg)
}
