// Package arrange implements the bottom-up auto-arrangement of schematic
// items: tiering of the connector graph, within-tier ordering, crossing-aware
// vertical spacing, and child-centered horizontal placement.
//
// The engine is a pure function over a snapshot. It never mutates its input,
// never errors, and laying out the same snapshot twice yields the same
// positions - re-running Arrange on its own output is a fixed point.
//
// # Conventions
//
//   - Tier 0 holds the loads (no outgoing connectors) at the bottom of the
//     drawing; supply equipment stacks above its loads.
//   - y grows downward; the top tier of each component sits at y = 0.
//   - Connectors point from the supply side to the load side.
//
// # What moves
//
// Only items that are part of at least one valid connector and are not
// locked get new positions. Everything else - locked items, isolated items,
// items referenced by dangling connectors only - passes through unchanged.
package arrange

import (
	"math"
	"slices"

	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// Arrange computes new positions for the connected, unlocked items and
// returns a new item slice. The input slices are never mutated.
//
// Connectors referencing unknown, identical, or locked endpoints are
// silently dropped. With no valid connector left, the input is returned
// as an unmodified copy.
func Arrange(items []schematic.Item, connectors []schematic.Connector, cfg Config) []schematic.Item {
	out := slices.Clone(items)

	g := buildGraph(out, connectors)
	comps := splitComponents(g)
	if len(comps) == 0 {
		return out
	}

	// Lay out each component in local coordinates, then pack the component
	// bounding boxes left to right in leftmost-original-x order.
	packX := 0.0
	for _, c := range comps {
		pos := placeComponent(g, c, cfg)

		minX := math.Inf(1)
		maxX := math.Inf(-1)
		for _, idx := range c.members {
			p := pos[idx]
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X+out[idx].Width)
		}

		shift := packX - minX
		for _, idx := range c.members {
			p := pos[idx]
			out[idx].Position = geometry.Point{X: p.X + shift, Y: p.Y}
		}
		packX += (maxX - minX) + cfg.ComponentGapX
	}

	return out
}
