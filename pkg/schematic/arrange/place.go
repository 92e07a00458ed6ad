package arrange

import (
	"math"
	"slices"

	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
)

// placeComponent computes new positions for every member of the component in
// component-local coordinates: the top tier starts at y=0 and x grows to the
// right. The caller packs components side by side afterwards.
func placeComponent(g *layoutGraph, c *component, cfg Config) map[int]geometry.Point {
	tiers := assignTiers(g, c)
	orders := orderTiers(g, c, tiers)
	top := maxTierOf(tiers)

	// Tier band heights: the tallest member wins, empty bands get a default.
	heights := make([]float64, top+1)
	for _, idx := range c.members {
		if h := g.items[idx].Height; h > heights[tiers[idx]] {
			heights[tiers[idx]] = h
		}
	}
	for t := range heights {
		if heights[t] == 0 {
			heights[t] = cfg.DefaultTierHeight
		}
	}

	// Band tops, stacked downward from the top tier. The gap below tier t+1
	// widens with every connector that crosses it.
	bandY := make([]float64, top+1)
	bandY[top] = 0
	for t := top - 1; t >= 0; t-- {
		gap := cfg.tierGap(crossingsBelow(g, c, tiers, t))
		bandY[t] = bandY[t+1] + heights[t+1] + gap
	}

	pos := make(map[int]geometry.Point, len(c.members))

	// Bottom-up horizontal pass: each tier is positioned once all of its
	// downstream tiers are final, so sources can center on their targets'
	// actual wire anchors.
	for t := 0; t <= top; t++ {
		placeTier(g, orders[t], pos, bandY[t], cfg)
	}
	return pos
}

// placeTier assigns x positions for one tier.
//
// Nodes with already-placed targets are centered on the midpoint of the
// leftmost and rightmost target anchor. Leaves, and nodes whose targets are
// not placed yet, advance a running cursor instead. A final left-to-right
// sweep in ideal-center order pushes overlapping nodes apart; a node may end
// up right of its ideal center but never overlaps its left neighbor.
func placeTier(g *layoutGraph, order []int, pos map[int]geometry.Point, y float64, cfg Config) {
	type placed struct {
		idx   int
		ideal float64 // ideal left edge
	}

	cursor := 0.0
	nodes := make([]placed, 0, len(order))
	for _, idx := range order {
		item := g.items[idx]

		minAnchor, maxAnchor := math.Inf(1), math.Inf(-1)
		for _, ei := range g.outgoing[idx] {
			e := g.edges[ei]
			tp, ok := pos[e.dst]
			if !ok {
				continue
			}
			// Anchor of the target connection point at its new position.
			target := g.items[e.dst]
			target.Position = tp
			ax := target.Anchor(e.dstPoint).X
			minAnchor = math.Min(minAnchor, ax)
			maxAnchor = math.Max(maxAnchor, ax)
		}

		var ideal float64
		if minAnchor <= maxAnchor {
			ideal = (minAnchor+maxAnchor)/2 - item.Width/2
		} else {
			ideal = cursor
		}
		nodes = append(nodes, placed{idx: idx, ideal: ideal})
		cursor = ideal + item.Width + cfg.SiblingGapX
	}

	slices.SortStableFunc(nodes, func(a, b placed) int {
		ca := a.ideal + g.items[a.idx].Width/2
		cb := b.ideal + g.items[b.idx].Width/2
		return cmpFloat(ca, cb)
	})

	prevRight := math.Inf(-1)
	for i, n := range nodes {
		x := n.ideal
		if lo := prevRight + cfg.SiblingGapX; i > 0 && x < lo {
			x = lo
		}
		pos[n.idx] = geometry.Point{X: x, Y: y}
		prevRight = x + g.items[n.idx].Width
	}
}
