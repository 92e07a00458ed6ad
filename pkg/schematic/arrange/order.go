package arrange

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

var outNumberRe = regexp.MustCompile(`out(\d+)`)

// phaseIndex maps a connection point key to its phase slot. Keys that carry
// no phase indicator sort after R/Y/B so single-phase outlets trail the
// three-phase groups.
func phaseIndex(key string) int {
	switch {
	case strings.Contains(key, schematic.PhaseR):
		return 0
	case strings.Contains(key, schematic.PhaseY):
		return 1
	case strings.Contains(key, schematic.PhaseB):
		return 2
	default:
		return 3
	}
}

// outNumber extracts the numeric "outN" suffix from a connection point key.
// Keys without one sort last within their phase.
func outNumber(key string) int {
	m := outNumberRe.FindStringSubmatch(key)
	if m == nil {
		return 1 << 30
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1 << 30
	}
	return n
}

// orderTiers produces the left-to-right order of every tier via a depth-first
// traversal from the top tier. Visiting children in supply-side outlet order
// keeps subtrees contiguous, which is what minimizes wire crossings on a
// radial distribution schematic.
func orderTiers(g *layoutGraph, c *component, tiers map[int]int) map[int][]int {
	top := maxTierOf(tiers)

	// Roots: top-tier members by original x.
	var roots []int
	for _, idx := range c.members {
		if tiers[idx] == top {
			roots = append(roots, idx)
		}
	}
	sortByOriginalX(g, roots)

	orders := make(map[int][]int)
	visited := make(map[int]bool, len(c.members))

	var visit func(idx int)
	visit = func(idx int) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		orders[tiers[idx]] = append(orders[tiers[idx]], idx)

		for _, ei := range sortedOutEdges(g, idx) {
			visit(g.edges[ei].dst)
		}
	}
	for _, r := range roots {
		visit(r)
	}

	// Members the traversal never reached (cycle remnants) keep a stable
	// original-x order at the end of their tier.
	var rest []int
	for _, idx := range c.members {
		if !visited[idx] {
			rest = append(rest, idx)
		}
	}
	sortByOriginalX(g, rest)
	for _, idx := range rest {
		orders[tiers[idx]] = append(orders[tiers[idx]], idx)
	}

	return orders
}

// sortedOutEdges returns the outgoing edge indices of idx in traversal order.
//
// Distribution boards order their outlets electrically: phase R, Y, B, then
// outlet number. Everything else orders geometrically by where the wire
// leaves the source and lands on the target, using original positions.
func sortedOutEdges(g *layoutGraph, idx int) []int {
	edges := slices.Clone(g.outgoing[idx])
	src := g.items[idx]

	if src.Type == schematic.TypeDistributionBoard {
		slices.SortStableFunc(edges, func(a, b int) int {
			ka, kb := g.edges[a].srcPoint, g.edges[b].srcPoint
			if pa, pb := phaseIndex(ka), phaseIndex(kb); pa != pb {
				return pa - pb
			}
			return outNumber(ka) - outNumber(kb)
		})
		return edges
	}

	slices.SortStableFunc(edges, func(a, b int) int {
		ea, eb := g.edges[a], g.edges[b]
		sa := src.Anchor(ea.srcPoint).X
		sb := src.Anchor(eb.srcPoint).X
		if sa != sb {
			return cmpFloat(sa, sb)
		}
		ta := g.items[ea.dst].Anchor(ea.dstPoint).X
		tb := g.items[eb.dst].Anchor(eb.dstPoint).X
		return cmpFloat(ta, tb)
	})
	return edges
}

func sortByOriginalX(g *layoutGraph, idxs []int) {
	slices.SortStableFunc(idxs, func(a, b int) int {
		return cmpFloat(g.items[a].Position.X, g.items[b].Position.X)
	})
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
