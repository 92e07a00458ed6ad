package arrange

// Tier conventions: tier 0 holds the leaves (loads, no outgoing edges) and
// sits at the bottom of the drawing; every source sits strictly above all of
// its targets. This is the inverse of top-down rank assignment - supply
// equipment ends up at the top because everything it feeds pushes it up.

// assignTiers computes the tier of every member of the component.
//
// Tiers propagate upward from the leaf set by relaxation: a node's tier is
// the maximum of (child tier + 1) over its outgoing edges, and whenever a
// child's tier increases its sources are re-enqueued. Components that have
// no leaf at all (pure cycles) fall back to seeding from the nodes with
// minimum out-degree, which still terminates because a tier only ever
// increases and is bounded by the member count.
func assignTiers(g *layoutGraph, c *component) map[int]int {
	inComponent := make(map[int]bool, len(c.members))
	for _, idx := range c.members {
		inComponent[idx] = true
	}

	tiers := make(map[int]int, len(c.members))

	// Leaf set: members with no outgoing edges inside the component.
	var seeds []int
	for _, idx := range c.members {
		if g.outDegree(idx) == 0 {
			seeds = append(seeds, idx)
		}
	}

	// No leaf means every member sits on or feeds a cycle. Seed from the
	// members with minimum out-degree instead and propagate without
	// re-relaxation: a pure cycle then collapses onto a single tier, which
	// keeps tier(src) >= tier(dst) on every edge.
	relax := true
	if len(seeds) == 0 {
		relax = false
		minOut := -1
		for _, idx := range c.members {
			if d := g.outDegree(idx); minOut < 0 || d < minOut {
				minOut = d
			}
		}
		for _, idx := range c.members {
			if g.outDegree(idx) == minOut {
				seeds = append(seeds, idx)
			}
		}
	}

	maxTier := len(c.members) - 1
	queue := append([]int(nil), seeds...)
	for _, s := range seeds {
		tiers[s] = 0
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, ei := range g.incoming[curr] {
			src := g.edges[ei].src
			if !inComponent[src] {
				continue
			}
			want := tiers[curr] + 1
			if want > maxTier {
				// Cycle: cap instead of spinning forever.
				continue
			}
			have, ok := tiers[src]
			if ok && (!relax || want <= have) {
				continue
			}
			tiers[src] = want
			queue = append(queue, src)
		}
	}

	// Anything the propagation never reached defaults to tier 0.
	for _, idx := range c.members {
		if _, ok := tiers[idx]; !ok {
			tiers[idx] = 0
		}
	}
	return tiers
}

// maxTierOf returns the highest tier value in the assignment.
func maxTierOf(tiers map[int]int) int {
	max := 0
	for _, t := range tiers {
		if t > max {
			max = t
		}
	}
	return max
}

// crossingsBelow counts the edges that visually pass through the gap between
// tier t and tier t+1: their target is at or below t while their source is
// above t.
func crossingsBelow(g *layoutGraph, c *component, tiers map[int]int, t int) int {
	n := 0
	for _, ei := range c.edges {
		e := g.edges[ei]
		if tiers[e.dst] <= t && tiers[e.src] > t {
			n++
		}
	}
	return n
}
