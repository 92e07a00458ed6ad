package arrange

import (
	"math"
	"slices"
)

// unionFind is a disjoint-set forest over item indices with path compression
// and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]] // halve the path
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
}

// component is a connected subgraph laid out independently of the others.
type component struct {
	members []int // item indices, ascending
	edges   []int // edge indices whose endpoints are both members
	minX    float64
}

// splitComponents partitions the graph into connected components, treating
// edges as undirected. Only items that appear in at least one edge are
// included; isolated items stay where the user put them. Components are
// returned sorted by their leftmost original x position so the packed
// result preserves the user's rough left-to-right arrangement.
func splitComponents(g *layoutGraph) []*component {
	if len(g.edges) == 0 {
		return nil
	}

	uf := newUnionFind(len(g.items))
	connected := make(map[int]bool)
	for _, e := range g.edges {
		uf.union(e.src, e.dst)
		connected[e.src] = true
		connected[e.dst] = true
	}

	byRoot := make(map[int]*component)
	for idx := range g.items {
		if !connected[idx] {
			continue
		}
		root := uf.find(idx)
		c := byRoot[root]
		if c == nil {
			c = &component{minX: math.Inf(1)}
			byRoot[root] = c
		}
		c.members = append(c.members, idx)
		if x := g.items[idx].Position.X; x < c.minX {
			c.minX = x
		}
	}

	for ei, e := range g.edges {
		root := uf.find(e.src)
		byRoot[root].edges = append(byRoot[root].edges, ei)
	}

	comps := make([]*component, 0, len(byRoot))
	for _, c := range byRoot {
		comps = append(comps, c)
	}
	slices.SortFunc(comps, func(a, b *component) int {
		switch {
		case a.minX < b.minX:
			return -1
		case a.minX > b.minX:
			return 1
		default:
			// Equal left edges: fall back to the smallest member index so
			// the order is stable across runs.
			return a.members[0] - b.members[0]
		}
	})
	return comps
}
