package arrange

import (
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// edge is a validated connector resolved to item indices. The connection
// point keys are kept so placement can anchor on the exact wire endpoints
// rather than box centers.
type edge struct {
	src, dst           int // indices into the item slice
	srcPoint, dstPoint string
}

// layoutGraph is the per-call working state of the engine: the immutable
// input snapshot plus the resolved edge list and adjacency indices.
// It never outlives a single Arrange call.
type layoutGraph struct {
	items []schematic.Item
	edges []edge

	outgoing map[int][]int // item index -> edge indices where it is the source
	incoming map[int][]int // item index -> edge indices where it is the target
}

// buildGraph resolves connectors against the item set. Connectors whose
// endpoints are missing, identical, or locked are silently dropped; a
// stale wire must never break layout of the rest of the diagram.
func buildGraph(items []schematic.Item, connectors []schematic.Connector) *layoutGraph {
	index := schematic.ItemIndex(items)

	g := &layoutGraph{
		items:    items,
		outgoing: make(map[int][]int),
		incoming: make(map[int][]int),
	}

	for _, c := range connectors {
		src, ok := index[c.From]
		if !ok {
			continue
		}
		dst, ok := index[c.To]
		if !ok || src == dst {
			continue
		}
		if items[src].Locked || items[dst].Locked {
			continue
		}
		ei := len(g.edges)
		g.edges = append(g.edges, edge{src: src, dst: dst, srcPoint: c.FromPoint, dstPoint: c.ToPoint})
		g.outgoing[src] = append(g.outgoing[src], ei)
		g.incoming[dst] = append(g.incoming[dst], ei)
	}

	return g
}

// children returns the target item indices of all outgoing edges of idx.
func (g *layoutGraph) children(idx int) []int {
	out := make([]int, 0, len(g.outgoing[idx]))
	for _, ei := range g.outgoing[idx] {
		out = append(out, g.edges[ei].dst)
	}
	return out
}

// outDegree returns the number of outgoing edges of idx.
func (g *layoutGraph) outDegree(idx int) int { return len(g.outgoing[idx]) }
