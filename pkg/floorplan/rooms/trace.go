package rooms

// gridVertex is a lattice corner of the coarse grid, in cell units.
type gridVertex struct {
	c, r int
}

// boundaryEdge is a directed unit edge along a cell border. Edges are
// oriented so that the region interior lies to the right, which makes the
// stitched loop run clockwise in screen coordinates (y down).
type boundaryEdge struct {
	from, to gridVertex
}

// traceBoundary extracts the outer boundary polygon of a region by
// collecting every cell edge that borders a foreign cell or the raster
// edge, then stitching the directed edges into a closed loop. Returns
// ok=false when the loop cannot be closed (the caller falls back to the
// bounding box).
func traceBoundary(g *grid, labels []int, reg region) ([]gridVertex, bool) {
	inRegion := func(c, r int) bool {
		if c < 0 || r < 0 || c >= g.cols || r >= g.rows {
			return false
		}
		return labels[r*g.cols+c] == reg.id
	}

	// byStart indexes unused edges by their start vertex.
	byStart := make(map[gridVertex][]boundaryEdge)
	var first *boundaryEdge
	addEdge := func(e boundaryEdge) {
		byStart[e.from] = append(byStart[e.from], e)
		if first == nil {
			first = &e
		}
	}

	for r := reg.minR; r <= reg.maxR; r++ {
		for c := reg.minC; c <= reg.maxC; c++ {
			if !inRegion(c, r) {
				continue
			}
			if !inRegion(c, r-1) { // top side, left to right
				addEdge(boundaryEdge{gridVertex{c, r}, gridVertex{c + 1, r}})
			}
			if !inRegion(c+1, r) { // right side, top to bottom
				addEdge(boundaryEdge{gridVertex{c + 1, r}, gridVertex{c + 1, r + 1}})
			}
			if !inRegion(c, r+1) { // bottom side, right to left
				addEdge(boundaryEdge{gridVertex{c + 1, r + 1}, gridVertex{c, r + 1}})
			}
			if !inRegion(c-1, r) { // left side, bottom to top
				addEdge(boundaryEdge{gridVertex{c, r + 1}, gridVertex{c, r}})
			}
		}
	}
	if first == nil {
		return nil, false
	}

	// Follow edges from the first collected one (topmost-leftmost cell, so
	// it lies on the outer boundary, not on a hole).
	take := func(v gridVertex) (boundaryEdge, bool) {
		edges := byStart[v]
		if len(edges) == 0 {
			return boundaryEdge{}, false
		}
		e := edges[0]
		byStart[v] = edges[1:]
		return e, true
	}

	start := first.from
	loop := []gridVertex{start}
	curr, ok := take(start)
	if !ok {
		return nil, false
	}
	for curr.to != start {
		loop = append(loop, curr.to)
		next, ok := take(curr.to)
		if !ok {
			return nil, false
		}
		curr = next
		if len(loop) > 4*g.cols*g.rows {
			// Edge bookkeeping went wrong; bail out rather than spin.
			return nil, false
		}
	}
	return loop, true
}

// simplifyCollinear removes vertices whose incoming and outgoing edges run
// in the same axis direction, reducing the per-cell staircase to a compact
// rectilinear polygon. Polygons that collapse below three vertices return
// nil.
func simplifyCollinear(poly []gridVertex) []gridVertex {
	n := len(poly)
	if n < 3 {
		return nil
	}

	var out []gridVertex
	for i := 0; i < n; i++ {
		prev := poly[(i-1+n)%n]
		curr := poly[i]
		next := poly[(i+1)%n]

		dc1, dr1 := sgn(curr.c-prev.c), sgn(curr.r-prev.r)
		dc2, dr2 := sgn(next.c-curr.c), sgn(next.r-curr.r)
		if dc1 == dc2 && dr1 == dr2 {
			continue // straight-through vertex
		}
		out = append(out, curr)
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

func sgn(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
