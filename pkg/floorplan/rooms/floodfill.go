package rooms

// region is one connected component of open grid cells.
type region struct {
	id            int
	cellCount     int
	minC, minR    int
	maxC, maxR    int
	touchesBorder bool
}

// floodRegions labels every open cell with its 4-connected component via a
// stack-based flood fill and returns the per-region summaries. labels holds
// -1 for closed cells and the region index otherwise.
func floodRegions(g *grid) (labels []int, regions []region) {
	labels = make([]int, g.cols*g.rows)
	for i := range labels {
		labels[i] = -1
	}

	type cell struct{ c, r int }

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.open[r*g.cols+c] || labels[r*g.cols+c] >= 0 {
				continue
			}

			id := len(regions)
			reg := region{id: id, minC: c, minR: r, maxC: c, maxR: r}
			stack := []cell{{c, r}}
			labels[r*g.cols+c] = id

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				reg.cellCount++
				if cur.c < reg.minC {
					reg.minC = cur.c
				}
				if cur.c > reg.maxC {
					reg.maxC = cur.c
				}
				if cur.r < reg.minR {
					reg.minR = cur.r
				}
				if cur.r > reg.maxR {
					reg.maxR = cur.r
				}
				if cur.c == 0 || cur.r == 0 || cur.c == g.cols-1 || cur.r == g.rows-1 {
					reg.touchesBorder = true
				}

				for _, n := range [4]cell{
					{cur.c + 1, cur.r},
					{cur.c - 1, cur.r},
					{cur.c, cur.r + 1},
					{cur.c, cur.r - 1},
				} {
					if !g.isOpen(n.c, n.r) || labels[n.r*g.cols+n.c] >= 0 {
						continue
					}
					labels[n.r*g.cols+n.c] = id
					stack = append(stack, n)
				}
			}

			regions = append(regions, reg)
		}
	}
	return labels, regions
}

// selectRooms applies the area and border heuristics from the detection
// pipeline:
//
//   - components below the minimum area are noise;
//   - components touching the raster border are outside the building,
//     except when every component touches the border (the crop failed to
//     isolate the building) - then keep all but drop the single largest
//     one, and only if it covers more than the configured fraction of the
//     grid (almost certainly background).
func selectRooms(g *grid, regions []region, cfg Config) []region {
	minCells := int(cfg.MinRoomArea / float64(g.step*g.step))
	if minCells < 1 {
		minCells = 1
	}

	var candidates []region
	for _, reg := range regions {
		if reg.cellCount >= minCells {
			candidates = append(candidates, reg)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var interior []region
	for _, reg := range candidates {
		if !reg.touchesBorder {
			interior = append(interior, reg)
		}
	}
	if len(interior) > 0 {
		return interior
	}

	// Everything touches the border. Drop only the largest component, and
	// only when it plausibly is the background.
	largest := 0
	for i, reg := range candidates {
		if reg.cellCount > candidates[largest].cellCount {
			largest = i
		}
	}
	total := g.cols * g.rows
	if total > 0 && float64(candidates[largest].cellCount) > cfg.BorderAreaFraction*float64(total) {
		return append(candidates[:largest:largest], candidates[largest+1:]...)
	}
	return candidates
}
