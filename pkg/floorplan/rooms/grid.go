package rooms

// grid is the downsampled occupancy view of the obstacle raster. One cell
// covers step x step source pixels and is open when the pixel at the cell's
// center is brighter than the luminance threshold.
type grid struct {
	cols, rows int
	step       int
	open       []bool // row-major, cols*rows
}

// downsample builds the coarse grid from a row-major grayscale buffer.
// Sampling the center pixel of each cell bounds flood-fill cost and makes
// boundary polygons land on integer multiples of step.
func downsample(width, height int, pixels []uint8, cfg Config) *grid {
	step := cfg.GridStep
	if step < 1 {
		step = 1
	}
	cols := width / step
	rows := height / step
	if cols < 1 || rows < 1 {
		return &grid{cols: 0, rows: 0, step: step}
	}

	g := &grid{cols: cols, rows: rows, step: step, open: make([]bool, cols*rows)}
	for r := 0; r < rows; r++ {
		py := r*step + step/2
		if py >= height {
			py = height - 1
		}
		for c := 0; c < cols; c++ {
			px := c*step + step/2
			if px >= width {
				px = width - 1
			}
			g.open[r*cols+c] = pixels[py*width+px] > cfg.LuminanceThreshold
		}
	}
	return g
}

func (g *grid) isOpen(c, r int) bool {
	if c < 0 || r < 0 || c >= g.cols || r >= g.rows {
		return false
	}
	return g.open[r*g.cols+c]
}
