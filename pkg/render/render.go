// Package render draws schematics and floor plans to raster images and
// exports schematic connectivity as Graphviz documents.
//
// PNG output is drawn directly with a 2D canvas; SVG output goes through
// Graphviz layout of the connectivity graph. Both paths are deterministic
// for a given input, so artifacts are safe to cache by content hash.
package render

// Output format identifiers.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
	FormatDOT: true,
}

// Drawing palette. Hex strings feed gg's SetHexColor.
const (
	colorBackground = "#ffffff"
	colorWall       = "#2d2d2d"
	colorOpening    = "#8a6d3b"
	colorRoomFill   = "#e8f0e8"
	colorRoomEdge   = "#7aa87a"
	colorItemFill   = "#f0f0fa"
	colorItemEdge   = "#3b4a6b"
	colorConnector  = "#6b6b6b"
	colorLabel      = "#1a1a1a"
)

// Options configures raster rendering.
type Options struct {
	// Scale multiplies design-space coordinates into pixels. Zero means 1.
	Scale float64

	// Margin is the padding around the drawn content, in design-space units.
	Margin float64

	// Labels draws item names and room names.
	Labels bool
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	return o
}
