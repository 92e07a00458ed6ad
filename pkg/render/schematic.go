package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/rickerduniya/Sayanho-sub002/pkg/geometry"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// SchematicPNG draws an arranged snapshot and returns the encoded PNG. The
// canvas is sized to the content bounds plus the margin, so callers don't
// need to know the layout extents in advance.
func SchematicPNG(snap schematic.Snapshot, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if opts.Margin == 0 {
		opts.Margin = 40
	}

	bounds, ok := contentBounds(snap.Items)
	if !ok {
		return nil, fmt.Errorf("empty snapshot")
	}

	pw := int((bounds.Width + 2*opts.Margin) * opts.Scale)
	ph := int((bounds.Height + 2*opts.Margin) * opts.Scale)
	dc := gg.NewContext(pw, ph)
	dc.SetHexColor(colorBackground)
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(opts.Margin-bounds.X, opts.Margin-bounds.Y)

	index := schematic.ItemIndex(snap.Items)

	// Connectors first so item boxes cover the line ends.
	dc.SetHexColor(colorConnector)
	dc.SetLineWidth(1.5)
	for _, c := range snap.Connectors {
		fi, okFrom := index[c.From]
		ti, okTo := index[c.To]
		if !okFrom || !okTo {
			continue
		}
		a := snap.Items[fi].Anchor(c.FromPoint)
		b := snap.Items[ti].Anchor(c.ToPoint)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	for _, it := range snap.Items {
		drawItem(dc, it, opts)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawItem(dc *gg.Context, it schematic.Item, opts Options) {
	b := it.Bounds()
	w, h := b.Width, b.Height
	if w <= 0 {
		w = 60
	}
	if h <= 0 {
		h = 40
	}

	dc.DrawRoundedRectangle(b.X, b.Y, w, h, 4)
	dc.SetHexColor(colorItemFill)
	dc.FillPreserve()
	dc.SetHexColor(colorItemEdge)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	if opts.Labels {
		label := it.Label
		if label == "" {
			label = it.ID
		}
		dc.SetHexColor(colorLabel)
		dc.DrawStringAnchored(label, b.X+w/2, b.Y+h/2, 0.5, 0.5)
	}
}

// contentBounds returns the union of all item boxes.
func contentBounds(items []schematic.Item) (geometry.Rect, bool) {
	if len(items) == 0 {
		return geometry.Rect{}, false
	}
	b := items[0].Bounds()
	for _, it := range items[1:] {
		b = b.Union(it.Bounds())
	}
	return b, true
}
