package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// DOTOptions configures connectivity export.
type DOTOptions struct {
	// Detailed includes item type and position in node labels.
	// When false, only the label or ID is shown.
	Detailed bool
}

// ToDOT converts a snapshot's connectivity to Graphviz DOT format. The
// resulting string can be rendered with [SVG] or fed to external tooling.
//
// Distribution boards are drawn as wider boxes; connector output points
// appear as tail labels so phase assignments stay visible in the diagram.
func ToDOT(snap schematic.Snapshot, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph connectivity {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, it := range snap.Items {
		label := itemLabel(it, opts.Detailed)
		attrs := itemAttrs(it, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", it.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range snap.Connectors {
		if c.FromPoint != "" {
			fmt.Fprintf(&buf, "  %q -> %q [taillabel=%q];\n", c.From, c.To, c.FromPoint)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", c.From, c.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func itemLabel(it schematic.Item, detailed bool) string {
	label := it.Label
	if label == "" {
		label = it.ID
	}
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\ntype: %s\nat: (%.0f, %.0f)", label, it.Type, it.Position.X, it.Position.Y)
}

func itemAttrs(it schematic.Item, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch it.Type {
	case schematic.TypeDistributionBoard:
		attrs = append(attrs, "fillcolor=lightyellow", "width=2")
	case schematic.TypeMeter:
		attrs = append(attrs, "shape=ellipse")
	}
	return attrs
}

// SVG renders a DOT document to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer svg tag so the document starts at the
// origin with explicit pixel dimensions, which embeds cleanly in the editor.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
