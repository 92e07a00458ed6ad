package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/pipeline"
	"github.com/rickerduniya/Sayanho-sub002/pkg/render"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// renderCommand creates the "render" command with plan and schematic
// subcommands.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a plan or schematic to PNG, SVG, or DOT",
	}
	cmd.AddCommand(c.renderPlanCommand())
	cmd.AddCommand(c.renderSchematicCommand())
	return cmd
}

func (c *CLI) renderPlanCommand() *cobra.Command {
	var (
		input        string
		output       string
		scale        float64
		labels       bool
		canvasWidth  float64
		canvasHeight float64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Render a floor plan to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := floorplan.ImportJSON(input)
			if err != nil {
				return fmt.Errorf("read plan: %w", err)
			}
			if canvasWidth <= 0 {
				canvasWidth = pipeline.DefaultCanvasWidth
			}
			if canvasHeight <= 0 {
				canvasHeight = pipeline.DefaultCanvasHeight
			}

			png, err := render.PlanPNG(plan, int(canvasWidth), int(canvasHeight), render.Options{
				Scale:  scale,
				Labels: labels,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return err
			}
			printSuccess("Rendered %d walls, %d rooms", len(plan.Walls), len(plan.Rooms))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "plan JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "plan.png", "output PNG file")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per design unit")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw room names")
	cmd.Flags().Float64Var(&canvasWidth, "canvas-width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&canvasHeight, "canvas-height", 0, "canvas height in pixels")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) renderSchematicCommand() *cobra.Command {
	var (
		input    string
		output   string
		format   string
		scale    float64
		labels   bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "schematic",
		Short: "Render a schematic to PNG, SVG, or DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if !render.ValidFormats[format] {
				return fmt.Errorf("unsupported format %q (png, svg, dot)", format)
			}

			snap, err := schematic.ImportJSON(input)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			var data []byte
			switch format {
			case render.FormatPNG:
				data, err = render.SchematicPNG(snap, render.Options{Scale: scale, Labels: labels})
			case render.FormatDOT:
				data = []byte(render.ToDOT(snap, render.DOTOptions{Detailed: detailed}))
			case render.FormatSVG:
				dot := render.ToDOT(snap, render.DOTOptions{Detailed: detailed})
				data, err = render.SVG(cmd.Context(), dot)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = "schematic." + format
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Rendered %d items, %d connectors", len(snap.Items), len(snap.Connectors))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "snapshot JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: schematic.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "output format: png, svg, or dot")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per design unit (png only)")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw item names (png only)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include type and position in DOT labels")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
