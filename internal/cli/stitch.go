package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
)

// stitchCommand creates the "stitch" command.
func (c *CLI) stitchCommand() *cobra.Command {
	var (
		input        string
		output       string
		noCache      bool
		refresh      bool
		scaled       bool
		canvasWidth  float64
		canvasHeight float64
	)

	cmd := &cobra.Command{
		Use:   "stitch",
		Short: "Merge fragmented floor-plan walls",
		Long: `Stitch reads a floor plan, fuses nearly-collinear wall fragments, closes
small gaps (and larger ones spanned by a door or window), and writes the
plan back with the merged wall set. Diagonal walls pass through untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := floorplan.ImportJSON(input)
			if err != nil {
				return fmt.Errorf("read plan: %w", err)
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.pipelineOptions()
			opts.Refresh = refresh
			opts.ScaleTolerances = scaled
			opts.CanvasWidth = canvasWidth
			opts.CanvasHeight = canvasHeight

			before := len(plan.Walls)
			stitched, hit, err := runner.StitchWithCacheInfo(cmd.Context(), plan, opts)
			if err != nil {
				return err
			}

			if output == "" {
				return floorplan.WriteJSON(stitched, os.Stdout)
			}
			if err := floorplan.ExportJSON(stitched, output); err != nil {
				return err
			}
			printSuccess("Stitched %d fragments into %d walls", before, len(stitched.Walls))
			printFile(output)
			printStats(hit,
				fmt.Sprintf("%d walls in", before),
				fmt.Sprintf("%d walls out", len(stitched.Walls)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "plan JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&scaled, "scaled", false, "scale tolerances from the canvas size")
	cmd.Flags().Float64Var(&canvasWidth, "canvas-width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&canvasHeight, "canvas-height", 0, "canvas height in pixels")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
