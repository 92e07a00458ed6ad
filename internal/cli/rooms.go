package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
)

// roomsCommand creates the "rooms" command.
func (c *CLI) roomsCommand() *cobra.Command {
	var (
		input        string
		output       string
		noCache      bool
		refresh      bool
		canvasWidth  float64
		canvasHeight float64
	)

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Detect rooms from a floor plan",
		Long: `Rooms rasterizes the plan's walls (with doors and windows sealing their
gaps), flood-fills the enclosed regions, and writes the plan back with the
detected room polygons attached. Open canvases yield no rooms.`,
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
			opts.CanvasWidth = canvasWidth
			opts.CanvasHeight = canvasHeight

			sp := newSpinnerWithContext(cmd.Context(), "Detecting rooms...")
			sp.Start()
			detected, hit, err := runner.DetectRoomsWithCacheInfo(cmd.Context(), plan, opts)
			sp.Stop()
			if err != nil {
				if sp.Cancelled() {
					return cmd.Context().Err()
				}
				return err
			}
			plan.Rooms = detected

			if output == "" {
				return floorplan.WriteJSON(plan, os.Stdout)
			}
			if err := floorplan.ExportJSON(plan, output); err != nil {
				return err
			}
			printSuccess("Detected %d rooms", len(detected))
			printFile(output)
			printStats(hit,
				fmt.Sprintf("%d walls", len(plan.Walls)),
				fmt.Sprintf("%d rooms", len(detected)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "plan JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().Float64Var(&canvasWidth, "canvas-width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&canvasHeight, "canvas-height", 0, "canvas height in pixels")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
