package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// arrangeCommand creates the "arrange" command.
func (c *CLI) arrangeCommand() *cobra.Command {
	var (
		input   string
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "Lay out a schematic snapshot from its connectivity",
		Long: `Arrange reads a schematic snapshot (items and connectors), computes a
tiered layout where power flows top to bottom, and writes the snapshot back
with updated item positions. Locked items keep their position.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := schematic.ImportJSON(input)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.pipelineOptions()
			opts.Refresh = refresh

			arranged, hit, err := runner.ArrangeWithCacheInfo(cmd.Context(), snap, opts)
			if err != nil {
				return err
			}

			if output == "" {
				return schematic.WriteJSON(arranged, os.Stdout)
			}
			if err := schematic.ExportJSON(arranged, output); err != nil {
				return err
			}
			printSuccess("Arranged %d items", len(arranged.Items))
			printFile(output)
			printStats(hit,
				fmt.Sprintf("%d items", len(arranged.Items)),
				fmt.Sprintf("%d connectors", len(arranged.Connectors)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "snapshot JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
