package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quality-trends/src/controller"
	"quality-trends/src/util"
)

func (h *Handler) compareCmd() *cobra.Command {
	var (
		periodA   string
		periodB   string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare metric exports of two reporting periods",
		Long: "Computes per-repository metric deltas between two spreadsheet exports, " +
			"filters them by significance and writes colored workbooks with charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewComparisonController(h.cfg)
			results, err := ctrl.Run(controller.CompareRequest{
				PeriodA:   periodA,
				PeriodB:   periodB,
				OutputDir: outputDir,
			})
			if err != nil {
				util.Error("Comparison failed: %v", err)
				return fmt.Errorf("comparison failed: %w", err)
			}

			for _, result := range results {
				if result.Empty() {
					fmt.Printf("%s: no significant changes\n", result.Metric)
					continue
				}
				improved := 0
				for _, d := range result.Deltas {
					if d.Improved() {
						improved++
					}
				}
				fmt.Printf("%s: %d significant changes (%d improvements, %d regressions)\n",
					result.Metric, len(result.Deltas), improved, len(result.Deltas)-improved)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodA, "period-a", "a", "", "First period spreadsheet (default from config)")
	cmd.Flags().StringVarP(&periodB, "period-b", "b", "", "Second period spreadsheet (default from config)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")

	return cmd
}
