package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quality-trends/src/controller"
	"quality-trends/src/util"
)

func (h *Handler) reportCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "report <snapshot.json>",
		Short: "Render an HTML activity dashboard from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshotPath := args[0]
			out := outputFile
			if out == "" {
				out = strings.TrimSuffix(snapshotPath, ".json") + ".html"
			}

			ctrl := controller.NewActivityController(h.cfg)
			if err := ctrl.Report(snapshotPath, out); err != nil {
				util.Error("Report generation failed: %v", err)
				return fmt.Errorf("report generation failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output HTML file (default: snapshot name with .html)")
	return cmd
}

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}
