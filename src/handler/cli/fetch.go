package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quality-trends/src/controller"
	"quality-trends/src/util"
)

func (h *Handler) fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [year] [month] [week] [repo]",
		Short: "Fetch issue activity from GitHub for a period",
		Long: "Collects issue and comment activity for a month (or a week of a month) " +
			"and writes a JSON snapshot. Year and month default to the current date; " +
			"week is 1-5 and a repo is recognized by its owner/name form.",
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseFetchArgs(args)
			if err != nil {
				return err
			}

			util.Info("Fetching data for %s %d%s from repository %s",
				time.Month(req.Month), req.Year, weekSuffix(req.Week),
				firstNonEmpty(req.Repository, h.cfg.GitHub.Repository))

			ctrl := controller.NewActivityController(h.cfg)
			outFile, err := ctrl.Fetch(context.Background(), req)
			if err != nil {
				util.Error("Fetch failed: %v", err)
				return fmt.Errorf("fetch failed: %w", err)
			}

			// Easy-to-grep marker for wrapping scripts.
			fmt.Printf("OUTPUT_FILE: %s\n", outFile)
			return nil
		},
	}
	return cmd
}

// parseFetchArgs interprets the positional arguments: the first two are
// year and month; any later argument that is an integer 1-5 is the week
// and anything containing a slash is the repository.
func parseFetchArgs(args []string) (controller.FetchRequest, error) {
	now := time.Now()
	req := controller.FetchRequest{Year: now.Year(), Month: int(now.Month())}

	if len(args) >= 2 {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return req, fmt.Errorf("invalid year %q", args[0])
		}
		month, err := strconv.Atoi(args[1])
		if err != nil || month < 1 || month > 12 {
			return req, fmt.Errorf("invalid month %q", args[1])
		}
		req.Year = year
		req.Month = month
		args = args[2:]
	} else if len(args) == 1 {
		return req, fmt.Errorf("year and month must be given together")
	} else {
		args = nil
	}

	for _, arg := range args {
		if week, err := strconv.Atoi(arg); err == nil && week >= 1 && week <= 5 {
			req.Week = week
			continue
		}
		if strings.Contains(arg, "/") {
			req.Repository = arg
			continue
		}
		return req, fmt.Errorf("unrecognized argument %q (expected a week 1-5 or an owner/name repo)", arg)
	}
	return req, nil
}

func weekSuffix(week int) string {
	if week == 0 {
		return ""
	}
	return fmt.Sprintf(" week %d", week)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
