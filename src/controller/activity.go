package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"quality-trends/src/config"
	"quality-trends/src/model"
	"quality-trends/src/service/chart"
	"quality-trends/src/service/dashboard"
	"quality-trends/src/service/githubapi"
	"quality-trends/src/util"
)

// ActivityController handles issue activity collection and reporting
type ActivityController struct {
	cfg *config.Config
}

// NewActivityController creates a new activity controller
func NewActivityController(cfg *config.Config) *ActivityController {
	return &ActivityController{cfg: cfg}
}

// FetchRequest selects the period and repository to collect. Week 0 means
// the whole month.
type FetchRequest struct {
	Year       int
	Month      int
	Week       int
	Repository string
}

// Fetch collects issue activity from the GitHub API and writes a JSON
// snapshot under the configured data directory. It returns the snapshot
// path.
func (c *ActivityController) Fetch(ctx context.Context, req FetchRequest) (string, error) {
	repository := firstNonEmpty(req.Repository, c.cfg.GitHub.Repository)
	owner, name, err := githubapi.ParseOwnerRepo(repository)
	if err != nil {
		return "", err
	}

	var start, end time.Time
	if req.Week > 0 {
		start, end, err = githubapi.WeekRange(req.Year, req.Month, req.Week)
		if err != nil {
			return "", err
		}
	} else {
		start, end = githubapi.MonthRange(req.Year, req.Month)
	}

	client, err := githubapi.NewClient(c.cfg.GitHub)
	if err != nil {
		return "", err
	}

	login, err := client.AuthenticatedLogin(ctx)
	if err != nil {
		return "", err
	}
	util.Info("Successfully authenticated as: %s", login)
	util.Info("Analyzing %s from %s to %s", repository,
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	devops, err := client.TeamMembers(ctx, owner, c.cfg.GitHub.Team)
	if err != nil {
		util.Warn("Error fetching %s team members: %v", c.cfg.GitHub.Team, err)
		devops = nil
	}

	issues, err := client.IssueActivity(ctx, owner, name, start, end)
	if err != nil {
		return "", err
	}

	snapshot := buildSnapshot(repository, req, start, end, devops, issues)

	if err := os.MkdirAll(c.cfg.GitHub.DataDir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	outFile := filepath.Join(c.cfg.GitHub.DataDir, snapshotName(name, req))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	util.Info("Found %d issues (%d open, %d closed) with %d comments",
		snapshot.Summary.TotalIssues, snapshot.Summary.OpenIssues,
		snapshot.Summary.ClosedIssues, snapshot.Summary.TotalComments)
	util.Info("Found %d %s team members", len(devops), c.cfg.GitHub.Team)

	return outFile, nil
}

// Report renders the HTML dashboard for a previously fetched snapshot.
func (c *ActivityController) Report(snapshotPath, outputPath string) error {
	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot model.ActivitySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("parsing snapshot %s: %w", snapshotPath, err)
	}

	daily, users := dashboard.Aggregate(snapshot)

	renderer := chart.NewRenderer(c.cfg.Output.ChartWidth, c.cfg.Output.ChartHeight)
	var charts dashboard.Charts
	if charts.Daily, err = renderer.DailyLines(daily); err != nil {
		return err
	}
	if charts.Users, err = renderer.UserBars(users); err != nil {
		return err
	}

	generator, err := dashboard.NewGenerator()
	if err != nil {
		return err
	}
	page, err := generator.Render(snapshot, users, charts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, page, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	util.Info("Report written to %s", outputPath)
	return nil
}

func buildSnapshot(repository string, req FetchRequest, start, end time.Time, devops []string, issues []model.IssueActivity) model.ActivitySnapshot {
	members := map[string]bool{}
	totalComments := 0
	open := 0
	for _, issue := range issues {
		for _, login := range issue.Participants() {
			members[login] = true
		}
		totalComments += issue.CommentsCount
		if issue.State == "open" {
			open++
		}
	}

	team := make([]string, 0, len(members))
	for login := range members {
		team = append(team, login)
	}
	sort.Strings(team)

	return model.ActivitySnapshot{
		Metadata: model.SnapshotMetadata{
			Repository:        repository,
			PeriodStart:       start,
			PeriodEnd:         end,
			Year:              req.Year,
			Month:             req.Month,
			MonthName:         time.Month(req.Month).String(),
			Week:              req.Week,
			GeneratedAt:       time.Now().UTC(),
			DevOpsTeamMembers: devops,
		},
		Summary: model.SnapshotSummary{
			TotalIssues:       len(issues),
			OpenIssues:        open,
			ClosedIssues:      len(issues) - open,
			TotalComments:     totalComments,
			TeamMembers:       team,
			DevOpsTeamMembers: devops,
		},
		Issues: issues,
	}
}

func snapshotName(repoName string, req FetchRequest) string {
	name := fmt.Sprintf("github_data_%s_%d_%02d", repoName, req.Year, req.Month)
	if req.Week > 0 {
		name += fmt.Sprintf("_week%d", req.Week)
	}
	return name + ".json"
}
