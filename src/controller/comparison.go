package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quality-trends/src/config"
	"quality-trends/src/model"
	"quality-trends/src/service/chart"
	"quality-trends/src/service/compare"
	"quality-trends/src/service/sheet"
	"quality-trends/src/util"
)

// ComparisonController orchestrates the two-period metric comparison
type ComparisonController struct {
	cfg *config.Config
}

// NewComparisonController creates a new comparison controller
func NewComparisonController(cfg *config.Config) *ComparisonController {
	return &ComparisonController{cfg: cfg}
}

// CompareRequest carries per-run overrides of the configured inputs.
type CompareRequest struct {
	PeriodA   string
	PeriodB   string
	OutputDir string
}

// Run loads both period exports, compares every configured metric and
// writes one colored workbook per metric plus the combined top
// improvements chart. It returns the per-metric results for summary
// output.
func (c *ComparisonController) Run(req CompareRequest) ([]model.ComparisonResult, error) {
	pathA := firstNonEmpty(req.PeriodA, c.cfg.Input.PeriodA)
	pathB := firstNonEmpty(req.PeriodB, c.cfg.Input.PeriodB)
	outDir := firstNonEmpty(req.OutputDir, c.cfg.Output.Dir)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	metrics := c.cfg.MetricNames()
	reader := sheet.NewReader(c.cfg.Input)

	periodA, err := reader.Read(pathA, metrics)
	if err != nil {
		return nil, fmt.Errorf("loading period A: %w", err)
	}
	periodB, err := reader.Read(pathB, metrics)
	if err != nil {
		return nil, fmt.Errorf("loading period B: %w", err)
	}

	patterns := c.cfg.Branches.StagingPatterns
	filteredA := compare.FilterBranches(periodA, patterns)
	filteredB := compare.FilterBranches(periodB, patterns)
	util.Info("Period A: %d of %d records on staging-like branches", len(filteredA), len(periodA))
	util.Info("Period B: %d of %d records on staging-like branches", len(filteredB), len(periodB))

	renderer := chart.NewRenderer(c.cfg.Output.ChartWidth, c.cfg.Output.ChartHeight)
	writer := sheet.NewWriter()

	var results []model.ComparisonResult
	for _, policy := range c.cfg.Metrics {
		result := compare.Compare(filteredA, filteredB, policy)
		results = append(results, result)

		var chartPNG []byte
		if c.cfg.Output.EmbedCharts {
			chartPNG, err = renderer.MetricBars(result)
			if err != nil {
				return nil, err
			}
		}

		outFile := filepath.Join(outDir, workbookName(policy.Name))
		if err := writer.Write(result, chartPNG, outFile); err != nil {
			return nil, fmt.Errorf("writing %s workbook: %w", policy.Name, err)
		}

		if !result.Empty() {
			util.Info("Generated %s with %d repositories that had significant changes in %s",
				outFile, len(result.Deltas), policy.Name)
		}
	}

	if err := c.writeCombinedChart(renderer, results, outDir); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *ComparisonController) writeCombinedChart(renderer *chart.Renderer, results []model.ComparisonResult, outDir string) error {
	if c.cfg.Output.CombinedChart == "" {
		return nil
	}

	specs := make([]chart.TopImprovementsSpec, len(results))
	for i, result := range results {
		topN := c.cfg.Policy(result.Metric).ChartTopN
		if topN <= 0 {
			topN = c.cfg.Output.TopImprovements
		}
		specs[i] = chart.TopImprovementsSpec{Result: result, TopN: topN}
	}

	png, err := renderer.TopImprovements(specs, "Top Code Quality Improvements")
	if err != nil {
		return err
	}
	if png == nil {
		util.Info("No improvements found; skipping combined chart")
		return nil
	}

	outFile := filepath.Join(outDir, c.cfg.Output.CombinedChart)
	if err := os.WriteFile(outFile, png, 0644); err != nil {
		return fmt.Errorf("writing combined chart: %w", err)
	}
	util.Info("Created combined top improvements chart: %s", outFile)
	return nil
}

func workbookName(metric string) string {
	return strings.ReplaceAll(metric, " ", "_") + "_comparison.xlsx"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
