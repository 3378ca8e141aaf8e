package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "quality-trends",
			Version:     "1.0.0",
			Description: "Code quality trend comparison and activity reporting",
		},
		Input: InputConfig{
			PeriodA:          "april_report.xlsx",
			PeriodB:          "may_report.xlsx",
			RepositoryColumn: "Repository Name",
			BranchColumn:     "Branch",
		},
		Branches: BranchesConfig{
			StagingPatterns: []string{"stg", "stage", "stg-aks", "stagging"},
		},
		Metrics: []MetricPolicy{
			// The Code Smell threshold has drifted between 20 and 50 in
			// past report runs; 20 is the current default.
			{Name: "Code Smell", MinAbsDifference: 20, ChartTopN: 3},
			{Name: "Duplications", ChartTopN: 2},
			{Name: "Security Hotspot", ChartTopN: 3},
		},
		Output: OutputConfig{
			Dir:             ".",
			ChartWidth:      1000,
			ChartHeight:     800,
			EmbedCharts:     true,
			CombinedChart:   "top_improvements.png",
			TopImprovements: 3,
		},
		GitHub: GitHubConfig{
			TokenEnv:   "MY_GITHUB_TOKEN",
			Repository: "HarunAlKawser/charts",
			Team:       "devops",
			DataDir:    "data",
			Timeout:    30 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:   3,
				BackoffFactor: 1.5,
				InitialDelay:  100 * time.Millisecond,
				MaxDelay:      5 * time.Second,
			},
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
		},
	}
}
