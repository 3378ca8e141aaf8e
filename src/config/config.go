package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent    AgentConfig    `yaml:"agent"`
	Input    InputConfig    `yaml:"input"`
	Branches BranchesConfig `yaml:"branches"`
	Metrics  []MetricPolicy `yaml:"metrics"`
	Output   OutputConfig   `yaml:"output"`
	GitHub   GitHubConfig   `yaml:"github"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// InputConfig describes the two period spreadsheets to compare
type InputConfig struct {
	PeriodA string `yaml:"period_a"`
	PeriodB string `yaml:"period_b"`
	// Sheet is the worksheet to read; empty means the first sheet.
	Sheet            string `yaml:"sheet"`
	RepositoryColumn string `yaml:"repository_column"`
	BranchColumn     string `yaml:"branch_column"`
}

// BranchesConfig contains the branch inclusion filter
type BranchesConfig struct {
	// StagingPatterns are substrings matched case-insensitively against
	// branch names; a record is kept when any pattern is contained.
	StagingPatterns []string `yaml:"staging_patterns"`
}

// MetricPolicy names one metric column and its significance rule.
// MinAbsDifference > 0 keeps a delta only when |difference| reaches the
// threshold; zero means any non-zero change is significant.
type MetricPolicy struct {
	Name             string  `yaml:"name"`
	MinAbsDifference float64 `yaml:"min_abs_difference"`
	// ChartTopN overrides output.top_improvements for this metric's slot
	// in the combined chart (0 = use the global value).
	ChartTopN int `yaml:"chart_top_n"`
}

// Significant reports whether a difference passes the policy.
func (p MetricPolicy) Significant(difference float64) bool {
	if p.MinAbsDifference > 0 {
		abs := difference
		if abs < 0 {
			abs = -abs
		}
		return abs >= p.MinAbsDifference
	}
	return difference != 0
}

// OutputConfig contains export settings
type OutputConfig struct {
	Dir             string `yaml:"dir"`
	ChartWidth      int    `yaml:"chart_width"`
	ChartHeight     int    `yaml:"chart_height"`
	EmbedCharts     bool   `yaml:"embed_charts"`
	CombinedChart   string `yaml:"combined_chart"`
	TopImprovements int    `yaml:"top_improvements"`
}

// GitHubConfig contains issue-tracker fetch settings
type GitHubConfig struct {
	// TokenEnv names the environment variable holding the API token.
	TokenEnv   string        `yaml:"token_env"`
	Repository string        `yaml:"repository"`
	Team       string        `yaml:"team"`
	DataDir    string        `yaml:"data_dir"`
	Timeout    time.Duration `yaml:"timeout"`
	Retry      RetryConfig   `yaml:"retry"`
}

// RetryConfig contains retry settings for API calls
type RetryConfig struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	BackoffFactor float64       `yaml:"backoff_factor"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}

// Policy returns the significance policy for a metric name. Unknown metrics
// get a zero-threshold policy (any change is significant).
func (c *Config) Policy(metric string) MetricPolicy {
	for _, p := range c.Metrics {
		if p.Name == metric {
			return p
		}
	}
	return MetricPolicy{Name: metric}
}

// MetricNames returns the configured metric column names in order.
func (c *Config) MetricNames() []string {
	names := make([]string, len(c.Metrics))
	for i, p := range c.Metrics {
		names[i] = p.Name
	}
	return names
}
