package model

import "time"

// IssueActivity captures the essentials of one tracker issue for a
// reporting period.
type IssueActivity struct {
	Number           int            `json:"number"`
	Title            string         `json:"title"`
	CreatedAt        time.Time      `json:"created_at"`
	ClosedAt         *time.Time     `json:"closed_at"`
	Creator          string         `json:"creator"`
	Assignees        []string       `json:"assignees"`
	State            string         `json:"state"`
	CommentsCount    int            `json:"comments_count"`
	CommentsByAuthor map[string]int `json:"comments_by_author"`
	URL              string         `json:"url"`
}

// Participants returns the distinct logins touching the issue: creator,
// assignees and everyone who commented.
func (i IssueActivity) Participants() []string {
	seen := map[string]bool{}
	var people []string
	add := func(login string) {
		if login != "" && !seen[login] {
			seen[login] = true
			people = append(people, login)
		}
	}
	add(i.Creator)
	for _, a := range i.Assignees {
		add(a)
	}
	for author := range i.CommentsByAuthor {
		add(author)
	}
	return people
}

// SnapshotMetadata describes where and when an activity snapshot was taken.
type SnapshotMetadata struct {
	Repository        string    `json:"repository"`
	PeriodStart       time.Time `json:"period_start"`
	PeriodEnd         time.Time `json:"period_end"`
	Year              int       `json:"year"`
	Month             int       `json:"month"`
	MonthName         string    `json:"month_name"`
	Week              int       `json:"week,omitempty"`
	GeneratedAt       time.Time `json:"generated_at"`
	DevOpsTeamMembers []string  `json:"devops_team_members"`
}

// SnapshotSummary holds repository-wide totals for the period.
type SnapshotSummary struct {
	TotalIssues       int      `json:"total_issues"`
	OpenIssues        int      `json:"open_issues"`
	ClosedIssues      int      `json:"closed_issues"`
	TotalComments     int      `json:"total_comments"`
	TeamMembers       []string `json:"team_members"`
	DevOpsTeamMembers []string `json:"devops_team_members"`
}

// ActivitySnapshot is the JSON document written by fetch and consumed by
// report.
type ActivitySnapshot struct {
	Metadata SnapshotMetadata `json:"metadata"`
	Summary  SnapshotSummary  `json:"summary"`
	Issues   []IssueActivity  `json:"issues"`
}
