package githubapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"quality-trends/src/config"
	"quality-trends/src/model"
	"quality-trends/src/util"
)

// Client wraps the GitHub API for issue activity collection
type Client struct {
	gh        *github.Client
	retryConf config.RetryConfig
}

// NewClient creates an authenticated GitHub client. The token is read from
// the environment variable named in the config.
func NewClient(cfg config.GitHubConfig) (*Client, error) {
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("%s environment variable not set", cfg.TokenEnv)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = cfg.Timeout

	return &Client{gh: github.NewClient(tc), retryConf: cfg.Retry}, nil
}

// AuthenticatedLogin returns the login of the token's user.
func (c *Client) AuthenticatedLogin(ctx context.Context) (string, error) {
	var user *github.User
	err := c.withRetry(ctx, "get authenticated user", func() error {
		var err error
		user, _, err = c.gh.Users.Get(ctx, "")
		return err
	})
	if err != nil {
		return "", fmt.Errorf("authenticating: %w", err)
	}
	return user.GetLogin(), nil
}

// TeamMembers returns the member logins of the named team inside an
// organization, matched case-insensitively. A missing team is not an
// error; it returns an empty slice.
func (c *Client) TeamMembers(ctx context.Context, org, teamName string) ([]string, error) {
	var slug string
	opts := &github.ListOptions{PerPage: 100}
	for {
		var teams []*github.Team
		var resp *github.Response
		err := c.withRetry(ctx, "list teams", func() error {
			var err error
			teams, resp, err = c.gh.Teams.ListTeams(ctx, org, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("listing teams of %s: %w", org, err)
		}
		for _, t := range teams {
			if strings.EqualFold(t.GetName(), teamName) {
				slug = t.GetSlug()
			}
		}
		if slug != "" || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if slug == "" {
		util.Warn("Team %q not found in organization %s", teamName, org)
		return nil, nil
	}

	var logins []string
	memberOpts := &github.TeamListTeamMembersOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		var members []*github.User
		var resp *github.Response
		err := c.withRetry(ctx, "list team members", func() error {
			var err error
			members, resp, err = c.gh.Teams.ListTeamMembersBySlug(ctx, org, slug, memberOpts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("listing members of team %s: %w", teamName, err)
		}
		for _, m := range members {
			logins = append(logins, m.GetLogin())
		}
		if resp.NextPage == 0 {
			break
		}
		memberOpts.Page = resp.NextPage
	}

	sort.Strings(logins)
	return logins, nil
}

// IssueActivity collects issues of owner/repo active since start, dropping
// issues created at or after end, with per-author comment counts.
func (c *Client) IssueActivity(ctx context.Context, owner, repo string, start, end time.Time) ([]model.IssueActivity, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		Since:       start,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var activities []model.IssueActivity
	for {
		var issues []*github.Issue
		var resp *github.Response
		err := c.withRetry(ctx, "list issues", func() error {
			var err error
			issues, resp, err = c.gh.Issues.ListByRepo(ctx, owner, repo, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("listing issues of %s/%s: %w", owner, repo, err)
		}

		for _, issue := range issues {
			if !issue.GetCreatedAt().Time.Before(end) {
				continue
			}

			util.Info("Fetching comments for issue #%d", issue.GetNumber())
			byAuthor, err := c.commentsByAuthor(ctx, owner, repo, issue.GetNumber())
			if err != nil {
				util.Warn("Error fetching comments for issue #%d: %v", issue.GetNumber(), err)
				byAuthor = map[string]int{}
			}

			activity := model.IssueActivity{
				Number:           issue.GetNumber(),
				Title:            issue.GetTitle(),
				CreatedAt:        issue.GetCreatedAt().Time,
				Creator:          issue.GetUser().GetLogin(),
				State:            issue.GetState(),
				CommentsCount:    issue.GetComments(),
				CommentsByAuthor: byAuthor,
				URL:              issue.GetHTMLURL(),
			}
			if issue.ClosedAt != nil {
				closed := issue.GetClosedAt().Time
				activity.ClosedAt = &closed
			}
			for _, a := range issue.Assignees {
				activity.Assignees = append(activity.Assignees, a.GetLogin())
			}
			activities = append(activities, activity)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return activities, nil
}

func (c *Client) commentsByAuthor(ctx context.Context, owner, repo string, number int) (map[string]int, error) {
	byAuthor := map[string]int{}
	opts := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		var comments []*github.IssueComment
		var resp *github.Response
		err := c.withRetry(ctx, "list comments", func() error {
			var err error
			comments, resp, err = c.gh.Issues.ListComments(ctx, owner, repo, number, opts)
			return err
		})
		if err != nil {
			return byAuthor, err
		}
		for _, comment := range comments {
			author := "unknown"
			if comment.User != nil {
				author = comment.GetUser().GetLogin()
			}
			byAuthor[author]++
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return byAuthor, nil
}

// withRetry runs op with bounded exponential backoff on server errors and
// rate limiting. Other errors fail immediately.
func (c *Client) withRetry(ctx context.Context, what string, op func() error) error {
	var lastErr error
	for attempt := 0; attempt <= c.retryConf.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying %s (attempt %d/%d) after %v", what, attempt+1, c.retryConf.MaxAttempts, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := op(); err != nil {
			lastErr = err
			if !shouldRetry(err) {
				break
			}
			continue
		}
		return nil
	}
	return lastErr
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func shouldRetry(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return apiErr.Response.StatusCode >= 500
	}
	return false
}

// ParseOwnerRepo splits an owner/name repository reference.
func ParseOwnerRepo(full string) (string, string, error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("repository must be in owner/name form, got %q", full)
	}
	return owner, name, nil
}
