package dashboard

import (
	"sort"
	"time"

	"quality-trends/src/model"
)

// DailyActivity is one day of tracker activity.
type DailyActivity struct {
	Date          time.Time
	IssuesCreated int
	IssuesClosed  int
	// Comments is fractional: comment timestamps are not collected, so an
	// issue's comments are spread evenly over its open days.
	Comments    float64
	ActiveUsers int
}

// UserActivity aggregates one login's involvement over the period.
type UserActivity struct {
	User     string
	Assigned int
	Closed   int
	Comments int
	IsDevOps bool
}

// Total is the overall activity count used for ranking users.
func (u UserActivity) Total() int {
	return u.Assigned + u.Closed + u.Comments
}

// Aggregate derives the daily and per-user activity series from a
// snapshot. Days span from the earliest issue creation to the latest
// creation or close date.
func Aggregate(snapshot model.ActivitySnapshot) ([]DailyActivity, []UserActivity) {
	if len(snapshot.Issues) == 0 {
		return nil, nil
	}

	first, last := span(snapshot.Issues)

	var daily []DailyActivity
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		entry := DailyActivity{Date: day}
		active := map[string]bool{}

		for _, issue := range snapshot.Issues {
			created := dateOf(issue.CreatedAt)
			if created.Equal(day) {
				entry.IssuesCreated++
				active[issue.Creator] = true
				for _, a := range issue.Assignees {
					active[a] = true
				}
			}

			var closed time.Time
			if issue.ClosedAt != nil {
				closed = dateOf(*issue.ClosedAt)
				if closed.Equal(day) {
					entry.IssuesClosed++
					active[issue.Creator] = true
				}
			} else {
				closed = dateOf(time.Now().UTC())
			}

			// Spread the issue's comments evenly across its open days.
			if !day.Before(created) && !day.After(closed) {
				openDays := closed.Sub(created).Hours()/24 + 1
				if openDays < 1 {
					openDays = 1
				}
				for author, count := range issue.CommentsByAuthor {
					entry.Comments += float64(count) / openDays
					active[author] = true
				}
			}
		}

		delete(active, "")
		entry.ActiveUsers = len(active)
		daily = append(daily, entry)
	}

	return daily, userActivity(snapshot)
}

func userActivity(snapshot model.ActivitySnapshot) []UserActivity {
	devops := map[string]bool{}
	for _, m := range snapshot.Metadata.DevOpsTeamMembers {
		devops[m] = true
	}

	byUser := map[string]*UserActivity{}
	get := func(login string) *UserActivity {
		if login == "" {
			login = "unknown"
		}
		u, ok := byUser[login]
		if !ok {
			u = &UserActivity{User: login, IsDevOps: devops[login]}
			byUser[login] = u
		}
		return u
	}

	for _, issue := range snapshot.Issues {
		get(issue.Creator) // ensure creators appear even when idle
		for _, assignee := range issue.Assignees {
			get(assignee).Assigned++
		}
		if issue.ClosedAt != nil {
			get(issue.Creator).Closed++
		}
		for author, count := range issue.CommentsByAuthor {
			get(author).Comments += count
		}
	}

	users := make([]UserActivity, 0, len(byUser))
	for _, u := range byUser {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Total() != users[j].Total() {
			return users[i].Total() > users[j].Total()
		}
		return users[i].User < users[j].User
	})
	return users
}

// ActivePeople counts the distinct participants across all issues.
func ActivePeople(issues []model.IssueActivity) int {
	seen := map[string]bool{}
	for _, issue := range issues {
		for _, login := range issue.Participants() {
			seen[login] = true
		}
	}
	return len(seen)
}

func span(issues []model.IssueActivity) (time.Time, time.Time) {
	first := dateOf(issues[0].CreatedAt)
	last := first
	for _, issue := range issues {
		created := dateOf(issue.CreatedAt)
		if created.Before(first) {
			first = created
		}
		if created.After(last) {
			last = created
		}
		if issue.ClosedAt != nil {
			closed := dateOf(*issue.ClosedAt)
			if closed.After(last) {
				last = closed
			}
		}
	}
	return first, last
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
