package dashboard

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Issue Activity Report - {{.Snapshot.Metadata.Repository}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f8f9fa; color: #212529; }
.container { max-width: 1100px; margin: 0 auto; padding: 24px; }
h1 { font-size: 1.6rem; }
.period { color: #6c757d; margin-bottom: 24px; }
.cards { display: flex; flex-wrap: wrap; gap: 16px; margin-bottom: 32px; }
.card { background: #fff; border: 1px solid #dee2e6; border-radius: 8px; padding: 16px 24px; min-width: 140px; text-align: center; }
.card .value { font-size: 1.8rem; font-weight: 700; }
.card .label { color: #6c757d; font-size: 0.85rem; }
.chart { background: #fff; border: 1px solid #dee2e6; border-radius: 8px; padding: 16px; margin-bottom: 32px; text-align: center; }
.chart img { max-width: 100%; }
table { width: 100%; border-collapse: collapse; background: #fff; margin-bottom: 32px; }
th, td { border: 1px solid #dee2e6; padding: 8px 12px; text-align: left; font-size: 0.9rem; }
th { background: #e9ecef; }
tr.devops td { background: #eaf6ec; }
.state-open { color: #1a7f37; font-weight: 600; }
.state-closed { color: #8250df; font-weight: 600; }
footer { color: #6c757d; font-size: 0.8rem; margin: 24px 0; }
</style>
</head>
<body>
<div class="container">
<h1>Issue Activity Report &mdash; {{.Snapshot.Metadata.Repository}}</h1>
<div class="period">{{.Snapshot.Metadata.MonthName}} {{.Snapshot.Metadata.Year}}{{if .Snapshot.Metadata.Week}}, week {{.Snapshot.Metadata.Week}}{{end}}
({{date .Snapshot.Metadata.PeriodStart}} to {{date .Snapshot.Metadata.PeriodEnd}})</div>

<div class="cards">
<div class="card"><div class="value">{{.Snapshot.Summary.TotalIssues}}</div><div class="label">Total Issues</div></div>
<div class="card"><div class="value">{{.Snapshot.Summary.OpenIssues}}</div><div class="label">Open</div></div>
<div class="card"><div class="value">{{.Snapshot.Summary.ClosedIssues}}</div><div class="label">Closed</div></div>
<div class="card"><div class="value">{{.Snapshot.Summary.TotalComments}}</div><div class="label">Comments</div></div>
<div class="card"><div class="value">{{.ActivePeople}}</div><div class="label">Active People</div></div>
</div>

{{if .Charts.Daily}}
<div class="chart"><img src="{{png .Charts.Daily}}" alt="Daily activity"></div>
{{end}}
{{if .Charts.Users}}
<div class="chart"><img src="{{png .Charts.Users}}" alt="Activity by user"></div>
{{end}}

<h2>Activity by User</h2>
<table>
<tr><th>User</th><th>Assigned</th><th>Closed</th><th>Comments</th><th>Total</th></tr>
{{range .Users}}
<tr{{if .IsDevOps}} class="devops"{{end}}><td>{{.User}}</td><td>{{.Assigned}}</td><td>{{.Closed}}</td><td>{{.Comments}}</td><td>{{.Total}}</td></tr>
{{end}}
</table>

<h2>Issues</h2>
<table>
<tr><th>#</th><th>Title</th><th>State</th><th>Assignees</th><th>Created</th><th>Closed</th><th>Comments</th></tr>
{{range .Snapshot.Issues}}
<tr>
<td><a href="{{.URL}}">{{.Number}}</a></td>
<td>{{.Title}}</td>
<td class="state-{{.State}}">{{.State}}</td>
<td>{{range $i, $a := .Assignees}}{{if $i}}, {{end}}{{$a}}{{else}}None{{end}}</td>
<td>{{date .CreatedAt}}</td>
<td>{{dateOrOpen .ClosedAt}}</td>
<td>{{.CommentsCount}}</td>
</tr>
{{end}}
</table>

<footer>Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 UTC"}}</footer>
</div>
</body>
</html>
`
