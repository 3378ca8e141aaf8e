package dashboard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"quality-trends/src/model"
)

// Charts holds the pre-rendered PNG charts to embed in the page. Nil
// entries are omitted.
type Charts struct {
	Daily []byte
	Users []byte
}

// Generator renders the activity dashboard HTML page
type Generator struct {
	tmpl *template.Template
}

// NewGenerator creates a dashboard generator
func NewGenerator() (*Generator, error) {
	tmpl, err := template.New("dashboard").Funcs(template.FuncMap{
		"png": func(data []byte) template.URL {
			return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
		},
		"date": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"dateOrOpen": func(t *time.Time) string {
			if t == nil {
				return "Not closed"
			}
			return t.Format("2006-01-02")
		},
	}).Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard template: %w", err)
	}
	return &Generator{tmpl: tmpl}, nil
}

type pageData struct {
	Snapshot     model.ActivitySnapshot
	Users        []UserActivity
	Charts       Charts
	ActivePeople int
	GeneratedAt  time.Time
}

// Render produces the full HTML report for a snapshot.
func (g *Generator) Render(snapshot model.ActivitySnapshot, users []UserActivity, charts Charts) ([]byte, error) {
	data := pageData{
		Snapshot:     snapshot,
		Users:        users,
		Charts:       charts,
		ActivePeople: ActivePeople(snapshot.Issues),
		GeneratedAt:  time.Now().UTC(),
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering dashboard: %w", err)
	}
	return buf.Bytes(), nil
}
