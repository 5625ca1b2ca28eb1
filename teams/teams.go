package teams

import (
	"fmt"

	"github.com/gobuffalo/packr"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/view"
)

type Team struct {
	Key         string
	Name        string
	Description string
	Members     string
	Points      string
	Captain     string
	Created     string
}

func Rows(records []api.Record) []Team {
	teams := make([]Team, len(records))
	for i, record := range records {
		teams[i] = Team{
			Key:         record.Key(i),
			Name:        record.Text(fmt.Sprintf("Team %d", i+1), "name"),
			Description: record.Text("No description available", "description"),
			Members:     record.Number("member_count"),
			Points:      record.Number("total_points"),
			Captain:     record.Text(api.NotAvailable, "captain"),
			Created:     record.Date("created_at"),
		}
	}
	return teams
}

func New() *view.View {
	return view.New(view.Config{
		Resource:  api.Teams,
		Title:     "Teams",
		Icon:      "fa-users",
		Accent:    "success",
		Templates: packr.NewBox("./templates"),
		Template:  "teams.html",
		Rows: func(records []api.Record) interface{} {
			return Rows(records)
		},
		Actions: []view.Action{
			{Name: "create", Label: "Create Team", Icon: "fa-plus-circle", Style: "btn-success"},
		},
		CardActions: []view.Action{
			{Name: "view", Label: "View", Icon: "fa-eye", Style: "btn-outline-success"},
			{Name: "join", Label: "Join", Icon: "fa-user-plus", Style: "btn-success"},
		},
		RowActions: []view.Action{
			{Name: "view-team", Label: "View Team", Icon: "fa-eye", Style: "btn-outline-primary"},
			{Name: "join-team", Label: "Join Team", Icon: "fa-user-plus", Style: "btn-outline-success"},
			{Name: "stats", Label: "Team Stats", Icon: "fa-chart-bar", Style: "btn-outline-info"},
		},
		EmptyTitle: "No Teams Found",
		EmptyText:  "Create or join a team to start competing with others!",
		EmptyActions: []view.Action{
			{Name: "create-first", Label: "Create Team", Icon: "fa-plus-circle", Style: "btn-success"},
			{Name: "find", Label: "Find Teams", Icon: "fa-search", Style: "btn-outline-success"},
		},
	})
}
