package users

import (
	"fmt"

	"github.com/gobuffalo/packr"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/view"
)

// GridSize is how many users get a card above the table.
const GridSize = 6

type User struct {
	Key        string
	Name       string
	Email      string
	CardEmail  string
	Team       string
	HasTeam    bool
	Points     string
	Activities string
	Joined     string
}

func Rows(records []api.Record) []User {
	users := make([]User, len(records))
	for i, record := range records {
		team, hasTeam := record.Value("team_name", "team")

		users[i] = User{
			Key:        record.Key(i),
			Name:       record.Text(fmt.Sprintf("User %d", i+1), "name", "username"),
			Email:      record.Text(api.NotAvailable, "email"),
			CardEmail:  record.Text("No email", "email"),
			Team:       "No Team",
			HasTeam:    hasTeam,
			Points:     record.Number("total_points"),
			Activities: record.Number("activity_count"),
			Joined:     record.Date("date_joined"),
		}
		if hasTeam {
			users[i].Team = api.Display(team)
		}
	}
	return users
}

func New() *view.View {
	return view.New(view.Config{
		Resource:  api.Users,
		Title:     "Users",
		Icon:      "fa-user-friends",
		Accent:    "info",
		Templates: packr.NewBox("./templates"),
		Template:  "users.html",
		Rows: func(records []api.Record) interface{} {
			return Rows(records)
		},
		Cards:   GridSize,
		Actions: []view.Action{
			{Name: "invite", Label: "Invite User", Icon: "fa-user-plus", Style: "btn-info"},
		},
		CardActions: []view.Action{
			{Name: "view", Label: "View", Icon: "fa-eye", Style: "btn-outline-info btn-sm"},
			{Name: "message", Label: "Message", Icon: "fa-envelope", Style: "btn-outline-primary btn-sm"},
			{Name: "follow", Label: "Follow", Icon: "fa-user-plus", Style: "btn-outline-success btn-sm"},
		},
		RowActions: []view.Action{
			{Name: "profile", Label: "View Profile", Icon: "fa-eye", Style: "btn-outline-primary"},
			{Name: "send-message", Label: "Send Message", Icon: "fa-envelope", Style: "btn-outline-success"},
			{Name: "activities", Label: "View Activities", Icon: "fa-list", Style: "btn-outline-info"},
		},
		EmptyTitle: "No Users Found",
		EmptyText:  "Invite friends to join your fitness community!",
		EmptyActions: []view.Action{
			{Name: "invite-first", Label: "Invite Your First User", Icon: "fa-user-plus", Style: "btn-info"},
		},
	})
}
