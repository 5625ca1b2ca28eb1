package leaderboard

import (
	"github.com/gobuffalo/packr"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/view"
)

// PodiumSize is how many leading entries get a card.
const PodiumSize = 3

type Medal int

const (
	Gold Medal = iota
	Silver
	Bronze
	Plain
)

// MedalFor depends only on the position in the backend's order.
func MedalFor(index int) Medal {
	if index >= 0 && index < int(Plain) {
		return Medal(index)
	}
	return Plain
}

func (m Medal) String() string {
	return [...]string{"gold", "silver", "bronze", "plain"}[m]
}

func (m Medal) Badge() string {
	return [...]string{"bg-warning text-dark", "bg-secondary", "bg-danger", "bg-primary"}[m]
}

func (m Medal) Icon() string {
	return [...]string{"fa-crown", "fa-medal", "fa-award", "fa-user"}[m]
}

func (m Medal) Color() string {
	return [...]string{"warning", "secondary", "danger", "primary"}[m]
}

type Entry struct {
	Key        string
	Rank       int
	Name       string
	Team       string
	Points     string
	Activities string

	Medal     string
	Badge     string
	Icon      string
	Color     string
	Highlight bool
}

// Entries keeps the backend order; ranking is the backend's job.
func Entries(records []api.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, record := range records {
		medal := MedalFor(i)
		entries[i] = Entry{
			Key:        record.Key(i),
			Rank:       i + 1,
			Name:       record.Text("Unknown", "user_name", "name"),
			Team:       record.Text("No Team", "team_name", "team"),
			Points:     record.Number("total_points", "points"),
			Activities: record.Number("total_activities", "activities"),
			Medal:      medal.String(),
			Badge:      medal.Badge(),
			Icon:       medal.Icon(),
			Color:      medal.Color(),
			Highlight:  i < PodiumSize,
		}
	}
	return entries
}

func New() *view.View {
	return view.New(view.Config{
		Resource:  api.Leaderboard,
		Title:     "Leaderboard",
		Icon:      "fa-trophy",
		Accent:    "warning",
		Templates: packr.NewBox("./templates"),
		Template:  "leaderboard.html",
		Rows: func(records []api.Record) interface{} {
			return Entries(records)
		},
		Cards:   PodiumSize,
		Actions: []view.Action{
			{Name: "all-time", Label: "All Time", Style: "btn-outline-primary active"},
			{Name: "this-month", Label: "This Month", Style: "btn-outline-primary"},
			{Name: "this-week", Label: "This Week", Style: "btn-outline-primary"},
		},
		RowActions: []view.Action{
			{Name: "profile", Label: "View Profile", Icon: "fa-eye", Style: "btn-outline-primary"},
			{Name: "activities", Label: "View Activities", Icon: "fa-chart-line", Style: "btn-outline-success"},
		},
		EmptyTitle: "No Leaderboard Data",
		EmptyText:  "Complete some activities to see your ranking!",
		EmptyActions: []view.Action{
			{Name: "start", Label: "Start Your Journey", Icon: "fa-plus", Style: "btn-primary"},
		},
	})
}
