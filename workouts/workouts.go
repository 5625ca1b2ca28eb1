package workouts

import (
	"fmt"
	"strings"

	"github.com/gobuffalo/packr"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/render"
	"github.com/matematik7/octofit-go/view"
)

// Description cuts for workout cards and table rows.
const (
	SummaryLength      = 100
	TableSummaryLength = 50
)

type Difficulty struct {
	Label string
	Badge string
	Icon  string
}

// DifficultyOf maps the backend difficulty to its badge, ignoring case.
func DifficultyOf(record api.Record) Difficulty {
	label := record.Text(api.NotAvailable, "difficulty")

	d := Difficulty{Label: label, Badge: "bg-secondary", Icon: "fa-circle"}
	if _, ok := record.Value("difficulty"); !ok {
		return d
	}

	switch strings.ToLower(label) {
	case "easy":
		d.Badge, d.Icon = "bg-success", "fa-leaf"
	case "medium":
		d.Badge, d.Icon = "bg-warning text-dark", "fa-fire"
	case "hard":
		d.Badge, d.Icon = "bg-danger", "fa-bolt"
	}
	return d
}

type Workout struct {
	Key          string
	Name         string
	Type         string
	Duration     string
	Difficulty   Difficulty
	Description  string
	Summary      string
	TableSummary string
	Created      string
}

func Rows(records []api.Record) []Workout {
	workouts := make([]Workout, len(records))
	for i, record := range records {
		description := record.Text("", "description")
		workouts[i] = Workout{
			Key:          record.Key(i),
			Name:         record.Text(fmt.Sprintf("Workout %d", i+1), "name", "title"),
			Type:         record.Text("General", "workout_type", "type"),
			Duration:     record.Number("duration"),
			Difficulty:   DifficultyOf(record),
			Description:  description,
			Summary:      render.Ellipsis(description, SummaryLength),
			TableSummary: render.Ellipsis(description, TableSummaryLength),
			Created:      record.Date("created_at"),
		}
	}
	return workouts
}

func New() *view.View {
	return view.New(view.Config{
		Resource:  api.Workouts,
		Title:     "Workouts",
		Icon:      "fa-dumbbell",
		Accent:    "danger",
		Templates: packr.NewBox("./templates"),
		Template:  "workouts.html",
		Rows: func(records []api.Record) interface{} {
			return Rows(records)
		},
		Actions: []view.Action{
			{Name: "filter-all", Label: "All", Style: "btn-outline-primary active"},
			{Name: "filter-easy", Label: "Easy", Style: "btn-outline-success"},
			{Name: "filter-medium", Label: "Medium", Style: "btn-outline-warning"},
			{Name: "filter-hard", Label: "Hard", Style: "btn-outline-danger"},
			{Name: "create", Label: "Create Workout", Icon: "fa-plus", Style: "btn-danger"},
		},
		CardActions: []view.Action{
			{Name: "view", Label: "View", Icon: "fa-eye", Style: "btn-outline-danger"},
			{Name: "start", Label: "Start", Icon: "fa-play", Style: "btn-danger"},
		},
		RowActions: []view.Action{
			{Name: "details", Label: "View Details", Icon: "fa-eye", Style: "btn-outline-primary"},
			{Name: "start-workout", Label: "Start Workout", Icon: "fa-play", Style: "btn-outline-success"},
			{Name: "edit", Label: "Edit", Icon: "fa-edit", Style: "btn-outline-secondary"},
			{Name: "favorite", Label: "Favorite", Icon: "fa-heart", Style: "btn-outline-warning"},
		},
		EmptyTitle: "No Workouts Found",
		EmptyText:  "Create custom workouts or browse our recommended routines!",
		EmptyActions: []view.Action{
			{Name: "create-first", Label: "Create Workout", Icon: "fa-plus", Style: "btn-danger"},
			{Name: "browse", Label: "Browse Library", Icon: "fa-search", Style: "btn-outline-danger"},
		},
	})
}
