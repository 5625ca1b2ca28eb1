package activities

import (
	"fmt"

	"github.com/gobuffalo/packr"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/view"
)

type Activity struct {
	Key      string
	Name     string
	Type     string
	Duration string
	Calories string
	Date     string
}

func Rows(records []api.Record) []Activity {
	activities := make([]Activity, len(records))
	for i, record := range records {
		activities[i] = Activity{
			Key:      record.Key(i),
			Name:     record.Text(fmt.Sprintf("Activity %d", i+1), "name"),
			Type:     record.Text("General", "activity_type"),
			Duration: record.Number("duration"),
			Calories: record.Number("calories_burned"),
			Date:     record.Date("created_at"),
		}
	}
	return activities
}

func New() *view.View {
	return view.New(view.Config{
		Resource:  api.Activities,
		Title:     "Activities",
		Icon:      "fa-running",
		Templates: packr.NewBox("./templates"),
		Template:  "activities.html",
		Rows: func(records []api.Record) interface{} {
			return Rows(records)
		},
		Actions: []view.Action{
			{Name: "add", Label: "Add Activity", Icon: "fa-plus", Style: "btn-primary"},
		},
		RowActions: []view.Action{
			{Name: "view", Label: "View Details", Icon: "fa-eye", Style: "btn-outline-primary"},
			{Name: "edit", Label: "Edit", Icon: "fa-edit", Style: "btn-outline-secondary"},
			{Name: "delete", Label: "Delete", Icon: "fa-trash", Style: "btn-outline-danger"},
		},
		EmptyTitle: "No Activities Found",
		EmptyText:  "Start tracking your fitness journey by adding your first activity.",
		EmptyActions: []view.Action{
			{Name: "add-first", Label: "Add Your First Activity", Icon: "fa-plus", Style: "btn-primary"},
		},
	})
}
