package workouts

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/view/viewtest"
)

func TestDifficultyOf(t *testing.T) {
	tests := []struct {
		value interface{}
		label string
		badge string
	}{
		{"Easy", "Easy", "bg-success"},
		{"MEDIUM", "MEDIUM", "bg-warning text-dark"},
		{"hard", "hard", "bg-danger"},
		{"brutal", "brutal", "bg-secondary"},
		{nil, "N/A", "bg-secondary"},
		{"", "N/A", "bg-secondary"},
	}

	for _, tt := range tests {
		d := DifficultyOf(api.Record{"difficulty": tt.value})
		assert.Equal(t, tt.label, d.Label, "%v", tt.value)
		assert.Equal(t, tt.badge, d.Badge, "%v", tt.value)
	}
}

func TestRows(t *testing.T) {
	long := strings.Repeat("x", 120)
	rows := Rows([]api.Record{
		{"title": "Pushups", "type": "Strength", "description": long},
		{"name": "Situps", "title": "ignored", "workout_type": "Core", "description": "Do 50 situps"},
		{},
	})
	require.Len(t, rows, 3)

	assert.Equal(t, "Pushups", rows[0].Name)
	assert.Equal(t, "Strength", rows[0].Type)
	assert.Equal(t, strings.Repeat("x", 100)+"...", rows[0].Summary)
	assert.Equal(t, strings.Repeat("x", 50)+"...", rows[0].TableSummary)
	assert.Equal(t, long, rows[0].Description)

	assert.Equal(t, "Situps", rows[1].Name)
	assert.Equal(t, "Core", rows[1].Type)
	assert.Equal(t, "Do 50 situps", rows[1].Summary)
	assert.Equal(t, "Do 50 situps", rows[1].TableSummary)

	assert.Equal(t, "Workout 3", rows[2].Name)
	assert.Equal(t, "General", rows[2].Type)
	assert.Equal(t, "0", rows[2].Duration)
	assert.Empty(t, rows[2].Description)
	assert.Equal(t, "N/A", rows[2].Created)
}

func TestListHandlerRun(t *testing.T) {
	body := viewtest.List(t, New(), http.StatusOK, `[{"name":"Run","duration":30,"difficulty":"Easy"}]`)

	assert.Equal(t, 1, strings.Count(body, "workout-card"))
	assert.Equal(t, 1, strings.Count(body, "<tr data-key="))
	assert.Equal(t, 2, strings.Count(body, "Run</"))
	assert.Contains(t, body, "30 min")
	assert.Contains(t, body, `<span class="badge bg-success">Easy</span>`)
	assert.Contains(t, body, "All Workouts (1)")
}

func TestListHandlerTableSummary(t *testing.T) {
	description := strings.Repeat("y", 70)
	body := viewtest.List(t, New(), http.StatusOK, `[{"name":"Row","description":"`+description+`"}]`)

	assert.Contains(t, body, `<small class="text-muted row-summary">`+strings.Repeat("y", 50)+"...</small>")
	assert.Contains(t, body, `<p class="card-text text-muted mb-3">`+description+"</p>")
}

func TestListHandlerEmpty(t *testing.T) {
	body := viewtest.List(t, New(), http.StatusOK, `{"results":null,"count":0}`)

	assert.Contains(t, body, "No Workouts Found")
	assert.Contains(t, body, "Browse Library")
	assert.NotContains(t, body, "<table")
}
