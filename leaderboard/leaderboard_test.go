package leaderboard

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/view/viewtest"
)

func TestMedalFor(t *testing.T) {
	assert.Equal(t, Gold, MedalFor(0))
	assert.Equal(t, Silver, MedalFor(1))
	assert.Equal(t, Bronze, MedalFor(2))
	assert.Equal(t, Plain, MedalFor(3))
	assert.Equal(t, Plain, MedalFor(99))

	assert.Equal(t, "bg-warning text-dark", Gold.Badge())
	assert.Equal(t, "bg-secondary", Silver.Badge())
	assert.Equal(t, "bg-danger", Bronze.Badge())
	assert.Equal(t, "bg-primary", Plain.Badge())
}

func TestEntriesKeepOrder(t *testing.T) {
	// points ascending on purpose: position alone decides the medal
	records := []api.Record{
		{"user_name": "low", "total_points": 10.0},
		{"name": "mid", "points": 50.0},
		{"user_name": "high", "total_points": 900.0},
		{"user_name": "top", "total_points": 1000.0},
	}

	entries := Entries(records)
	require.Len(t, entries, 4)

	names := []string{}
	medals := []string{}
	for _, e := range entries {
		names = append(names, e.Name)
		medals = append(medals, e.Medal)
	}
	assert.Equal(t, []string{"low", "mid", "high", "top"}, names)
	assert.Equal(t, []string{"gold", "silver", "bronze", "plain"}, medals)
	assert.Equal(t, 4, entries[3].Rank)
	assert.False(t, entries[3].Highlight)
}

func TestEntriesFallbacks(t *testing.T) {
	entries := Entries([]api.Record{
		{"team": "DC", "points": 120.0, "activities": 4.0},
		{"team_name": "Marvel", "team": "ignored", "total_points": 0.0, "points": 150.0},
		{},
	})

	assert.Equal(t, "Unknown", entries[0].Name)
	assert.Equal(t, "DC", entries[0].Team)
	assert.Equal(t, "120", entries[0].Points)
	assert.Equal(t, "4", entries[0].Activities)

	assert.Equal(t, "Marvel", entries[1].Team)
	assert.Equal(t, "150", entries[1].Points)

	assert.Equal(t, "No Team", entries[2].Team)
	assert.Equal(t, "0", entries[2].Points)
	assert.Equal(t, "0", entries[2].Activities)
	assert.Equal(t, "2", entries[2].Key)
}

func TestListHandler(t *testing.T) {
	body := viewtest.List(t, New(), http.StatusOK, `{"count":5,"results":[
		{"id":"a","user_name":"Tony"},
		{"id":"b","user_name":"Steve"},
		{"id":"c","user_name":"Clark"},
		{"id":"d","user_name":"Diana"},
		{"id":"e","user_name":"Bruce"}
	]}`)

	assert.Equal(t, PodiumSize, strings.Count(body, "podium-card"))
	assert.Equal(t, 5, strings.Count(body, "<tr data-key="))
	assert.Contains(t, body, "Complete Rankings (5)")

	medals := regexp.MustCompile(`badge [^"]*" data-medal="(\w+)"`).FindAllStringSubmatch(body, -1)
	got := []string{}
	for _, m := range medals {
		got = append(got, m[1])
	}
	assert.Equal(t, []string{"gold", "silver", "bronze", "plain", "plain"}, got)

	order := []string{"Tony", "Steve", "Clark", "Diana", "Bruce"}
	table := body[strings.Index(body, "<table"):]
	last := -1
	for _, name := range order {
		i := strings.Index(table, name)
		assert.Greater(t, i, last, name)
		last = i
	}
}

func TestListHandlerEmpty(t *testing.T) {
	body := viewtest.List(t, New(), http.StatusOK, `[]`)

	assert.Contains(t, body, "No Leaderboard Data")
	assert.Contains(t, body, "Start Your Journey")
	assert.NotContains(t, body, "Top Performers")
}
