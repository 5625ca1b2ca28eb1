package api

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	BackendPort = 8000
	CloudDomain = "app.github.dev"
	LocalOrigin = "http://localhost:8000"
)

type Resource string

const (
	Activities  Resource = "activities"
	Leaderboard Resource = "leaderboard"
	Teams       Resource = "teams"
	Users       Resource = "users"
	Workouts    Resource = "workouts"
)

var Resources = []Resource{Activities, Leaderboard, Teams, Users, Workouts}

func ParseResource(name string) (Resource, error) {
	name = strings.Trim(strings.ToLower(name), "/ ")
	for _, res := range Resources {
		if string(res) == name {
			return res, nil
		}
	}
	return "", errors.Errorf("unknown resource %q", name)
}

// Resolver builds backend URLs. Workspace is interpolated as-is.
type Resolver struct {
	Workspace string
	Override  string
}

func NewResolver(workspace string) Resolver {
	return Resolver{Workspace: workspace}
}

func (r Resolver) Origin() string {
	if r.Override != "" {
		return strings.TrimRight(r.Override, "/")
	}
	if r.Workspace != "" {
		return fmt.Sprintf("https://%s-%d.%s", r.Workspace, BackendPort, CloudDomain)
	}
	return LocalOrigin
}

func (r Resolver) URL(res Resource) string {
	return fmt.Sprintf("%s/api/%s/", r.Origin(), res)
}
