package view

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/gobuffalo/packr"
	"github.com/sirupsen/logrus"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/app"
	"github.com/matematik7/octofit-go/render"
)

// Templates holds the shared page and list layouts.
var Templates = packr.NewBox("./templates")

type Lister interface {
	List(ctx context.Context, res api.Resource) ([]api.Record, error)
}

type Config struct {
	Resource api.Resource
	Title    string
	// Noun is used in loading and error messages, e.g. "activities".
	Noun   string
	Icon   string
	Accent string

	Templates packr.Box
	Template  string
	Rows      func(records []api.Record) interface{}
	// Cards is how many leading rows get a card, zero for all of them.
	Cards int

	Actions      []Action
	CardActions  []Action
	RowActions   []Action
	EmptyTitle   string
	EmptyText    string
	EmptyActions []Action
}

// View fetches one backend list per request and renders it.
type View struct {
	Config

	lister Lister
	render *render.Render
	log    logrus.FieldLogger
}

func New(cfg Config) *View {
	if cfg.Noun == "" {
		cfg.Noun = string(cfg.Resource)
	}
	if cfg.Accent == "" {
		cfg.Accent = "primary"
	}
	return &View{Config: cfg}
}

func (v *View) Configure(a *app.App) error {
	v.lister = a.Client
	v.render = a.Render
	v.log = a.Log.WithField("view", v.Resource)

	v.render.AddTemplates(Templates)
	v.render.AddTemplates(v.Templates)

	return nil
}

func (v *View) Name() string {
	return v.Title
}

func (v *View) Path() string {
	return "/" + string(v.Resource)
}

func (v *View) ServeMux() http.Handler {
	router := chi.NewRouter()

	router.Get("/", v.PageHandler)
	router.Get("/list", v.ListHandler)
	router.Post("/actions/{action}", v.ActionHandler)

	return router
}

// Load performs the single backend read and settles a fresh state.
func (v *View) Load(ctx context.Context) *State {
	state := NewState()

	records, err := v.lister.List(ctx, v.Resource)
	if err != nil {
		if ctx.Err() != nil {
			v.log.WithError(err).Debug("request gone before list arrived")
		}
		state.Fail(err)
		return state
	}

	state.Resolve(records)
	return state
}

func (v *View) PageHandler(w http.ResponseWriter, r *http.Request) {
	v.render.Template(w, r, "page.html", render.Context{
		"view":  v,
		"state": NewState(),
	})
}

func (v *View) ListHandler(w http.ResponseWriter, r *http.Request) {
	state := v.Load(r.Context())

	context := render.Context{
		"view":  v,
		"state": state,
		"cards": v.Cards,
	}
	if state.IsLoaded() && v.Rows != nil {
		context["rows"] = v.Rows(state.Records())
	}

	v.render.Template(w, r, v.Template, context)
}

func (v *View) ActionHandler(w http.ResponseWriter, r *http.Request) {
	action, ok := v.Action(chi.URLParam(r, "action"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	err := action.Invoke(NewState())
	http.Error(w, err.Error(), http.StatusNotImplemented)
}

// Action looks up a control by name across all placements.
func (v *View) Action(name string) (Action, bool) {
	groups := [][]Action{v.Actions, v.CardActions, v.RowActions, v.EmptyActions}
	for _, group := range groups {
		for _, action := range group {
			if action.Name == name {
				return action, true
			}
		}
	}
	return Action{}, false
}
