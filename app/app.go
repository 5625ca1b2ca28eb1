package app

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/config"
	"github.com/matematik7/octofit-go/metrics"
	"github.com/matematik7/octofit-go/render"
)

// Controller is one mounted section of the site.
type Controller interface {
	Configure(app *App) error
	Name() string
	Path() string
	ServeMux() http.Handler
}

type App struct {
	Config  config.Config
	Log     *logrus.Logger
	Render  *render.Render
	Client  *api.Client
	Metrics *metrics.Metrics

	Controllers []Controller
}

func New(cfg config.Config) (*App, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	resolver := api.NewResolver(cfg.CodespaceName)
	resolver.Override = cfg.APIOrigin

	client := api.NewClient(resolver, cfg.FetchTimeout)
	client.Log = log

	m := metrics.New()
	client.Observer = m

	renderer := render.New(cfg.Prod)
	renderer.Log = log
	renderer.AddTemplates(packr.NewBox("./templates"))

	a := &App{
		Config:  cfg,
		Log:     log,
		Render:  renderer,
		Client:  client,
		Metrics: m,
	}
	renderer.AddContextFunc(a.navContext)

	return a, nil
}

func (a *App) Configure() error {
	for _, c := range a.Controllers {
		if err := c.Configure(a); err != nil {
			return errors.Wrapf(err, "could not configure %s", c.Name())
		}
	}

	a.Log.WithField("origin", a.Client.Resolver.Origin()).Info("backend resolved")
	return nil
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/", a.IndexHandler)
	r.Method(http.MethodGet, "/metrics", a.Metrics.Handler())

	for _, c := range a.Controllers {
		r.Mount(c.Path(), c.ServeMux())
	}

	return r
}

type link struct {
	Name string
	Path string
}

func (a *App) links() []link {
	links := make([]link, len(a.Controllers))
	for i, c := range a.Controllers {
		links[i] = link{Name: c.Name(), Path: c.Path()}
	}
	return links
}

// navContext exposes the mounted views to every page for the navbar.
func (a *App) navContext(r *http.Request, ctx render.Context) {
	ctx["nav"] = a.links()
}

func (a *App) IndexHandler(w http.ResponseWriter, r *http.Request) {
	a.Render.Template(w, r, "index.html", render.Context{
		"links": a.links(),
	})
}
