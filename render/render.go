package render

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/flosch/pongo2"
	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Context = pongo2.Context

type ContextFunc func(r *http.Request, ctx Context)

type Render struct {
	Log logrus.FieldLogger

	set          *pongo2.TemplateSet
	loader       *boxLoader
	contextFuncs []ContextFunc
}

func New(isProd bool) *Render {
	loader := &boxLoader{}
	set := pongo2.NewSet("octofit", loader)
	set.Debug = !isProd

	r := &Render{
		Log:    logrus.StandardLogger(),
		set:    set,
		loader: loader,
	}
	r.AddTemplates(packr.NewBox("./templates"))
	return r
}

// AddTemplates makes all templates in box available by name. Later boxes
// shadow earlier ones.
func (r *Render) AddTemplates(box packr.Box) {
	r.loader.add(box)
}

func (r *Render) AddContextFunc(f ContextFunc) {
	r.contextFuncs = append(r.contextFuncs, f)
}

// Execute renders template name into a string.
func (r *Render) Execute(req *http.Request, name string, ctx Context) (string, error) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return "", errors.Wrapf(err, "could not load template %s", name)
	}

	full := Context{}
	if req != nil {
		full["path"] = req.URL.Path
		for _, f := range r.contextFuncs {
			f(req, full)
		}
	}
	full.Update(ctx)

	out, err := tpl.Execute(full)
	if err != nil {
		return "", errors.Wrapf(err, "could not execute template %s", name)
	}
	return out, nil
}

func (r *Render) Template(w http.ResponseWriter, req *http.Request, name string, ctx Context) {
	r.TemplateStatus(w, req, http.StatusOK, name, ctx)
}

func (r *Render) TemplateStatus(w http.ResponseWriter, req *http.Request, status int, name string, ctx Context) {
	out, err := r.Execute(req, name, ctx)
	if err != nil {
		r.Error(w, req, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, out)
}

func (r *Render) Error(w http.ResponseWriter, req *http.Request, err error) {
	r.Log.WithError(err).WithField("path", req.URL.Path).Error("request failed")

	out, tplErr := r.Execute(req, "error.html", Context{"error": err.Error()})
	if tplErr != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, out)
}

type boxLoader struct {
	mu    sync.RWMutex
	boxes []packr.Box
}

func (l *boxLoader) add(box packr.Box) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.boxes = append(l.boxes, box)
}

func (l *boxLoader) Abs(base, name string) string {
	return name
}

func (l *boxLoader) Get(path string) (io.Reader, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.boxes) - 1; i >= 0; i-- {
		if !l.boxes[i].Has(path) {
			continue
		}
		data, err := l.boxes[i].Find(path)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
	return nil, errors.Errorf("template %s not found", path)
}
