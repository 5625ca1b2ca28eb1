package render

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestRender() *Render {
	r := New(false)
	r.AddTemplates(packr.NewBox("./testdata"))
	return r
}

func TestTemplate(t *testing.T) {
	r := newTestRender()
	r.AddContextFunc(func(req *http.Request, ctx Context) {
		ctx["name"] = "overridden"
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	r.Template(rr, req, "hello.html", Context{"name": "octocat", "text": "abcdefgh"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Hello</title>")
	assert.Contains(t, body, "<p>octocat at /hello</p>")
	assert.Contains(t, body, "<p>abcde...</p>")
}

func TestTemplateMissing(t *testing.T) {
	r := newTestRender()

	rr := httptest.NewRecorder()
	r.Template(rr, httptest.NewRequest(http.MethodGet, "/", nil), "missing.html", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing.html")
}

func TestTemplateBroken(t *testing.T) {
	r := newTestRender()

	rr := httptest.NewRecorder()
	r.Template(rr, httptest.NewRequest(http.MethodGet, "/", nil), "broken.html", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "alert-danger")
}

func TestError(t *testing.T) {
	r := newTestRender()

	rr := httptest.NewRecorder()
	r.Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "boom")
}

func TestEllipsis(t *testing.T) {
	assert.Equal(t, "short", Ellipsis("short", 100))
	assert.Equal(t, "abc...", Ellipsis("abcdef", 3))
	assert.Equal(t, "čšž...", Ellipsis("čšžđć", 3))
	assert.Equal(t, "abc", Ellipsis("abc", 3))
}
