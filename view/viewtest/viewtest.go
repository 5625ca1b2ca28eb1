// Package viewtest runs list views against a stub backend.
package viewtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/matematik7/octofit-go/api"
	"github.com/matematik7/octofit-go/app"
	"github.com/matematik7/octofit-go/render"
	"github.com/matematik7/octofit-go/view"
)

// Configure wires v to a backend served by handler.
func Configure(t *testing.T, v *view.View, handler http.HandlerFunc) {
	t.Helper()

	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	err := v.Configure(&app.App{
		Log:    log,
		Render: render.New(false),
		Client: api.NewClient(api.Resolver{Override: backend.URL}, 0),
	})
	require.NoError(t, err)
}

// Body returns a handler answering every request with status and body.
func Body(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// List configures v against body and renders its list fragment.
func List(t *testing.T, v *view.View, status int, body string) string {
	t.Helper()
	Configure(t, v, Body(status, body))

	rr := httptest.NewRecorder()
	v.ServeMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/list", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}
