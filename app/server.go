package app

import (
	"context"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Serve listens until ctx is cancelled, then drains open requests.
func (a *App) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.Config.Addr(),
		Handler: a.Router(),
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.Infof("listening on %s (%s)", server.Addr, a.Config.URL)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.Log.Info("shutting down")
	return server.Shutdown(shutdownCtx)
}
