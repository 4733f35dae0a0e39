package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	runner UpdateForcer
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(runner UpdateForcer,
	healthHandler http.Handler, logger Logger) http.Handler {
	handlers := &handlers{
		runner:  runner,
		timeNow: time.Now,
	}

	router := chi.NewRouter()

	router.Use(middleware.CleanPath, middleware.Recoverer, logRequests(logger))

	router.Method(http.MethodGet, "/", healthHandler)
	router.Get("/update", handlers.update)

	return router
}

func logRequests(logger Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug(r.Method + " " + r.URL.Path + " " +
				http.StatusText(ww.Status()) + " in " + time.Since(start).String())
		})
	}
}
