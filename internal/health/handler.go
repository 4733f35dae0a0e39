package health

import (
	"net/http"
)

// NewHandler returns a handler answering GET requests on the root path
// with 200 if isHealthy returns nil, and 500 with the error otherwise.
func NewHandler(isHealthy func() error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notRoot := r.URL.Path != "" && r.URL.Path != "/"
		if r.Method != http.MethodGet || notRoot {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		err := isHealthy()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("healthy\n"))
	})
}
