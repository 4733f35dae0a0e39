package server

import (
	"net/http"
)

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	start := h.timeNow()
	err := h.runner.ForceUpdate(r.Context())
	duration := h.timeNow().Sub(start)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusAccepted)
	message := "Update cycle completed successfully in " + duration.String()
	_, _ = w.Write([]byte(message))
}
