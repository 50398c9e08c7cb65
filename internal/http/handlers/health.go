package handlers

import "net/http"

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	if err := a.Repo.Ping(r.Context()); err != nil {
		a.json(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "database": "unreachable"})
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "database": "connected"})
}
