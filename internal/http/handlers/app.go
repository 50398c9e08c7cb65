package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"dashboard/internal/adapter/repo"
	"dashboard/internal/domain"
	"dashboard/internal/ranking"
	"dashboard/internal/stats"
)

type App struct {
	Repo    *repo.StatsRepo
	Ranking *ranking.Service
	Daily   stats.Aggregator
	Log     zerolog.Logger

	RecentFeedbackLimit int

	// Now is swappable so tests can pin the default daily window.
	Now func() time.Time
}

func NewApp(r *repo.StatsRepo, svc *ranking.Service, daily stats.Aggregator, log zerolog.Logger, recentFeedbackLimit int) *App {
	return &App{
		Repo:                r,
		Ranking:             svc,
		Daily:               daily,
		Log:                 log,
		RecentFeedbackLimit: recentFeedbackLimit,
		Now:                 time.Now,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// fail maps engine errors to the HTTP boundary. Validation errors reject
// before any computation; source failures are retryable 503s, never zeros.
func (a *App) fail(w http.ResponseWriter, section string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSortKey):
		a.error(w, http.StatusBadRequest, "invalid_sort_key", err.Error())
	case errors.Is(err, domain.ErrInvalidRange):
		a.error(w, http.StatusBadRequest, "invalid_range", err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable):
		a.Log.Error().Err(err).Str("section", section).Msg("data source unavailable")
		a.error(w, http.StatusServiceUnavailable, "source_unavailable", "data source unavailable")
	default:
		a.Log.Error().Err(err).Str("section", section).Msg("unexpected failure")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
