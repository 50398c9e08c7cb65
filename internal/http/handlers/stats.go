package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"dashboard/internal/domain"
	"dashboard/internal/ranking"
	"dashboard/internal/stats"
)

func (a *App) StatsOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := a.Repo.Overview(r.Context())
	if err != nil {
		a.fail(w, "overview", err)
		return
	}
	a.json(w, http.StatusOK, ov)
}

// StatsDaily serves one zero-filled bucket per calendar day of the requested
// range, defaulting to the configured recent window.
func (a *App) StatsDaily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := a.Daily.DefaultWindow(a.Now())

	if raw := q.Get("from"); raw != "" {
		day, err := stats.ParseDay(raw)
		if err != nil {
			a.fail(w, "daily", err)
			return
		}
		from = day
	}
	if raw := q.Get("to"); raw != "" {
		day, err := stats.ParseDay(raw)
		if err != nil {
			a.fail(w, "daily", err)
			return
		}
		to = day
	}

	rows, err := a.Repo.DailyActivity(r.Context(), from.Format(stats.DayLayout), to.Format(stats.DayLayout))
	if err != nil {
		a.fail(w, "daily", err)
		return
	}
	a.json(w, http.StatusOK, a.Daily.Fill(from, to, rows))
}

func (a *App) WorkspaceRanking(w http.ResponseWriter, r *http.Request) {
	key, dir, offset, limit, err := rankingParams(r)
	if err != nil {
		a.fail(w, "workspace-ranking", err)
		return
	}
	if err := ranking.ValidateWorkspaceKey(key); err != nil {
		a.fail(w, "workspace-ranking", err)
		return
	}
	items, err := a.Repo.WorkspaceMetrics(r.Context())
	if err != nil {
		a.fail(w, "workspace-ranking", err)
		return
	}
	page, err := a.Ranking.Workspaces(items, key, dir, offset, limit)
	if err != nil {
		a.fail(w, "workspace-ranking", err)
		return
	}
	a.json(w, http.StatusOK, page)
}

func (a *App) DeveloperRanking(w http.ResponseWriter, r *http.Request) {
	key, dir, offset, limit, err := rankingParams(r)
	if err != nil {
		a.fail(w, "developer-ranking", err)
		return
	}
	if err := ranking.ValidateDeveloperKey(key); err != nil {
		a.fail(w, "developer-ranking", err)
		return
	}
	items, err := a.Repo.DeveloperMetrics(r.Context())
	if err != nil {
		a.fail(w, "developer-ranking", err)
		return
	}
	page, err := a.Ranking.Developers(items, key, dir, offset, limit)
	if err != nil {
		a.fail(w, "developer-ranking", err)
		return
	}
	a.json(w, http.StatusOK, page)
}

func (a *App) GroupRanking(w http.ResponseWriter, r *http.Request) {
	key, dir, offset, limit, err := rankingParams(r)
	if err != nil {
		a.fail(w, "group-ranking", err)
		return
	}
	if err := ranking.ValidateGroupKey(key); err != nil {
		a.fail(w, "group-ranking", err)
		return
	}
	items, err := a.Repo.GroupMetrics(r.Context())
	if err != nil {
		a.fail(w, "group-ranking", err)
		return
	}
	page, err := a.Ranking.Groups(items, key, dir, offset, limit)
	if err != nil {
		a.fail(w, "group-ranking", err)
		return
	}
	a.json(w, http.StatusOK, page)
}

// rankingParams parses sort/dir/offset/limit. Malformed or negative values
// are rejected at the boundary, not coerced into defaults.
func rankingParams(r *http.Request) (ranking.Key, ranking.Direction, int, int, error) {
	q := r.URL.Query()

	dir, err := ranking.ParseDirection(q.Get("dir"))
	if err != nil {
		return "", "", 0, 0, err
	}
	offset, err := intParam(q.Get("offset"), "offset")
	if err != nil {
		return "", "", 0, 0, err
	}
	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		return "", "", 0, 0, err
	}
	return ranking.Key(q.Get("sort")), dir, offset, limit, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, raw, domain.ErrInvalidRange)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s %d: %w", name, v, domain.ErrInvalidRange)
	}
	return v, nil
}
