package view

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"dashboard/internal/domain"
	"dashboard/internal/ranking"
)

// PageQuery selects a server-side sorted page.
type PageQuery struct {
	Sort   ranking.Key
	Dir    ranking.Direction
	Offset int
	Limit  int
}

// Client is the dashboard's view of the stats API.
type Client interface {
	Overview(ctx context.Context) (domain.Overview, error)
	Daily(ctx context.Context, from, to string) ([]domain.DailyStat, error)
	WorkspaceRanking(ctx context.Context, q PageQuery) (ranking.Page[domain.WorkspaceMetric], error)
	DeveloperRanking(ctx context.Context, q PageQuery) (ranking.Page[domain.DeveloperMetric], error)
	GroupRanking(ctx context.Context, q PageQuery) (ranking.Page[domain.GroupMetric], error)
	FeedbackSummary(ctx context.Context) (domain.FeedbackSummary, error)
}

// Dashboard is one loaded view. Sections that failed are listed in Errors by
// section name; the rest rendered normally.
type Dashboard struct {
	Overview   domain.Overview
	Daily      []domain.DailyStat
	Workspaces ranking.Page[domain.WorkspaceMetric]
	Developers ranking.Page[domain.DeveloperMetric]
	Groups     ranking.Page[domain.GroupMetric]
	Feedback   domain.FeedbackSummary

	Errors map[string]error
}

// Failed reports whether the named section failed to load.
func (d *Dashboard) Failed(section string) bool {
	_, ok := d.Errors[section]
	return ok
}

// Loader fetches all dashboard sections concurrently. A single failed
// section never blocks the others.
type Loader struct {
	Client Client
	Log    zerolog.Logger
}

// Load fetches every section of the dashboard for the given daily window.
// It returns once all fetches complete or fail.
func (l *Loader) Load(ctx context.Context, from, to string) *Dashboard {
	d := &Dashboard{Errors: map[string]error{}}

	var wg sync.WaitGroup
	var mu sync.Mutex
	section := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				l.Log.Error().Err(err).Str("section", name).Msg("section load failed")
				mu.Lock()
				d.Errors[name] = err
				mu.Unlock()
			}
		}()
	}

	section("overview", func() error {
		ov, err := l.Client.Overview(ctx)
		if err != nil {
			return err
		}
		d.Overview = ov
		return nil
	})
	section("daily", func() error {
		daily, err := l.Client.Daily(ctx, from, to)
		if err != nil {
			return err
		}
		d.Daily = daily
		return nil
	})
	section("workspaces", func() error {
		page, err := l.Client.WorkspaceRanking(ctx, PageQuery{})
		if err != nil {
			return err
		}
		d.Workspaces = page
		return nil
	})
	section("developers", func() error {
		page, err := l.Client.DeveloperRanking(ctx, PageQuery{})
		if err != nil {
			return err
		}
		d.Developers = page
		return nil
	})
	section("groups", func() error {
		page, err := l.Client.GroupRanking(ctx, PageQuery{})
		if err != nil {
			return err
		}
		d.Groups = page
		return nil
	})
	section("feedback", func() error {
		fb, err := l.Client.FeedbackSummary(ctx)
		if err != nil {
			return err
		}
		d.Feedback = fb
		return nil
	})

	wg.Wait()
	return d
}

// ErrStale marks a daily reload whose response arrived after a newer request
// already completed; its data was discarded.
var ErrStale = errors.New("stale daily response")

// DailyView holds the date-range chart data. Refreshes are sequenced so a
// slow response for an old range can never overwrite a newer one.
type DailyView struct {
	client Client

	mu      sync.Mutex
	seq     uint64
	applied uint64
	stats   []domain.DailyStat
}

func NewDailyView(client Client) *DailyView {
	return &DailyView{client: client}
}

// Refresh fetches the given range and applies it unless a later-issued
// refresh already finished, in which case the result is dropped and ErrStale
// returned.
func (v *DailyView) Refresh(ctx context.Context, from, to string) error {
	v.mu.Lock()
	v.seq++
	id := v.seq
	v.mu.Unlock()

	stats, err := v.client.Daily(ctx, from, to)

	v.mu.Lock()
	defer v.mu.Unlock()
	if id <= v.applied {
		return ErrStale
	}
	v.applied = id
	if err != nil {
		return err
	}
	v.stats = stats
	return nil
}

// Stats returns the currently displayed range data.
func (v *DailyView) Stats() []domain.DailyStat {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stats
}
