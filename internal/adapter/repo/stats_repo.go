package repo

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/domain"
	"dashboard/internal/infra"
	"dashboard/internal/sqlinline"
)

// StatsRepo extracts raw metric tuples from the chat-platform store. It is
// strictly read-only; every failure surfaces as ErrSourceUnavailable instead
// of being substituted with zeros.
type StatsRepo struct {
	SQL         infra.SQLExecutor
	dayBoundary string
}

// NewStatsRepo constructs the repository. dayBoundaryHours shifts activity
// timestamps before daily bucketing (the platform day is UTC+9).
func NewStatsRepo(sql infra.SQLExecutor, dayBoundaryHours int) *StatsRepo {
	return &StatsRepo{SQL: sql, dayBoundary: fmt.Sprintf("%d hours", dayBoundaryHours)}
}

func sourceErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrSourceUnavailable, err))
}

// Ping verifies store connectivity for the health endpoint.
func (r *StatsRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.SQL.QueryRow(ctx, sqlinline.QPing).Scan(&one); err != nil {
		return sourceErr("ping", err)
	}
	return nil
}

// Overview returns the platform-wide totals.
func (r *StatsRepo) Overview(ctx context.Context) (domain.Overview, error) {
	var ov domain.Overview
	row := r.SQL.QueryRow(ctx, sqlinline.QOverview)
	if err := row.Scan(&ov.TotalChats, &ov.TotalMessages, &ov.TotalModels, &ov.TotalFeedbacks); err != nil {
		return domain.Overview{}, sourceErr("load overview", err)
	}
	return ov, nil
}

// WorkspaceMetrics returns the per-workspace counter tuples, excluding base
// workspaces.
func (r *StatsRepo) WorkspaceMetrics(ctx context.Context) ([]domain.WorkspaceMetric, error) {
	rows, err := r.SQL.Query(ctx, sqlinline.QWorkspaceMetrics)
	if err != nil {
		return nil, sourceErr("load workspace metrics", err)
	}
	defer rows.Close()

	var items []domain.WorkspaceMetric
	for rows.Next() {
		var m domain.WorkspaceMetric
		if err := rows.Scan(&m.ID, &m.Name, &m.DeveloperEmail, &m.UserCount, &m.ChatCount, &m.MessageCount, &m.Positive, &m.Negative); err != nil {
			return nil, sourceErr("scan workspace metrics", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, sourceErr("read workspace metrics", err)
	}
	return items, nil
}

// DeveloperMetrics returns one row per user owning at least one non-base
// workspace, with counters summed across owned workspaces.
func (r *StatsRepo) DeveloperMetrics(ctx context.Context) ([]domain.DeveloperMetric, error) {
	rows, err := r.SQL.Query(ctx, sqlinline.QDeveloperMetrics)
	if err != nil {
		return nil, sourceErr("load developer metrics", err)
	}
	defer rows.Close()

	var items []domain.DeveloperMetric
	for rows.Next() {
		var m domain.DeveloperMetric
		if err := rows.Scan(&m.UserID, &m.UserName, &m.Email, &m.WorkspaceCount, &m.TotalUsers, &m.TotalChats, &m.TotalMessages, &m.TotalPositive, &m.TotalNegative); err != nil {
			return nil, sourceErr("scan developer metrics", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, sourceErr("read developer metrics", err)
	}
	return items, nil
}

// GroupMetrics returns activity summed across each group's members, with the
// per-member display rates materialized.
func (r *StatsRepo) GroupMetrics(ctx context.Context) ([]domain.GroupMetric, error) {
	rows, err := r.SQL.Query(ctx, sqlinline.QGroupMetrics)
	if err != nil {
		return nil, sourceErr("load group metrics", err)
	}
	defer rows.Close()

	var items []domain.GroupMetric
	for rows.Next() {
		var m domain.GroupMetric
		if err := rows.Scan(&m.GroupID, &m.GroupName, &m.MemberCount, &m.TotalChats, &m.TotalMessages, &m.TotalFeedbacks, &m.TotalPositive, &m.TotalNegative); err != nil {
			return nil, sourceErr("scan group metrics", err)
		}
		m.ChatsPerMember = domain.PerMember(m.TotalChats, m.MemberCount)
		m.MessagesPerMember = domain.PerMember(m.TotalMessages, m.MemberCount)
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, sourceErr("read group metrics", err)
	}
	return items, nil
}

// DailyActivity returns sparse per-day buckets between from and to inclusive
// (YYYY-MM-DD). Zero-filling empty days is the aggregator's job.
func (r *StatsRepo) DailyActivity(ctx context.Context, from, to string) ([]domain.DailyStat, error) {
	rows, err := r.SQL.Query(ctx, sqlinline.QDailyActivity, from, to, r.dayBoundary)
	if err != nil {
		return nil, sourceErr("load daily activity", err)
	}
	defer rows.Close()

	var items []domain.DailyStat
	for rows.Next() {
		var d domain.DailyStat
		if err := rows.Scan(&d.Date, &d.ChatCount, &d.MessageCount, &d.UserCount); err != nil {
			return nil, sourceErr("scan daily activity", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, sourceErr("read daily activity", err)
	}
	return items, nil
}

// FeedbackSummary returns platform-wide rating totals plus the most recent
// entries, newest first.
func (r *StatsRepo) FeedbackSummary(ctx context.Context, recentLimit int) (domain.FeedbackSummary, error) {
	var summary domain.FeedbackSummary
	row := r.SQL.QueryRow(ctx, sqlinline.QFeedbackTotals)
	if err := row.Scan(&summary.Positive, &summary.Negative); err != nil {
		return domain.FeedbackSummary{}, sourceErr("load feedback totals", err)
	}

	rows, err := r.SQL.Query(ctx, sqlinline.QRecentFeedbacks, recentLimit)
	if err != nil {
		return domain.FeedbackSummary{}, sourceErr("load recent feedbacks", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.FeedbackItem
		if err := rows.Scan(&item.ID, &item.ModelID, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return domain.FeedbackSummary{}, sourceErr("scan recent feedbacks", err)
		}
		summary.Recent = append(summary.Recent, item)
	}
	if err := rows.Err(); err != nil {
		return domain.FeedbackSummary{}, sourceErr("read recent feedbacks", err)
	}
	return summary, nil
}
