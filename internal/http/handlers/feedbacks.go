package handlers

import (
	"net/http"

	"dashboard/internal/domain"
)

func (a *App) FeedbacksSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Repo.FeedbackSummary(r.Context(), a.RecentFeedbackLimit)
	if err != nil {
		a.fail(w, "feedbacks", err)
		return
	}
	if summary.Recent == nil {
		summary.Recent = []domain.FeedbackItem{}
	}
	a.json(w, http.StatusOK, summary)
}
