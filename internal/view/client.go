package view

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/ranking"
)

// HTTPClient talks to the stats API. UserID, when set, is forwarded in the
// identity header for the auth collaborator to resolve.
type HTTPClient struct {
	BaseURL string
	UserID  string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL, userID string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		UserID:  userID,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Overview(ctx context.Context) (domain.Overview, error) {
	var ov domain.Overview
	err := c.get(ctx, "/api/stats/overview", nil, &ov)
	return ov, err
}

func (c *HTTPClient) Daily(ctx context.Context, from, to string) ([]domain.DailyStat, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	var stats []domain.DailyStat
	err := c.get(ctx, "/api/stats/daily", q, &stats)
	return stats, err
}

func (c *HTTPClient) WorkspaceRanking(ctx context.Context, q PageQuery) (ranking.Page[domain.WorkspaceMetric], error) {
	var page ranking.Page[domain.WorkspaceMetric]
	err := c.get(ctx, "/api/stats/workspace-ranking", pageValues(q), &page)
	return page, err
}

func (c *HTTPClient) DeveloperRanking(ctx context.Context, q PageQuery) (ranking.Page[domain.DeveloperMetric], error) {
	var page ranking.Page[domain.DeveloperMetric]
	err := c.get(ctx, "/api/stats/developer-ranking", pageValues(q), &page)
	return page, err
}

func (c *HTTPClient) GroupRanking(ctx context.Context, q PageQuery) (ranking.Page[domain.GroupMetric], error) {
	var page ranking.Page[domain.GroupMetric]
	err := c.get(ctx, "/api/stats/group-ranking", pageValues(q), &page)
	return page, err
}

func (c *HTTPClient) FeedbackSummary(ctx context.Context) (domain.FeedbackSummary, error) {
	var summary domain.FeedbackSummary
	err := c.get(ctx, "/api/feedbacks/summary", nil, &summary)
	return summary, err
}

func pageValues(q PageQuery) url.Values {
	values := url.Values{}
	if q.Sort != "" {
		values.Set("sort", string(q.Sort))
	}
	if q.Dir != "" {
		values.Set("dir", string(q.Dir))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	if c.UserID != "" {
		req.Header.Set("X-User-Id", c.UserID)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error.Code != "" {
			return fmt.Errorf("get %s: %s (%s)", path, payload.Error.Message, payload.Error.Code)
		}
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
