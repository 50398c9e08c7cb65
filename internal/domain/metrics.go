package domain

import "time"

// Overview holds the platform-wide totals shown on the dashboard cards.
// total_models keeps its historical wire name even though the entity is a
// workspace nowadays.
type Overview struct {
	TotalChats     int64 `json:"total_chats"`
	TotalMessages  int64 `json:"total_messages"`
	TotalModels    int64 `json:"total_models"`
	TotalFeedbacks int64 `json:"total_feedbacks"`
}

// WorkspaceMetric is the per-workspace counter tuple. All counts are >= 0.
type WorkspaceMetric struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DeveloperEmail string `json:"developer_email"`
	UserCount      int64  `json:"user_count"`
	ChatCount      int64  `json:"chat_count"`
	MessageCount   int64  `json:"message_count"`
	Positive       int64  `json:"positive"`
	Negative       int64  `json:"negative"`
}

// DeveloperMetric sums workspace counters across a developer's owned
// workspaces. Developers owning zero workspaces never appear; base workspaces
// do not count toward ownership.
type DeveloperMetric struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	Email          string `json:"email"`
	WorkspaceCount int64  `json:"workspace_count"`
	TotalUsers     int64  `json:"total_users"`
	TotalChats     int64  `json:"total_chats"`
	TotalMessages  int64  `json:"total_messages"`
	TotalPositive  int64  `json:"total_positive"`
	TotalNegative  int64  `json:"total_negative"`
}

// GroupMetric sums member activity for a user group. The per-member rates are
// materialized for display; ranking recomputes them from the raw fields.
type GroupMetric struct {
	GroupID           string  `json:"group_id"`
	GroupName         string  `json:"group_name"`
	MemberCount       int64   `json:"member_count"`
	TotalChats        int64   `json:"total_chats"`
	TotalMessages     int64   `json:"total_messages"`
	TotalFeedbacks    int64   `json:"total_feedbacks"`
	TotalPositive     int64   `json:"total_positive"`
	TotalNegative     int64   `json:"total_negative"`
	ChatsPerMember    float64 `json:"chats_per_member"`
	MessagesPerMember float64 `json:"messages_per_member"`
}

// DailyStat is one calendar-day activity bucket. Date is a YYYY-MM-DD day at
// the platform day boundary, not an instant.
type DailyStat struct {
	Date         string `json:"date"`
	ChatCount    int64  `json:"chat_count"`
	MessageCount int64  `json:"message_count"`
	UserCount    int64  `json:"user_count"`
}

// FeedbackItem is a single rating event.
type FeedbackItem struct {
	ID        string    `json:"id"`
	ModelID   string    `json:"model_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackSummary aggregates ratings platform-wide plus a bounded
// reverse-chronological list of recent entries.
type FeedbackSummary struct {
	Positive int64          `json:"positive"`
	Negative int64          `json:"negative"`
	Recent   []FeedbackItem `json:"recent"`
}
