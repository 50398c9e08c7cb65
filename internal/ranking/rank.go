package ranking

import (
	"fmt"
	"sort"

	"dashboard/internal/domain"
)

// Direction orders a ranking ascending or descending by its sort key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps a query parameter to a Direction. Empty means the
// default (descending); anything else must be asc or desc.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", string(Desc):
		return Desc, nil
	case string(Asc):
		return Asc, nil
	default:
		return "", fmt.Errorf("sort direction %q: %w", s, domain.ErrInvalidSortKey)
	}
}

// Key names a sortable metric column.
type Key string

// Default sort keys per ranking kind, matching the dashboard tables.
const (
	DefaultWorkspaceKey Key = "chat_count"
	DefaultDeveloperKey Key = "total_chats"
	DefaultGroupKey     Key = "chats_per_member"
)

// Derived keys are evaluated from the raw counters at comparison time so the
// ordering always reflects the current positive/negative pairs.
var workspaceKeys = map[Key]func(domain.WorkspaceMetric) float64{
	"user_count":    func(m domain.WorkspaceMetric) float64 { return float64(m.UserCount) },
	"chat_count":    func(m domain.WorkspaceMetric) float64 { return float64(m.ChatCount) },
	"message_count": func(m domain.WorkspaceMetric) float64 { return float64(m.MessageCount) },
	"positive":      func(m domain.WorkspaceMetric) float64 { return float64(m.Positive) },
	"negative":      func(m domain.WorkspaceMetric) float64 { return float64(m.Negative) },
}

var developerKeys = map[Key]func(domain.DeveloperMetric) float64{
	"workspace_count": func(m domain.DeveloperMetric) float64 { return float64(m.WorkspaceCount) },
	"total_users":     func(m domain.DeveloperMetric) float64 { return float64(m.TotalUsers) },
	"total_chats":     func(m domain.DeveloperMetric) float64 { return float64(m.TotalChats) },
	"total_messages":  func(m domain.DeveloperMetric) float64 { return float64(m.TotalMessages) },
	"rating": func(m domain.DeveloperMetric) float64 {
		return float64(domain.Rating(m.TotalPositive, m.TotalNegative))
	},
}

var groupKeys = map[Key]func(domain.GroupMetric) float64{
	"member_count":   func(m domain.GroupMetric) float64 { return float64(m.MemberCount) },
	"total_chats":    func(m domain.GroupMetric) float64 { return float64(m.TotalChats) },
	"total_messages": func(m domain.GroupMetric) float64 { return float64(m.TotalMessages) },
	"rating": func(m domain.GroupMetric) float64 {
		return float64(domain.Rating(m.TotalPositive, m.TotalNegative))
	},
	"chats_per_member": func(m domain.GroupMetric) float64 {
		return domain.PerMember(m.TotalChats, m.MemberCount)
	},
	"messages_per_member": func(m domain.GroupMetric) float64 {
		return domain.PerMember(m.TotalMessages, m.MemberCount)
	},
}

// Page is one slice of a fully sorted ranking. Total counts the whole set so
// callers can derive page counts.
type Page[T any] struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Items  []T `json:"items"`
}

// Service ranks metric sets with bounded pagination.
type Service struct {
	DefaultLimit int
	MaxLimit     int
}

func NewService(defaultLimit, maxLimit int) *Service {
	return &Service{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
}

func (s *Service) Workspaces(items []domain.WorkspaceMetric, key Key, dir Direction, offset, limit int) (Page[domain.WorkspaceMetric], error) {
	sorted, err := SortWorkspaces(items, key, dir)
	if err != nil {
		return Page[domain.WorkspaceMetric]{}, err
	}
	return paginate(sorted, offset, limit, s.DefaultLimit, s.MaxLimit)
}

func (s *Service) Developers(items []domain.DeveloperMetric, key Key, dir Direction, offset, limit int) (Page[domain.DeveloperMetric], error) {
	sorted, err := SortDevelopers(items, key, dir)
	if err != nil {
		return Page[domain.DeveloperMetric]{}, err
	}
	return paginate(sorted, offset, limit, s.DefaultLimit, s.MaxLimit)
}

func (s *Service) Groups(items []domain.GroupMetric, key Key, dir Direction, offset, limit int) (Page[domain.GroupMetric], error) {
	sorted, err := SortGroups(items, key, dir)
	if err != nil {
		return Page[domain.GroupMetric]{}, err
	}
	return paginate(sorted, offset, limit, s.DefaultLimit, s.MaxLimit)
}

// SortWorkspaces returns a sorted copy of items. An empty key selects the
// workspace default. These Sort functions are the single comparator shared by
// the server and any client-side table sort.
func SortWorkspaces(items []domain.WorkspaceMetric, key Key, dir Direction) ([]domain.WorkspaceMetric, error) {
	value, err := lookup(workspaceKeys, key, DefaultWorkspaceKey, "workspace")
	if err != nil {
		return nil, err
	}
	return sortBy(items, value, func(m domain.WorkspaceMetric) string { return m.ID }, dir), nil
}

func SortDevelopers(items []domain.DeveloperMetric, key Key, dir Direction) ([]domain.DeveloperMetric, error) {
	value, err := lookup(developerKeys, key, DefaultDeveloperKey, "developer")
	if err != nil {
		return nil, err
	}
	return sortBy(items, value, func(m domain.DeveloperMetric) string { return m.UserID }, dir), nil
}

func SortGroups(items []domain.GroupMetric, key Key, dir Direction) ([]domain.GroupMetric, error) {
	value, err := lookup(groupKeys, key, DefaultGroupKey, "group")
	if err != nil {
		return nil, err
	}
	return sortBy(items, value, func(m domain.GroupMetric) string { return m.GroupID }, dir), nil
}

// Key validation, usable at the request boundary before any data is fetched.
func ValidateWorkspaceKey(key Key) error {
	_, err := lookup(workspaceKeys, key, DefaultWorkspaceKey, "workspace")
	return err
}

func ValidateDeveloperKey(key Key) error {
	_, err := lookup(developerKeys, key, DefaultDeveloperKey, "developer")
	return err
}

func ValidateGroupKey(key Key) error {
	_, err := lookup(groupKeys, key, DefaultGroupKey, "group")
	return err
}

func lookup[T any](keys map[Key]func(T) float64, key, fallback Key, kind string) (func(T) float64, error) {
	if key == "" {
		key = fallback
	}
	value, ok := keys[key]
	if !ok {
		return nil, fmt.Errorf("%s sort key %q: %w", kind, key, domain.ErrInvalidSortKey)
	}
	return value, nil
}

// sortBy orders a copy of items by the primary value with ascending entity id
// as tie-break, so equal primary keys page deterministically.
func sortBy[T any](items []T, value func(T) float64, id func(T) string, dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		vi, vj := value(out[i]), value(out[j])
		if vi != vj {
			if dir == Asc {
				return vi < vj
			}
			return vi > vj
		}
		return id(out[i]) < id(out[j])
	})
	return out
}

// paginate slices [offset, offset+limit) out of the sorted set. Negative
// offsets and limits are rejected; a zero limit takes the default and
// oversized limits are clamped, never rejected.
func paginate[T any](sorted []T, offset, limit, defaultLimit, maxLimit int) (Page[T], error) {
	if offset < 0 || limit < 0 {
		return Page[T]{}, fmt.Errorf("offset %d limit %d: %w", offset, limit, domain.ErrInvalidRange)
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	total := len(sorted)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, sorted[start:end])
	return Page[T]{Total: total, Offset: offset, Limit: limit, Items: items}, nil
}
