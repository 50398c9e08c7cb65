package ranking

import (
	"errors"
	"testing"

	"dashboard/internal/domain"
)

func testWorkspaces() []domain.WorkspaceMetric {
	return []domain.WorkspaceMetric{
		{ID: "ws-a", Name: "A", ChatCount: 10, Positive: 3, Negative: 1, UserCount: 4, MessageCount: 40},
		{ID: "ws-b", Name: "B", ChatCount: 25, Positive: 1, Negative: 4, UserCount: 9, MessageCount: 90},
	}
}

func testGroups() []domain.GroupMetric {
	return []domain.GroupMetric{
		{GroupID: "g1", GroupName: "G", MemberCount: 25, TotalChats: 100, TotalMessages: 50},
		{GroupID: "g2", GroupName: "Empty", MemberCount: 0, TotalChats: 100, TotalMessages: 10},
	}
}

func TestWorkspaceRankingByChatCountDesc(t *testing.T) {
	svc := NewService(20, 200)
	page, err := svc.Workspaces(testWorkspaces(), "chat_count", Desc, 0, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("total = %d, want 2", page.Total)
	}
	if page.Items[0].ID != "ws-b" || page.Items[1].ID != "ws-a" {
		t.Fatalf("order = %s, %s; want ws-b, ws-a", page.Items[0].ID, page.Items[1].ID)
	}
}

func TestWorkspaceRankingByPositiveDesc(t *testing.T) {
	svc := NewService(20, 200)
	page, err := svc.Workspaces(testWorkspaces(), "positive", Desc, 0, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if page.Items[0].ID != "ws-a" || page.Items[1].ID != "ws-b" {
		t.Fatalf("order = %s, %s; want ws-a, ws-b", page.Items[0].ID, page.Items[1].ID)
	}
	if page.Total != 2 {
		t.Fatalf("total = %d, want 2", page.Total)
	}
}

func TestDeveloperRatingComputedAtComparison(t *testing.T) {
	items := []domain.DeveloperMetric{
		{UserID: "u1", TotalPositive: 1, TotalNegative: 5},  // rating -4
		{UserID: "u2", TotalPositive: 3, TotalNegative: 1},  // rating 2
		{UserID: "u3", TotalPositive: 10, TotalNegative: 4}, // rating 6
	}
	sorted, err := SortDevelopers(items, "rating", Desc)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	want := []string{"u3", "u2", "u1"}
	for i, id := range want {
		if sorted[i].UserID != id {
			t.Fatalf("position %d = %s, want %s", i, sorted[i].UserID, id)
		}
	}
}

func TestGroupPerMemberSortZeroMembersLast(t *testing.T) {
	// g1: 100/25 = 4.00, g2: zero members ranks as 0, not an error.
	sorted, err := SortGroups(testGroups(), "chats_per_member", Desc)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if sorted[0].GroupID != "g1" || sorted[1].GroupID != "g2" {
		t.Fatalf("order = %s, %s; want g1, g2", sorted[0].GroupID, sorted[1].GroupID)
	}
}

func TestAscendingIsReverseOfDescending(t *testing.T) {
	keys := []Key{"user_count", "chat_count", "message_count", "positive", "negative"}
	for _, key := range keys {
		asc, err := SortWorkspaces(testWorkspaces(), key, Asc)
		if err != nil {
			t.Fatalf("%s asc: %v", key, err)
		}
		desc, err := SortWorkspaces(testWorkspaces(), key, Desc)
		if err != nil {
			t.Fatalf("%s desc: %v", key, err)
		}
		// No duplicate primary values in the fixture, so a strict reversal holds.
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Fatalf("key %s: asc is not the reverse of desc", key)
			}
		}
	}
}

func TestRankIdempotent(t *testing.T) {
	svc := NewService(20, 200)
	first, err := svc.Workspaces(testWorkspaces(), "chat_count", Desc, 0, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.Workspaces(testWorkspaces(), "chat_count", Desc, 0, 10)
		if err != nil {
			t.Fatalf("rank: %v", err)
		}
		if again.Total != first.Total {
			t.Fatalf("total changed between calls: %d vs %d", again.Total, first.Total)
		}
		for j := range again.Items {
			if again.Items[j].ID != first.Items[j].ID {
				t.Fatalf("ordering changed between calls at %d", j)
			}
		}
	}
}

func TestTieBreakIsEntityIDAscending(t *testing.T) {
	items := []domain.WorkspaceMetric{
		{ID: "ws-c", ChatCount: 5},
		{ID: "ws-a", ChatCount: 5},
		{ID: "ws-b", ChatCount: 5},
	}
	sorted, err := SortWorkspaces(items, "chat_count", Desc)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	want := []string{"ws-a", "ws-b", "ws-c"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, sorted[i].ID, id)
		}
	}
}

func TestPaginationCoversFullSetOnce(t *testing.T) {
	// All chat counts equal: only the deterministic tie-break keeps page
	// boundaries stable.
	var items []domain.WorkspaceMetric
	for _, id := range []string{"w05", "w03", "w09", "w01", "w07", "w02", "w08", "w04", "w06", "w10"} {
		items = append(items, domain.WorkspaceMetric{ID: id, ChatCount: 7})
	}

	svc := NewService(20, 200)
	seen := map[string]int{}
	var ordered []string
	for offset := 0; ; offset += 3 {
		page, err := svc.Workspaces(items, "chat_count", Desc, offset, 3)
		if err != nil {
			t.Fatalf("rank offset %d: %v", offset, err)
		}
		if page.Total != len(items) {
			t.Fatalf("total = %d, want %d", page.Total, len(items))
		}
		for _, item := range page.Items {
			seen[item.ID]++
			ordered = append(ordered, item.ID)
		}
		if offset+3 >= page.Total {
			break
		}
	}
	if len(ordered) != len(items) {
		t.Fatalf("concatenated pages hold %d items, want %d", len(ordered), len(items))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("item %s appeared %d times", id, n)
		}
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("pages out of order at %d: %s >= %s", i, ordered[i-1], ordered[i])
		}
	}
}

func TestLimitClampedNotRejected(t *testing.T) {
	svc := NewService(20, 200)
	page, err := svc.Workspaces(testWorkspaces(), "", Desc, 0, 100000)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if page.Limit != 200 {
		t.Fatalf("limit = %d, want clamped to 200", page.Limit)
	}
}

func TestZeroLimitTakesDefault(t *testing.T) {
	svc := NewService(20, 200)
	page, err := svc.Workspaces(testWorkspaces(), "", Desc, 0, 0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if page.Limit != 20 {
		t.Fatalf("limit = %d, want default 20", page.Limit)
	}
}

func TestInvalidSortKeyRejected(t *testing.T) {
	svc := NewService(20, 200)
	_, err := svc.Workspaces(testWorkspaces(), "developer_email", Desc, 0, 10)
	if !errors.Is(err, domain.ErrInvalidSortKey) {
		t.Fatalf("err = %v, want ErrInvalidSortKey", err)
	}
	_, err = svc.Developers(nil, "positive", Desc, 0, 10)
	if !errors.Is(err, domain.ErrInvalidSortKey) {
		t.Fatalf("err = %v, want ErrInvalidSortKey", err)
	}
}

func TestNegativeRangeRejected(t *testing.T) {
	svc := NewService(20, 200)
	if _, err := svc.Workspaces(testWorkspaces(), "", Desc, -1, 10); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("offset -1: err = %v, want ErrInvalidRange", err)
	}
	if _, err := svc.Workspaces(testWorkspaces(), "", Desc, 0, -5); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("limit -5: err = %v, want ErrInvalidRange", err)
	}
}

func TestOffsetBeyondTotal(t *testing.T) {
	svc := NewService(20, 200)
	page, err := svc.Workspaces(testWorkspaces(), "", Desc, 50, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("items = %d, want empty page", len(page.Items))
	}
	if page.Total != 2 {
		t.Fatalf("total = %d, want 2", page.Total)
	}
}

func TestParseDirection(t *testing.T) {
	if dir, err := ParseDirection(""); err != nil || dir != Desc {
		t.Fatalf("empty direction: %v %v", dir, err)
	}
	if dir, err := ParseDirection("asc"); err != nil || dir != Asc {
		t.Fatalf("asc: %v %v", dir, err)
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, domain.ErrInvalidSortKey) {
		t.Fatalf("bad direction: err = %v, want ErrInvalidSortKey", err)
	}
}
