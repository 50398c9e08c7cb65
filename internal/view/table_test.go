package view

import (
	"testing"

	"dashboard/internal/domain"
	"dashboard/internal/ranking"
)

func TestToggleSameColumnFlipsDirection(t *testing.T) {
	s := NewTableState(ranking.DefaultWorkspaceKey)
	if s.Key != "chat_count" || s.Dir != ranking.Desc {
		t.Fatalf("initial state = %+v", s)
	}
	s = s.Toggle("chat_count")
	if s.Dir != ranking.Asc {
		t.Fatalf("after first toggle dir = %s, want asc", s.Dir)
	}
	s = s.Toggle("chat_count")
	if s.Dir != ranking.Desc {
		t.Fatalf("after second toggle dir = %s, want desc", s.Dir)
	}
}

func TestToggleNewColumnStartsDescending(t *testing.T) {
	s := NewTableState(ranking.DefaultWorkspaceKey)
	s = s.Toggle("chat_count") // now ascending
	s = s.Toggle("positive")
	if s.Key != "positive" || s.Dir != ranking.Desc {
		t.Fatalf("state = %+v, want positive desc", s)
	}
}

func TestTableSortsWithServiceComparator(t *testing.T) {
	items := []domain.WorkspaceMetric{
		{ID: "ws-a", ChatCount: 10, Positive: 3},
		{ID: "ws-b", ChatCount: 25, Positive: 1},
		{ID: "ws-c", ChatCount: 25, Positive: 2},
	}
	table := NewTable(ranking.DefaultWorkspaceKey, ranking.SortWorkspaces, items)

	rows, err := table.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	// chat_count desc with id tie-break: ws-b before ws-c on equal counts.
	want := []string{"ws-b", "ws-c", "ws-a"}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, rows[i].ID, id)
		}
	}

	table.Click("chat_count")
	rows, err = table.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	want = []string{"ws-a", "ws-b", "ws-c"}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("ascending position %d = %s, want %s", i, rows[i].ID, id)
		}
	}
}

func TestTableMatchesServerOrdering(t *testing.T) {
	items := []domain.GroupMetric{
		{GroupID: "g1", MemberCount: 25, TotalChats: 100},
		{GroupID: "g2", MemberCount: 4, TotalChats: 30},
		{GroupID: "g3", MemberCount: 0, TotalChats: 500},
	}

	table := NewTable(ranking.DefaultGroupKey, ranking.SortGroups, items)
	clientRows, err := table.Rows()
	if err != nil {
		t.Fatalf("client rows: %v", err)
	}

	svc := ranking.NewService(20, 200)
	page, err := svc.Groups(items, "", ranking.Desc, 0, len(items))
	if err != nil {
		t.Fatalf("server rank: %v", err)
	}

	for i := range clientRows {
		if clientRows[i].GroupID != page.Items[i].GroupID {
			t.Fatalf("client and server orderings diverge at %d: %s vs %s",
				i, clientRows[i].GroupID, page.Items[i].GroupID)
		}
	}
}
