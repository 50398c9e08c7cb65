package view

import "dashboard/internal/ranking"

// TableState is the per-table sort state: current key and direction.
type TableState struct {
	Key ranking.Key
	Dir ranking.Direction
}

// NewTableState starts a table at its declared default key, descending.
func NewTableState(defaultKey ranking.Key) TableState {
	return TableState{Key: defaultKey, Dir: ranking.Desc}
}

// Toggle applies a header click: the same column flips direction, a new
// column selects it descending. The rule is uniform across all ranking
// tables.
func (s TableState) Toggle(key ranking.Key) TableState {
	if key == s.Key {
		if s.Dir == ranking.Desc {
			s.Dir = ranking.Asc
		} else {
			s.Dir = ranking.Desc
		}
		return s
	}
	return TableState{Key: key, Dir: ranking.Desc}
}

// Table drives an unpaginated ranking table entirely in memory. It sorts with
// the exact comparator the ranking service uses, so a client-sorted table and
// a server-sorted page never drift apart. Server-paginated tables must
// re-request through the API instead.
type Table[T any] struct {
	state TableState
	sort  func([]T, ranking.Key, ranking.Direction) ([]T, error)
	items []T
}

func NewTable[T any](defaultKey ranking.Key, sort func([]T, ranking.Key, ranking.Direction) ([]T, error), items []T) *Table[T] {
	return &Table[T]{state: NewTableState(defaultKey), sort: sort, items: items}
}

// Click toggles the table's sort state for the given column.
func (t *Table[T]) Click(key ranking.Key) {
	t.state = t.state.Toggle(key)
}

// State exposes the current sort state for rendering (icons, highlighting).
func (t *Table[T]) State() TableState {
	return t.state
}

// SetItems replaces the backing data, keeping the sort state.
func (t *Table[T]) SetItems(items []T) {
	t.items = items
}

// Rows returns the full set ordered by the current state.
func (t *Table[T]) Rows() ([]T, error) {
	return t.sort(t.items, t.state.Key, t.state.Dir)
}
