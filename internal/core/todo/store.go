package todo

import "slices"

// list is one ordered sequence of titles plus its selection cursor.
type list struct {
	titles []string
	cursor int
}

// take removes the selected title and reclamps the cursor so it stays inside
// the shortened list (or at 0 once the list is empty). Returns false without
// touching anything when the cursor does not address a title.
func (l *list) take() (string, bool) {
	if l.cursor < 0 || l.cursor >= len(l.titles) {
		return "", false
	}

	title := l.titles[l.cursor]
	l.titles = slices.Delete(l.titles, l.cursor, l.cursor+1)

	if l.cursor >= len(l.titles) {
		l.cursor = max(len(l.titles)-1, 0)
	}
	return title, true
}

// Store owns both task lists, their cursors and the current focus. It is
// not safe for concurrent use; the UI loop is its only owner.
type Store struct {
	pending   list
	completed list
	focus     Focus
}

// New creates a store seeded from snap with focus on the pending list and
// both cursors at the top. The snapshot slices are copied.
func New(snap Snapshot) *Store {
	return &Store{
		pending:   list{titles: slices.Clone(snap.Pending)},
		completed: list{titles: slices.Clone(snap.Completed)},
		focus:     FocusPending,
	}
}

func (s *Store) list(f Focus) *list {
	if f == FocusCompleted {
		return &s.completed
	}
	return &s.pending
}

// Focus returns the list that currently has focus.
func (s *Store) Focus() Focus {
	return s.focus
}

// Titles returns a copy of the titles in the given list.
func (s *Store) Titles(f Focus) []string {
	return slices.Clone(s.list(f).titles)
}

// Cursor returns the selection cursor of the given list.
func (s *Store) Cursor(f Focus) int {
	return s.list(f).cursor
}

// Len returns the number of titles in the given list.
func (s *Store) Len(f Focus) int {
	return len(s.list(f).titles)
}

// Selected returns the title under the focused cursor, if any.
func (s *Store) Selected() (string, bool) {
	l := s.list(s.focus)
	if l.cursor < 0 || l.cursor >= len(l.titles) {
		return "", false
	}
	return l.titles[l.cursor], true
}

// Snapshot returns a copy of both lists.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Pending:   slices.Clone(s.pending.titles),
		Completed: slices.Clone(s.completed.titles),
	}
}

// MoveSelectionUp moves the focused cursor one row up.
func (s *Store) MoveSelectionUp() {
	l := s.list(s.focus)
	l.cursor = MoveUp(l.cursor)
}

// MoveSelectionDown moves the focused cursor one row down.
func (s *Store) MoveSelectionDown() {
	l := s.list(s.focus)
	l.cursor = MoveDown(l.cursor, len(l.titles))
}

// ToggleFocus switches between the pending and completed lists. Neither list
// nor cursor is modified.
func (s *Store) ToggleFocus() {
	s.focus = s.focus.Toggle()
}

// CompleteCurrent moves the selected pending task to the end of the
// completed list. Returns false when there is nothing selected.
func (s *Store) CompleteCurrent() bool {
	return transfer(&s.pending, &s.completed)
}

// ReopenCurrent moves the selected completed task to the end of the pending
// list. Returns false when there is nothing selected.
func (s *Store) ReopenCurrent() bool {
	return transfer(&s.completed, &s.pending)
}

// Transfer moves the selected task of the focused list to the other list.
func (s *Store) Transfer() bool {
	if s.focus == FocusCompleted {
		return s.ReopenCurrent()
	}
	return s.CompleteCurrent()
}

// transfer appends the selected title of src to the tail of dst. The
// destination cursor is left alone.
func transfer(src, dst *list) bool {
	title, ok := src.take()
	if !ok {
		return false
	}
	dst.titles = append(dst.titles, title)
	return true
}
