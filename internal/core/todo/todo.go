// Package todo defines the two-list task model: pending and completed titles,
// a selection cursor per list, and which list currently has focus.
package todo

// Focus selects which list is visible and receives navigation.
type Focus int

const (
	FocusPending Focus = iota
	FocusCompleted
)

// Toggle returns the other focus.
func (f Focus) Toggle() Focus {
	if f == FocusPending {
		return FocusCompleted
	}
	return FocusPending
}

func (f Focus) String() string {
	switch f {
	case FocusPending:
		return "pending"
	case FocusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Snapshot is a plain copy of both lists, in display order. It is the value
// exchanged between the store, the codec and the file layer.
type Snapshot struct {
	Pending   []string
	Completed []string
}

// Len returns the total number of tasks across both lists.
func (s Snapshot) Len() int {
	return len(s.Pending) + len(s.Completed)
}

// MoveUp returns the cursor one row up, floored at 0.
func MoveUp(cursor int) int {
	if cursor <= 0 {
		return 0
	}
	return cursor - 1
}

// MoveDown returns the cursor one row down when a row exists below it,
// otherwise the cursor unchanged.
func MoveDown(cursor, length int) int {
	if cursor+1 < length {
		return cursor + 1
	}
	return cursor
}
