package todo

// Action is a state transition the store knows how to apply. Loop-level
// commands such as save and quit are not actions; they never touch the lists.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionTransfer
	ActionToggleFocus
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionTransfer:
		return "transfer"
	case ActionToggleFocus:
		return "toggle_focus"
	default:
		return "unknown"
	}
}

// Apply performs a single transition and reports whether the store changed.
func (s *Store) Apply(a Action) bool {
	switch a {
	case ActionMoveUp:
		before := s.Cursor(s.focus)
		s.MoveSelectionUp()
		return s.Cursor(s.focus) != before
	case ActionMoveDown:
		before := s.Cursor(s.focus)
		s.MoveSelectionDown()
		return s.Cursor(s.focus) != before
	case ActionTransfer:
		return s.Transfer()
	case ActionToggleFocus:
		s.ToggleFocus()
		return true
	default:
		return false
	}
}
