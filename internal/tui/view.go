package tui

import (
	"fmt"

	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/todo"
	"github.com/hay-kot/dolist/internal/tui/imui"
)

const rule = "-------------"

// header names both lists with the focused one in brackets.
func header(focus todo.Focus, toggleKey string) string {
	hint := ""
	if toggleKey != "" {
		hint = fmt.Sprintf(" <%s>", toggleKey)
	}

	if focus == todo.FocusCompleted {
		return " TODO [DONE]" + hint
	}
	return "[TODO] DONE " + hint
}

func rowPrefix(focus todo.Focus) string {
	if focus == todo.FocusCompleted {
		return "- [x] "
	}
	return "- [ ] "
}

// visibleRange returns the half-open range of list indexes drawn when only
// rows rows fit, scrolled just far enough to keep cursor on screen. A rows
// value of 0 or less means everything fits.
func visibleRange(cursor, n, rows int) (from, to int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	from = max(cursor-rows+1, 0)
	return from, min(from+rows, n)
}

// drawFrame renders the focused list of s as one complete frame, showing at
// most rows list entries.
func drawFrame(ui *imui.UI, s *todo.Store, origin config.Origin, toggleKey string, rows int) {
	focus := s.Focus()
	cursor := s.Cursor(focus)
	titles := s.Titles(focus)

	ui.Begin(origin.Row, origin.Col)

	ui.Label(header(focus, toggleKey), imui.Regular)
	ui.Label(rule, imui.Regular)

	ui.BeginList(cursor)
	prefix := rowPrefix(focus)
	from, to := visibleRange(cursor, len(titles), rows)
	for i := from; i < to; i++ {
		ui.ListElement(prefix+titles[i], i)
	}
	ui.EndList()

	ui.End()
}
