// Package tui implements the Bubble Tea loop for dolist: one key per
// update, one full immediate-mode frame per view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/logging"
	"github.com/hay-kot/dolist/internal/core/styles"
	"github.com/hay-kot/dolist/internal/core/todo"
	"github.com/hay-kot/dolist/internal/tui/canvas"
	"github.com/hay-kot/dolist/internal/tui/imui"
)

// footerHeight is the blank spacer, status line and help line under the frame.
const footerHeight = 3

// Saver persists a snapshot of the task lists.
type Saver interface {
	Save(snap todo.Snapshot) error
	Path() string
}

// Deps holds the collaborators of the TUI.
type Deps struct {
	Config *config.Config
	Store  *todo.Store
	Output Saver
}

type status struct {
	text string
	err  bool
}

// Model is the Bubble Tea model. It is the only owner of the task store.
type Model struct {
	store    *todo.Store
	output   Saver
	origin   config.Origin
	keys     KeyMap
	help     help.Model
	status   status
	width    int
	height   int
	quitting bool
	log      zerolog.Logger
}

// New creates the model.
func New(deps Deps) Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	return Model{
		store:  deps.Store,
		output: deps.Output,
		origin: deps.Config.Origin,
		keys:   NewKeyMap(deps.Config.Keys),
		help:   h,
		log:    logging.Component("tui"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every key press applies at most one
// transition; saving happens synchronously here.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Resolve(msg)

	switch cmd {
	case CommandNone:
		return m, nil
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandSave:
		m.save()
		return m, nil
	}

	m.status = status{}
	action := cmd.StoreAction()
	changed := m.store.Apply(action)
	m.log.Debug().
		Str("key", msg.String()).
		Stringer("action", action).
		Bool("changed", changed).
		Stringer("focus", m.store.Focus()).
		Msg("applied")

	return m, nil
}

// save writes the current lists to the output file. A failure is reported
// in the status line and the session continues.
func (m *Model) save() {
	snap := m.store.Snapshot()
	path := m.output.Path()

	if err := m.output.Save(snap); err != nil {
		m.log.Error().Err(err).Str("output", path).Msg("save failed")
		m.status = status{text: fmt.Sprintf("save failed: %v", err), err: true}
		return
	}

	m.log.Info().
		Str("output", path).
		Int("pending", len(snap.Pending)).
		Int("completed", len(snap.Completed)).
		Msg("saved tasks")
	m.status = status{text: fmt.Sprintf("saved %d tasks to %s", snap.Len(), path)}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	c := canvas.New(m.width, m.canvasHeight(), styles.RegularStyle, styles.HighlightStyle)
	c.Clear()
	drawFrame(imui.New(c), m.store, m.origin, m.keys.ToggleKeyName(), m.listRows())

	var b strings.Builder
	b.WriteString(c.Render())
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) canvasHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-footerHeight, 1)
}

// listRows is the number of list entries that fit under the header and
// rule. Zero means the height is unknown and nothing is scrolled.
func (m Model) listRows() int {
	h := m.canvasHeight()
	if h == 0 {
		return 0
	}
	return max(h-m.origin.Row-2, 1)
}

func (m Model) statusLine() string {
	if m.status.text == "" {
		return ""
	}
	if m.status.err {
		return styles.StatusErrorStyle.Render(m.status.text)
	}
	return styles.StatusOKStyle.Render(m.status.text)
}

// Snapshot returns the current task lists.
func (m Model) Snapshot() todo.Snapshot {
	return m.store.Snapshot()
}
