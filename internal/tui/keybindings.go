package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/todo"
)

// Command is what a key press asks the loop to do.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandSave
	CommandUp
	CommandDown
	CommandTransfer
	CommandToggleFocus
)

// StoreAction maps a command to the store transition it performs.
// Quit and save are loop-level and map to todo.ActionNone.
func (c Command) StoreAction() todo.Action {
	switch c {
	case CommandUp:
		return todo.ActionMoveUp
	case CommandDown:
		return todo.ActionMoveDown
	case CommandTransfer:
		return todo.ActionTransfer
	case CommandToggleFocus:
		return todo.ActionToggleFocus
	default:
		return todo.ActionNone
	}
}

// KeyMap holds the bindings for every command. It implements help.KeyMap.
type KeyMap struct {
	Quit        key.Binding
	Save        key.Binding
	Up          key.Binding
	Down        key.Binding
	Transfer    key.Binding
	ToggleFocus key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(k config.Keys) KeyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	return KeyMap{
		Quit:        bind(k.Quit, "quit"),
		Save:        bind(k.Save, "save"),
		Up:          bind(k.Up, "up"),
		Down:        bind(k.Down, "down"),
		Transfer:    bind(k.Transfer, "move"),
		ToggleFocus: bind(k.ToggleFocus, "switch list"),
	}
}

// Resolve maps a key press to a command. Unbound keys resolve to CommandNone.
func (km KeyMap) Resolve(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.Quit):
		return CommandQuit
	case key.Matches(msg, km.Save):
		return CommandSave
	case key.Matches(msg, km.Up):
		return CommandUp
	case key.Matches(msg, km.Down):
		return CommandDown
	case key.Matches(msg, km.Transfer):
		return CommandTransfer
	case key.Matches(msg, km.ToggleFocus):
		return CommandToggleFocus
	default:
		return CommandNone
	}
}

// ToggleKeyName is the first key bound to switching lists, used in the
// frame header.
func (km KeyMap) ToggleKeyName() string {
	if keys := km.ToggleFocus.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Transfer, km.ToggleFocus, km.Save, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.Transfer, km.ToggleFocus},
		{km.Save, km.Quit},
	}
}
