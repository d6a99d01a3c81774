package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/todo"
	"github.com/hay-kot/dolist/pkg/tuitest"
)

func TestKeyMap_Resolve_Defaults(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{name: "q quits", msg: tuitest.KeyPress('q'), want: CommandQuit},
		{name: "ctrl+c quits", msg: tuitest.KeyCtrlC(), want: CommandQuit},
		{name: "e saves", msg: tuitest.KeyPress('e'), want: CommandSave},
		{name: "w moves up", msg: tuitest.KeyPress('w'), want: CommandUp},
		{name: "s moves down", msg: tuitest.KeyPress('s'), want: CommandDown},
		{name: "enter transfers", msg: tuitest.KeyEnter(), want: CommandTransfer},
		{name: "tab toggles focus", msg: tuitest.KeyTab(), want: CommandToggleFocus},
		{name: "unbound letter ignored", msg: tuitest.KeyPress('x'), want: CommandNone},
		{name: "uppercase is a different key", msg: tuitest.KeyPress('Q'), want: CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Resolve(tt.msg))
		})
	}
}

func TestKeyMap_Resolve_Remapped(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Up = []string{"k", "up"}
	keys.Down = []string{"j"}
	km := NewKeyMap(keys)

	assert.Equal(t, CommandUp, km.Resolve(tuitest.KeyPress('k')))
	assert.Equal(t, CommandUp, km.Resolve(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, CommandDown, km.Resolve(tuitest.KeyPress('j')))
	assert.Equal(t, CommandNone, km.Resolve(tuitest.KeyPress('w')))
}

func TestCommand_StoreAction(t *testing.T) {
	assert.Equal(t, todo.ActionMoveUp, CommandUp.StoreAction())
	assert.Equal(t, todo.ActionMoveDown, CommandDown.StoreAction())
	assert.Equal(t, todo.ActionTransfer, CommandTransfer.StoreAction())
	assert.Equal(t, todo.ActionToggleFocus, CommandToggleFocus.StoreAction())
	assert.Equal(t, todo.ActionNone, CommandSave.StoreAction())
	assert.Equal(t, todo.ActionNone, CommandQuit.StoreAction())
}

func TestKeyMap_Help(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keys)

	assert.Len(t, km.ShortHelp(), 6)
	assert.Equal(t, "q/ctrl+c", km.Quit.Help().Key)
	assert.Equal(t, "tab", km.ToggleKeyName())
}
