package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/logging"
	"github.com/hay-kot/dolist/internal/core/todo"
)

func TestTaskFileArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "one path", args: []string{"tasks.txt"}, want: "tasks.txt"},
		{name: "missing", args: nil, wantErr: ErrNoTaskFile},
		{name: "empty string", args: []string{""}, wantErr: ErrNoTaskFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := taskFileArg(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskFileArg_TooMany(t *testing.T) {
	_, err := taskFileArg([]string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2 arguments")
}

func TestTuiCmd_Prepare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks")
	require.NoError(t, os.WriteFile(path, []byte("TODO: a\nDONE: b\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.OutputPath = filepath.Join(dir, "out")
	cmd := NewTuiCmd(&Flags{Config: &cfg})

	ctx, deps, err := cmd.prepare(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Equal(t, path, logging.GetTaskFile(ctx))
	assert.Equal(t, []string{"a"}, deps.Store.Titles(todo.FocusPending))
	assert.Equal(t, []string{"b"}, deps.Store.Titles(todo.FocusCompleted))
	assert.Equal(t, cfg.OutputPath, deps.Output.Path())
	assert.Same(t, &cfg, deps.Config)
}

func TestTuiCmd_Prepare_OutputFlagWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := config.DefaultConfig()
	cmd := NewTuiCmd(&Flags{Config: &cfg, Output: path})

	_, deps, err := cmd.prepare(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, path, deps.Output.Path())
}

func TestTuiCmd_Prepare_MissingFile(t *testing.T) {
	cmd := NewTuiCmd(&Flags{})

	_, _, err := cmd.prepare(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "load tasks")
}

func TestTuiCmd_Prepare_NoArgument(t *testing.T) {
	cmd := NewTuiCmd(&Flags{})

	_, _, err := cmd.prepare(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoTaskFile)
}

func TestTuiCmd_Prepare_DefaultsWithoutConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks")
	require.NoError(t, os.WriteFile(path, []byte("TODO: x\n"), 0o644))

	_, deps, err := NewTuiCmd(&Flags{}).prepare(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputPath, deps.Output.Path())
	assert.Equal(t, config.DefaultConfig().Origin, deps.Config.Origin)
}

func TestFlags_OutputPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputPath = "from-config"

	assert.Equal(t, "from-config", (&Flags{Config: &cfg}).OutputPath())
	assert.Equal(t, "from-flag", (&Flags{Config: &cfg, Output: "from-flag"}).OutputPath())
	assert.Equal(t, config.DefaultOutputPath, (&Flags{}).OutputPath())
}

func TestDefaultLogFile_UsesXDGState(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/state", "dolist", "dolist.log"), DefaultLogFile())
}

func TestTuiCmd_Run_StartupErrors(t *testing.T) {
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })

	path := filepath.Join(t.TempDir(), "tasks")
	require.NoError(t, os.WriteFile(path, []byte("TODO: a\n"), 0o644))

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing argument", args: []string{"dolist"}, wantErr: ErrNoTaskFile},
		{name: "not a terminal", args: []string{"dolist", path}, wantErr: ErrNotTerminal},
		{name: "unreadable file", args: []string{"dolist", path + ".missing"}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &cli.Command{
				Name:   "dolist",
				Action: NewTuiCmd(&Flags{}).Run,
			}

			err := app.Run(context.Background(), tt.args)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
