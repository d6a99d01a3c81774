package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/logging"
	"github.com/hay-kot/dolist/internal/core/todo"
	"github.com/hay-kot/dolist/internal/store/textfile"
	"github.com/hay-kot/dolist/internal/tui"
)

var (
	// ErrNoTaskFile is returned when the task file argument is missing.
	ErrNoTaskFile = errors.New("file path not provided")
	// ErrNotTerminal is returned when stdin is not an interactive terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI for the task file named by the single positional
// argument.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	ctx, deps, err := cmd.prepare(ctx, c.Args().Slice())
	if err != nil {
		return err
	}

	if !stdinIsTerminal() {
		return ErrNotTerminal
	}

	log := logging.Component("cmd")

	p := tea.NewProgram(tui.New(deps), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := finalModel.(tui.Model); ok {
		snap := model.Snapshot()
		log.Info().Ctx(ctx).
			Int("pending", len(snap.Pending)).
			Int("completed", len(snap.Completed)).
			Msg("session ended")
	}

	return nil
}

// prepare validates arguments and loads the task file. Everything that can
// fail before the UI starts happens here.
func (cmd *TuiCmd) prepare(ctx context.Context, args []string) (context.Context, tui.Deps, error) {
	path, err := taskFileArg(args)
	if err != nil {
		return ctx, tui.Deps{}, err
	}

	cfg := cmd.flags.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	snap, err := textfile.New(path).Load()
	if err != nil {
		return ctx, tui.Deps{}, fmt.Errorf("load tasks: %w", err)
	}

	ctx = logging.WithTaskFile(ctx, path)
	log := logging.Component("cmd")
	log.Info().Ctx(ctx).
		Int("pending", len(snap.Pending)).
		Int("completed", len(snap.Completed)).
		Str("output", cmd.flags.OutputPath()).
		Msg("loaded tasks")

	return ctx, tui.Deps{
		Config: cfg,
		Store:  todo.New(snap),
		Output: textfile.New(cmd.flags.OutputPath()),
	}, nil
}

func taskFileArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoTaskFile
	case 1:
		if args[0] == "" {
			return "", ErrNoTaskFile
		}
		return args[0], nil
	default:
		return "", fmt.Errorf("expected one file path, got %d arguments", len(args))
	}
}
