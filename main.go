package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/dolist/internal/commands"
	"github.com/hay-kot/dolist/internal/core/config"
	"github.com/hay-kot/dolist/internal/core/styles"
	"github.com/hay-kot/dolist/pkg/logutils"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version string
	commit  string
)

// versionString reports the linker-provided version, falling back to what
// the toolchain embedded in the binary.
func versionString() string {
	v, rev := version, commit

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" {
			v = info.Main.Version
		}
		if rev == "" {
			rev = buildSetting(info, "vcs.revision")
		}
	}

	if v == "" || v == "(devel)" {
		v = "dev"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev == "" {
		return v
	}
	return v + "+" + rev
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	tuiCmd := commands.NewTuiCmd(flags)

	app := &cli.Command{
		Name:      "dolist",
		Usage:     "Track pending and completed tasks in a plain text file",
		UsageText: "dolist [global options] <file>",
		Description: `Opens <file> and shows its tasks as two lists, pending and completed.

Lines starting with "TODO: " are pending tasks, lines starting with "DONE: "
are completed tasks, everything else is ignored.

Keys: w/s move, enter moves the task to the other list, tab switches lists,
e saves, q quits.`,
		Version: versionString(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DOLIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("DOLIST_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DOLIST_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "file written on save (overrides output_path from config)",
				Sources:     cli.EnvVars("DOLIST_OUTPUT"),
				Destination: &flags.Output,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Validation ensures the theme exists.
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("theme", cfg.Theme).
				Str("output", flags.OutputPath()).
				Msg("config loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: tuiCmd.Run,
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitCode = 1
	}

	os.Exit(exitCode)
}
