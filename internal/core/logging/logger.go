// Package logging provides component loggers on top of the global zerolog
// logger.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier. Events logged
// with a context carrying a task file (see WithTaskFile) get a task_file
// field.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
