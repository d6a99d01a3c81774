package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the task file path from the event context into the log
// event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if path := GetTaskFile(ctx); path != "" {
		e.Str("task_file", path)
	}
}
