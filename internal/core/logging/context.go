package logging

import "context"

type contextKey string

const taskFileKey contextKey = "task_file"

// WithTaskFile adds the path of the task file being edited to the context.
func WithTaskFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, taskFileKey, path)
}

// GetTaskFile retrieves the task file path from the context.
// Returns empty string if not present.
func GetTaskFile(ctx context.Context) string {
	if p, ok := ctx.Value(taskFileKey).(string); ok {
		return p
	}
	return ""
}
