package logging

import "context"

type contextKey string

const (
	taskKey    contextKey = "task"
	commandKey contextKey = "command"
)

// WithTask adds a task name to the context.
func WithTask(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, taskKey, name)
}

// WithCommand adds the running command's name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetTask retrieves the task name from the context.
// Returns empty string if not present.
func GetTask(ctx context.Context) string {
	if name, ok := ctx.Value(taskKey).(string); ok {
		return name
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
