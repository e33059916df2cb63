package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cadence/internal/core/organiser"
	"github.com/colonyops/cadence/internal/core/recurrence"
)

func TestTaskAdd(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "task", "add", "water plants", "daily")
	assert.Equal(t, "Added \"water plants\" (daily).\n", out)

	out = env.mustRun(t, "tasks", "add", "physio", "Monday", "6")
	assert.Equal(t, "Added \"physio\" (monday, 5 more after this one).\n", out)

	o, _, err := env.store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, o.Tasks, 2)
	assert.Equal(t, recurrence.Finite(5), o.Tasks[1].Budget)
}

func TestTaskAdd_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "task", "add", "x", "daily")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "too few", args: []string{"task", "add", "y"}, wantErr: ErrInvalidArgumentCount},
		{name: "too many", args: []string{"task", "add", "y", "daily", "3", "extra"}, wantErr: ErrInvalidArgumentCount},
		{name: "duplicate", args: []string{"task", "add", "x", "weekly"}, wantErr: organiser.ErrDuplicateTaskName},
		{name: "bad cadence", args: []string{"task", "add", "y", "hourly"}, wantErr: recurrence.ErrInvalidCadence},
		{name: "zero count", args: []string{"task", "add", "y", "daily", "0"}, wantErr: recurrence.ErrInvalidRecursionCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskComplete(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "task", "add", "dishes", "daily")
	env.clock.AdvanceDays(2)

	out := env.mustRun(t, "task", "done", "dishes")
	assert.Equal(t, "Completed \"dishes\". 2 still to do.\n", out)

	env.mustRun(t, "task", "finish", "dishes")
	out = env.mustRun(t, "task", "complete", "dishes")
	assert.Equal(t, "Completed \"dishes\".\n", out)

	_, err := env.run(t, "task", "complete", "dishes")
	assert.ErrorIs(t, err, organiser.ErrNothingToComplete)
}

func TestTaskComplete_Prunes(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "task", "add", "dentist", "3/Nov/2026")

	out := env.mustRun(t, "task", "complete", "dentist")
	assert.Contains(t, out, "has been removed")

	_, err := env.run(t, "task", "complete", "dentist")
	assert.ErrorIs(t, err, organiser.ErrTaskNotFound)
}

func TestTaskComplete_ArgumentCount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "task", "complete")
	assert.ErrorIs(t, err, ErrInvalidArgumentCount)

	_, err = env.run(t, "task", "remove", "a", "b")
	assert.ErrorIs(t, err, ErrInvalidArgumentCount)
}

func TestTaskRemove(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "task", "add", "a", "daily")
	env.mustRun(t, "task", "add", "b", "weekly")

	out := env.mustRun(t, "task", "delete", "a")
	assert.Equal(t, "Removed \"a\".\n", out)

	_, err := env.run(t, "task", "remove", "a")
	assert.ErrorIs(t, err, organiser.ErrTaskNotFound)

	o, _, err := env.store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, o.Tasks, 1)
	assert.Equal(t, "b", o.Tasks[0].Name)
}

func TestTaskList(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "task", "add", "clean kitchen", "weekly", "3")
	env.mustRun(t, "task", "add", "clean bathroom", "monthly")
	env.mustRun(t, "task", "add", "pay rent", "monthly")
	env.mustRun(t, "task", "complete", "pay rent")

	out := env.mustRun(t, "task", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"NAME", "CADENCE", "DUE", "REMAINING"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[3], "pay rent")
	assert.Equal(t, []string{"0", "infinity"}, strings.Fields(lines[3])[3:])

	out = env.mustRun(t, "task", "ls", "--match", "clean *", "--json")
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, map[string]any{
		"name":        "clean kitchen",
		"cadence":     "weekly",
		"kind":        "Weekly",
		"outstanding": float64(1),
		"remaining":   float64(2),
	}, first)
}

func TestTaskImport(t *testing.T) {
	env := newTestEnv(t)

	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "bins", "cadence": "thursday"},
		{"name": "course", "cadence": "weekly", "count": 4}
	]`), 0o644))

	out := env.mustRun(t, "task", "import", "-f", path)
	assert.Equal(t, "Imported 2 task(s).\n", out)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name": "bins", "cadence": "daily"}]`), 0o644))

	_, err := env.run(t, "task", "import", "--file", bad)
	assert.ErrorIs(t, err, organiser.ErrDuplicateTaskName)
}

func TestTask_UnknownSubcommand(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "task", "snooze", "x")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = env.run(t, "task")
	assert.ErrorIs(t, err, ErrMissingSubcommand)
}
