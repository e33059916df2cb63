package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cadence/internal/core/calendar"
	"github.com/colonyops/cadence/internal/core/config"
	"github.com/colonyops/cadence/internal/store/jsonfile"
	"github.com/colonyops/cadence/internal/tracker"
)

// testEnv shares one organiser file and clock across command runs.
type testEnv struct {
	flags *Flags
	clock *calendar.FakeClock
	store *jsonfile.OrganiserStore

	confirm ConfirmFunc
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.StoreFile = filepath.Join(t.TempDir(), config.StoreFileName)
	cfg.Display.Theme = "plain"

	store := jsonfile.NewOrganiserStore(cfg.StoreFile)
	clock := calendar.NewFakeClockOn(calendar.NewDate(2026, time.October, 19))

	return &testEnv{
		flags: &Flags{
			Config:  &cfg,
			Tracker: tracker.NewService(store, clock, time.Monday, zerolog.Nop()),
		},
		clock: clock,
		store: store,
		confirm: func(string, string) (bool, error) {
			return true, nil
		},
	}
}

// run builds a fresh application so flag destinations never leak between
// invocations, then runs it with args.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	today := NewTodayCmd(e.flags)

	app := &cli.Command{
		Name:      "cadence",
		Writer:    &out,
		ErrWriter: &errOut,
	}
	app = today.Register(app)
	app = NewTaskCmd(e.flags).Register(app)
	app = NewResetCmd(e.flags).WithConfirm(e.confirm).Register(app)
	app = NewBackupCmd(e.flags).Register(app)
	app = NewDocCmd(e.flags).Register(app)
	app = NewConfigCmd(e.flags).Register(app)
	app.Action = today.RootAction

	err := app.Run(context.Background(), append([]string{"cadence"}, args...))
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err)
	return out
}
