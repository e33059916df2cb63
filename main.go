package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cadence/internal/commands"
	"github.com/colonyops/cadence/internal/core/calendar"
	"github.com/colonyops/cadence/internal/core/config"
	"github.com/colonyops/cadence/internal/core/logging"
	"github.com/colonyops/cadence/internal/store/jsonfile"
	"github.com/colonyops/cadence/internal/tracker"
	"github.com/colonyops/cadence/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "cadence",
		Usage:     "Keep track of recurring chores",
		UsageText: "cadence [global options] [command [command options]]",
		Description: `Cadence keeps a list of recurring tasks and works out what is due.

Each time it runs on a new day, every task gains the occurrences that came
due since the last run, so nothing is forgotten when you skip a few days.

Run 'cadence' with no arguments to see what is due.
Run 'cadence task add <name> <cadence>' to add a task.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CADENCE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("CADENCE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CADENCE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "store",
				Usage:       "path to the organiser file (overrides store_file in the config)",
				Sources:     cli.EnvVars("CADENCE_STORE"),
				Destination: &flags.StoreFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.StoreFile)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			store := jsonfile.NewOrganiserStore(cfg.StoreFile)
			flags.Tracker = tracker.NewService(store, calendar.RealClock{}, cfg.WeekStart(), log.Logger)

			logging.Component("cli").Debug().
				Str("version", version).
				Str("config", flags.ConfigPath).
				Str("store", cfg.StoreFile).
				Msg("starting")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	todayCmd := commands.NewTodayCmd(flags)

	app = todayCmd.Register(app)
	app = commands.NewTaskCmd(flags).Register(app)
	app = commands.NewResetCmd(flags).Register(app)
	app = commands.NewBackupCmd(flags).Register(app)
	app = commands.NewDocCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Show what is due when no subcommand is provided
	app.Action = todayCmd.RootAction

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
