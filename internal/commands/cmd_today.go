package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/cadence/internal/core/agenda"
)

type TodayCmd struct {
	flags *Flags
}

// NewTodayCmd creates a new today command
func NewTodayCmd(flags *Flags) *TodayCmd {
	return &TodayCmd{flags: flags}
}

// Register adds the today command to the application
func (cmd *TodayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "today",
		Usage:     "Show what is due",
		UsageText: "cadence today",
		Description: `Greets you with today's date and lists every task that still has
occurrences to do, grouped by whether it must be done today, this week,
this month or this year.

This is also what runs when cadence is called without a command.`,
		Action: cmd.Run,
	})

	return app
}

// Run prints the daily overview. It is also the root command's default action.
func (cmd *TodayCmd) Run(ctx context.Context, c *cli.Command) error {
	view, err := cmd.flags.Tracker.Today(ctx)
	if err != nil {
		return fmt.Errorf("today: %w", err)
	}

	cfg := cmd.flags.Config
	return agenda.Render(c.Root().Writer, view, agenda.Options{
		ShowRemaining: cfg.Display.ShowRemaining,
		CatchUpDays:   cfg.Display.CatchUpDays,
		Palette:       cfg.Palette(),
	})
}

// RootAction shows what is due when no subcommand is given and rejects any
// leftover argument as an unknown command.
func (cmd *TodayCmd) RootAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("%w: %q. Run 'cadence --help' for usage", ErrUnknownCommand, c.Args().First())
	}
	return cmd.Run(ctx, c)
}
