package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(title, description string) (bool, error)

type ResetCmd struct {
	flags   *Flags
	confirm ConfirmFunc

	// flags
	interactive bool
}

// NewResetCmd creates a new reset command
func NewResetCmd(flags *Flags) *ResetCmd {
	return &ResetCmd{flags: flags, confirm: huhConfirm}
}

// WithConfirm replaces the interactive prompt.
func (cmd *ResetCmd) WithConfirm(fn ConfirmFunc) *ResetCmd {
	cmd.confirm = fn
	return cmd
}

// Register adds the reset command to the application
func (cmd *ResetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "reset",
		Aliases:   []string{"clear"},
		Usage:     "Delete every task and start over",
		UsageText: "cadence reset [--interactive]",
		Description: `Replaces the organiser file with an empty one dated today.

The existing file is not read first, so this also recovers from a file that
can no longer be parsed. Use --interactive to be asked before anything is
overwritten.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "interactive",
				Aliases:     []string{"i"},
				Usage:       "ask for confirmation before resetting",
				Destination: &cmd.interactive,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ResetCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	if c.Args().Present() {
		return fmt.Errorf("%w: %q takes no arguments", ErrInvalidArgumentCount, c.Name)
	}

	if cmd.interactive {
		ok, err := cmd.confirm("Reset the organiser?", "Every task will be deleted. This cannot be undone.")
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ok = false
			} else {
				return fmt.Errorf("confirm reset: %w", err)
			}
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "Reset cancelled.")
			return nil
		}
	}

	if err := cmd.flags.Tracker.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	_, _ = fmt.Fprintln(w, "The manager file has been reset to the default state.")
	return nil
}

func huhConfirm(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Reset").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}
