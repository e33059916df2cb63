package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type BackupCmd struct {
	flags *Flags
}

// NewBackupCmd creates a new backup command
func NewBackupCmd(flags *Flags) *BackupCmd {
	return &BackupCmd{flags: flags}
}

// Register adds the backup command to the application
func (cmd *BackupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "backup",
		Usage:     "Back up the organiser file (not yet available)",
		UsageText: "cadence backup",
		Action: func(_ context.Context, c *cli.Command) error {
			return fmt.Errorf("%w: %s", ErrNotImplemented, c.Name)
		},
	})

	return app
}
