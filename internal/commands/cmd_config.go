package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cadence/internal/core/config"
	"github.com/colonyops/cadence/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "cadence config validate [options]",
				Description: "Validates the configuration file and checks that the organiser file location is usable.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})

	return app
}

// validationIssue is one problem found by config validate.
type validationIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	issues := collectIssues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))

	if cmd.format == "json" {
		out := struct {
			Valid     bool              `json:"valid"`
			StoreFile string            `json:"store_file"`
			Issues    []validationIssue `json:"issues,omitempty"`
		}{
			Valid:     len(issues) == 0,
			StoreFile: cmd.flags.Config.StoreFile,
			Issues:    issues,
		}
		if err := iojson.WriteLine(c.Root().Writer, out); err != nil {
			return err
		}
	} else {
		printIssues(c.Root().Writer, cmd.flags.Config, issues)
	}

	if len(issues) > 0 {
		return fmt.Errorf("%w: %d error(s) found", ErrInvalidConfig, len(issues))
	}
	return nil
}

func collectIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func printIssues(w io.Writer, cfg *config.Config, issues []validationIssue) {
	_, _ = fmt.Fprintf(w, "store file: %s\n", cfg.StoreFile)

	for _, issue := range issues {
		if issue.Field != "" {
			_, _ = fmt.Fprintf(w, "✗ %s: %s\n", issue.Field, issue.Message)
			continue
		}
		_, _ = fmt.Fprintf(w, "✗ %s\n", issue.Message)
	}

	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, "✓ Configuration is valid")
	}
}
