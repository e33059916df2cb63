package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/cadence/internal/core/styles"
)

const defaultDocWidth = 80

type DocCmd struct {
	flags *Flags

	// flags
	raw bool
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Documentation",
		Description: `Reference documentation for cadence.

Use 'cadence doc cadences' to see how to write a task's cadence and how
missed occurrences pile up.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without terminal styling",
				Destination: &cmd.raw,
			},
		},
		Commands: []*cli.Command{
			cmd.cadencesCmd(),
		},
	})
	return app
}

func (cmd *DocCmd) cadencesCmd() *cli.Command {
	return &cli.Command{
		Name:  "cadences",
		Usage: "Show the cadence guide",
		Action: func(_ context.Context, c *cli.Command) error {
			return cmd.print(c.Root().Writer, cadencesGuide)
		},
	}
}

// print renders markdown for a terminal, or writes it as-is when w is not
// one or --raw is set.
func (cmd *DocCmd) print(w io.Writer, markdown string) error {
	f, ok := w.(*os.File)
	if cmd.raw || !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, markdown)
		return err
	}

	width := defaultDocWidth
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < width {
		width = cols
	}

	palette, _ := styles.GetPalette(styles.DefaultTheme)
	if cmd.flags.Config != nil {
		palette = cmd.flags.Config.Palette()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle(palette)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

const cadencesGuide = `# Cadences

A cadence says how often a task comes up. Cadences are not case sensitive.

| Cadence | Example | Comes up |
|---|---|---|
| daily | ` + "`daily`" + ` | every day |
| weekly | ` + "`weekly`" + ` | every time a new week starts |
| monthly | ` + "`monthly`" + ` | every time a new month starts |
| yearly | ` + "`yearly`" + ` | every time a new year starts |
| weekday | ` + "`thursday`" + ` | every Thursday |
| date | ` + "`14/Feb/2027`" + ` | once, on that date |
| day of the year | ` + "`14/Feb`" + ` | every year on that day |

Month names may be short (` + "`Feb`" + `) or long (` + "`February`" + `).
The day a week starts on is set with ` + "`accrual.week_start`" + ` in the config file.
A task on 29 February only comes up in leap years.

## Catching up

Tasks pile up while cadence is not run. If a daily task is missed for three
days, the next run shows it three times:

` + "```" + `
Tasks you must do sometime today:
  water plants (x3)
` + "```" + `

Each ` + "`cadence task complete`" + ` clears one occurrence.

## Counts

` + "`cadence task add <name> <cadence> [count]`" + ` takes an optional count: the
total number of times the task comes up, including the first. Once the count
is used up and the last occurrence is completed, the task is removed. A task
on a single date is removed as soon as it is completed.

` + "```" + `
cadence task add "physio exercises" monday 6
cadence task add "renew passport" 02/Mar/2027
cadence task add "water plants" daily infinity
` + "```" + `
`
