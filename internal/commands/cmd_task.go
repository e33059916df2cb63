package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/cadence/internal/core/logging"
	"github.com/colonyops/cadence/internal/core/organiser"
	"github.com/colonyops/cadence/internal/core/recurrence"
	"github.com/colonyops/cadence/internal/tracker"
	"github.com/colonyops/cadence/pkg/iojson"
)

// TaskCmd implements the task command group.
type TaskCmd struct {
	flags *Flags

	// list flags
	listMatch string
	listJSON  bool

	// import flags
	importReader iojson.FileReader[[]tracker.ImportEntry]
}

// NewTaskCmd creates a new task command.
func NewTaskCmd(flags *Flags) *TaskCmd {
	return &TaskCmd{flags: flags}
}

// Register adds the task command to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "task",
		Aliases: []string{"tasks"},
		Usage:   "Add, complete and remove tasks",
		Description: `Task commands change the list of recurring tasks.

Cadences are daily, weekly, monthly, yearly, a weekday name such as
"thursday", a date such as "14/Feb/2027", or a day of the year such as
"14/Feb". Run 'cadence doc cadences' for the full guide.

Examples:
  cadence task add "water plants" daily
  cadence task add "physio exercises" monday 6
  cadence task complete "water plants"
  cadence task list --match "clean *"`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.completeCmd(),
			cmd.removeCmd(),
			cmd.listCmd(),
			cmd.importCmd(),
		},
		Action: func(_ context.Context, c *cli.Command) error {
			if c.Args().Present() {
				return fmt.Errorf("%w: %q is not a sub-command of %q", ErrUnknownCommand, c.Args().First(), c.Name)
			}
			return fmt.Errorf("%w: %q", ErrMissingSubcommand, c.Name)
		},
	})

	return app
}

func (cmd *TaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "cadence task add <name> <cadence> [count]",
		Description: `Adds a task that is due once straight away.

count is the total number of times the task should come up, including
this first time. Leave it out, or pass "infinity", for a task that never
runs out.`,
		Action: cmd.runAdd,
	}
}

func (cmd *TaskCmd) completeCmd() *cli.Command {
	return &cli.Command{
		Name:          "complete",
		Aliases:       []string{"done", "finish"},
		Usage:         "Mark one occurrence of a task done",
		UsageText:     "cadence task complete <name>",
		ShellComplete: TaskNameCompleter(cmd.flags),
		Action:        cmd.runComplete,
	}
}

func (cmd *TaskCmd) removeCmd() *cli.Command {
	return &cli.Command{
		Name:          "remove",
		Aliases:       []string{"delete"},
		Usage:         "Delete a task",
		UsageText:     "cadence task remove <name>",
		ShellComplete: TaskNameCompleter(cmd.flags),
		Action:        cmd.runRemove,
	}
}

func (cmd *TaskCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List every task",
		UsageText: "cadence task list [--match <glob>] [--json]",
		Description: `Lists every task, including those with nothing due.

Use --match to filter names with a glob pattern and --json for one JSON
object per line.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "only list tasks whose name matches the glob",
				Destination: &cmd.listMatch,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.listJSON,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *TaskCmd) importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Add tasks from JSON",
		UsageText: "cadence task import [-f <file>]",
		Description: `Adds every task in a JSON array. Each entry has a name, a cadence and
an optional count, with the same meaning as 'cadence task add'.

Nothing is saved unless every entry can be added.

Example:
  echo '[{"name": "bins", "cadence": "thursday"}]' | cadence task import`,
		Flags: []cli.Flag{
			cmd.importReader.Flag(),
		},
		Action: cmd.runImport,
	}
}

func (cmd *TaskCmd) runAdd(ctx context.Context, c *cli.Command) error {
	args := c.Args()
	if args.Len() < 2 || args.Len() > 3 {
		return fmt.Errorf("%w: %q requires a name, a cadence and an optional count", ErrInvalidArgumentCount, c.Name)
	}

	task, err := cmd.flags.Tracker.Add(logging.WithCommand(ctx, c.Name), args.Get(0), args.Get(1), args.Get(2))
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Added %q (%s).\n", task.Name, describe(task))
	return nil
}

func (cmd *TaskCmd) runComplete(ctx context.Context, c *cli.Command) error {
	name, err := singleArg(c)
	if err != nil {
		return err
	}

	task, pruned, err := cmd.flags.Tracker.Complete(logging.WithCommand(ctx, c.Name), name)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	w := c.Root().Writer
	switch {
	case pruned:
		_, _ = fmt.Fprintf(w, "Completed %q. It will not come up again, so it has been removed.\n", task.Name)
	case task.Outstanding > 0:
		_, _ = fmt.Fprintf(w, "Completed %q. %d still to do.\n", task.Name, task.Outstanding)
	default:
		_, _ = fmt.Fprintf(w, "Completed %q.\n", task.Name)
	}
	return nil
}

func (cmd *TaskCmd) runRemove(ctx context.Context, c *cli.Command) error {
	name, err := singleArg(c)
	if err != nil {
		return err
	}

	task, err := cmd.flags.Tracker.Remove(logging.WithCommand(ctx, c.Name), name)
	if err != nil {
		return fmt.Errorf("remove task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Removed %q.\n", task.Name)
	return nil
}

// taskInfo is the JSON output format for cadence task list --json.
type taskInfo struct {
	Name        string            `json:"name"`
	Cadence     string            `json:"cadence"`
	Kind        recurrence.Kind   `json:"kind"`
	Outstanding uint              `json:"outstanding"`
	Remaining   recurrence.Budget `json:"remaining"`
}

func (cmd *TaskCmd) runList(ctx context.Context, c *cli.Command) error {
	if c.Args().Present() {
		return fmt.Errorf("%w: %q takes no arguments", ErrInvalidArgumentCount, c.Name)
	}

	tasks, err := cmd.flags.Tracker.List(ctx, cmd.listMatch)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	out := c.Root().Writer

	if cmd.listJSON {
		for _, t := range tasks {
			info := taskInfo{
				Name:        t.Name,
				Cadence:     t.Rule.String(),
				Kind:        t.Rule.Kind(),
				Outstanding: t.Outstanding,
				Remaining:   t.Budget,
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCADENCE\tDUE\tREMAINING")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.Name, t.Rule, t.Outstanding, t.Budget)
	}
	return w.Flush()
}

func (cmd *TaskCmd) runImport(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.importReader.Read()
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	added, err := cmd.flags.Tracker.Import(ctx, entries)
	if err != nil {
		return fmt.Errorf("import tasks: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Imported %d task(s).\n", len(added))
	return nil
}

func singleArg(c *cli.Command) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("%w: %q requires exactly 1 argument", ErrInvalidArgumentCount, c.Name)
	}
	return c.Args().First(), nil
}

func describe(t organiser.Task) string {
	if n, ok := t.Budget.Remaining(); ok {
		return fmt.Sprintf("%s, %d more after this one", t.Rule, n)
	}
	return t.Rule.String()
}
