package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// TaskNameCompleter returns a ShellCompleteFunc that suggests task names as
// positional completions. Set this as the ShellComplete field on any
// cli.Command that accepts a task name as its argument.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func TaskNameCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Tracker == nil {
			return
		}

		names, err := flags.Tracker.Names(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, name := range names {
			_, _ = fmt.Fprintln(w, name)
		}
	}
}
