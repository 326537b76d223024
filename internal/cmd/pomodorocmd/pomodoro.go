// Package pomodorocmd provides the interval timer commands.
package pomodorocmd

import (
	"github.com/spf13/cobra"
)

// NewCmdPomodoro creates the pomodoro command.
func NewCmdPomodoro() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pomodoro",
		Aliases: []string{"timer"},
		Short:   "Run a work/break interval timer",
		Long: `Commands for the work/break interval timer.

Completed work sessions are counted in a state file under
$XDG_STATE_HOME/microtools (default ~/.local/state/microtools).`,
	}

	cmd.AddCommand(NewCmdStart())
	cmd.AddCommand(NewCmdStatus())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
