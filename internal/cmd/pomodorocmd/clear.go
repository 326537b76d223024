package pomodorocmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/state"
	"github.com/vomodo/microtools/internal/view"
)

// NewCmdClear creates the pomodoro clear command.
func NewCmdClear() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the completed session count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClear(cmdutil.GlobalFlags(cmd), state.DefaultPath(), cmd.OutOrStdout())
		},
	}
}

func runClear(g cmdutil.GlobalOptions, statePath string, stdout io.Writer) error {
	if err := state.Clear(statePath); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.FormatTable, g.NoColor)
	renderer.SetWriter(stdout)
	renderer.Success("Session count cleared")
	return nil
}
