package casecmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/view"
	"github.com/vomodo/microtools/pkg/textcase"
)

const sampleText = "hello World example"

// NewCmdModes creates the case modes command.
func NewCmdModes() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List case modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModes(cmdutil.GlobalFlags(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runModes(g cmdutil.GlobalOptions, stdout, stderr io.Writer) error {
	_, format, _, err := g.Setup(stderr)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(textcase.Modes()))
	for _, m := range textcase.Modes() {
		rows = append(rows, []string{string(m), textcase.Convert(m, sampleText)})
	}

	renderer := view.NewRenderer(format, g.NoColor)
	renderer.SetWriter(stdout)
	renderer.RenderTable([]string{"MODE", "EXAMPLE"}, rows)
	return nil
}
