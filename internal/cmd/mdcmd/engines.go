package mdcmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/view"
	"github.com/vomodo/microtools/pkg/md"
)

var engineDescriptions = map[md.Engine]string{
	md.EngineBuiltin:    "Tree walk with literal list markers and fenced code",
	md.EngineCommonMark: "html-to-markdown with numbered lists and escaping",
}

// NewCmdEngines creates the md engines command.
func NewCmdEngines() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List conversion engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEngines(cmdutil.GlobalFlags(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runEngines(g cmdutil.GlobalOptions, stdout, stderr io.Writer) error {
	cfg, format, _, err := g.Setup(stderr)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(md.Engines()))
	for _, e := range md.Engines() {
		def := ""
		if string(e) == cfg.Engine {
			def = "*"
		}
		rows = append(rows, []string{string(e), def, engineDescriptions[e]})
	}

	renderer := view.NewRenderer(format, g.NoColor)
	renderer.SetWriter(stdout)
	renderer.RenderTable([]string{"ENGINE", "DEFAULT", "DESCRIPTION"}, rows)
	return nil
}
