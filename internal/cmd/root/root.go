// Package root provides the root command for the microtools CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/casecmd"
	"github.com/vomodo/microtools/internal/cmd/completion"
	"github.com/vomodo/microtools/internal/cmd/configcmd"
	initcmd "github.com/vomodo/microtools/internal/cmd/init"
	"github.com/vomodo/microtools/internal/cmd/mdcmd"
	"github.com/vomodo/microtools/internal/cmd/pomodorocmd"
	"github.com/vomodo/microtools/internal/version"
	"github.com/vomodo/microtools/internal/view"
)

// NewCmdRoot creates the root command for microtools.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "microtools",
		Short: "Small text and productivity tools for the terminal",
		Long: `microtools bundles small everyday utilities:

  md        convert HTML to markdown and back
  case      convert text between letter cases
  pomodoro  run a work/break interval timer

Get started by running: microtools init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/microtools/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging to stderr")

	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return view.ValidFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	// Set version template
	cmd.SetVersionTemplate("microtools version " + version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(mdcmd.NewCmdMD())
	cmd.AddCommand(casecmd.NewCmdCase())
	cmd.AddCommand(pomodorocmd.NewCmdPomodoro())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
