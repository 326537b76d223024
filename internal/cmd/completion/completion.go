// Package completion provides shell completion generation commands and the
// value completers used by microtools flags and arguments.
package completion

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/pkg/md"
	"github.com/vomodo/microtools/pkg/textcase"
)

type shell struct {
	name    string
	load    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:    "bash",
		load:    "source <(microtools completion bash)",
		install: "microtools completion bash > /etc/bash_completion.d/microtools",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name:    "zsh",
		load:    "source <(microtools completion zsh)",
		install: "microtools completion zsh > \"${fpath[1]}/_microtools\"",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name:    "fish",
		load:    "microtools completion fish | source",
		install: "microtools completion fish > ~/.config/fish/completions/microtools.fish",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name:    "powershell",
		load:    "microtools completion powershell | Out-String | Invoke-Expression",
		install: "microtools completion powershell >> $PROFILE",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for microtools.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:   s.name,
		Short: "Generate " + s.name + " completion script",
		Long: `Generate ` + s.name + ` completion script for microtools.

To load completions in your current shell session:

  ` + s.load + `

To load completions for every new session:

  ` + s.install,
		Example:               "  " + s.load,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// Engines completes conversion engine names.
func Engines(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(md.Engines()))
	for _, e := range md.Engines() {
		names = append(names, string(e))
	}
	return filter(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// CaseModes completes the mode argument of the case command.
func CaseModes(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(textcase.Modes())+1)
	for _, m := range textcase.Modes() {
		names = append(names, string(m))
	}
	names = append(names, "modes")
	return filter(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filter(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, strings.ToLower(prefix)) {
			out = append(out, n)
		}
	}
	return out
}
