// Package mdcmd provides the markdown conversion commands.
package mdcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdMD creates the md command.
func NewCmdMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "md",
		Aliases: []string{"markdown"},
		Short:   "Convert HTML to markdown",
		Long:    `Commands for converting between HTML and markdown.`,
	}

	cmd.AddCommand(NewCmdConvert())
	cmd.AddCommand(NewCmdHTML())
	cmd.AddCommand(NewCmdEngines())

	return cmd
}
