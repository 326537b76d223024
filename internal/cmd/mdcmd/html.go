package mdcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/pkg/md"
)

type htmlOptions struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewCmdHTML creates the md html command.
func NewCmdHTML() *cobra.Command {
	opts := &htmlOptions{}

	cmd := &cobra.Command{
		Use:   "html [file|-]",
		Short: "Render markdown as HTML",
		Long: `Render markdown as HTML, the reverse of md convert.

GitHub-flavored tables and strikethrough are supported. Raw HTML in the
input is omitted from the output.`,
		Example: `  # Render a file
  microtools md html README.md

  # Round-trip through both directions
  microtools md html README.md | microtools md convert --engine commonmark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runHTML(args, opts)
		},
	}

	return cmd
}

func runHTML(args []string, opts *htmlOptions) error {
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}

	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		if opts.stdin == nil {
			opts.stdin = os.Stdin
		}
		data, err = io.ReadAll(opts.stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	}

	html, err := md.ToHTML(data)
	if err != nil {
		return err
	}

	_, err = io.WriteString(opts.stdout, html)
	return err
}
