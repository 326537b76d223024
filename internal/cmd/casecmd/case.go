// Package casecmd provides the text case conversion commands.
package casecmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/cmd/completion"
	"github.com/vomodo/microtools/internal/view"
	"github.com/vomodo/microtools/pkg/textcase"
)

type caseOptions struct {
	cmdutil.GlobalOptions

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// caseResult is the JSON shape of one conversion.
type caseResult struct {
	Mode   string `json:"mode"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewCmdCase creates the case command.
func NewCmdCase() *cobra.Command {
	opts := &caseOptions{}

	cmd := &cobra.Command{
		Use:   "case <mode> [text...]",
		Short: "Convert text between letter cases",
		Long: `Convert text to upper, lower, title, camel or snake case.

The words after the mode are joined with spaces and converted. When no text
is given, stdin is converted line by line.`,
		Example: `  # Convert arguments
  microtools case snake "Hello World"

  # Convert stdin
  cat names.txt | microtools case camel

  # List modes
  microtools case modes`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completion.CaseModes,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.GlobalFlags(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runCase(args, opts)
		},
	}

	cmd.AddCommand(NewCmdModes())

	return cmd
}

func runCase(args []string, opts *caseOptions) error {
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}
	if opts.stderr == nil {
		opts.stderr = os.Stderr
	}

	mode, err := textcase.ParseMode(args[0])
	if err != nil {
		return err
	}

	_, format, _, err := opts.Setup(opts.stderr)
	if err != nil {
		return err
	}

	var inputs []string
	if len(args) > 1 {
		inputs = []string{strings.Join(args[1:], " ")}
	} else {
		if opts.stdin == nil {
			opts.stdin = os.Stdin
		}
		inputs, err = readLines(opts.stdin)
		if err != nil {
			return err
		}
	}

	results := make([]caseResult, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, caseResult{
			Mode:   string(mode),
			Input:  in,
			Output: textcase.Convert(mode, in),
		})
	}

	renderer := view.NewRenderer(format, opts.NoColor)
	renderer.SetWriter(opts.stdout)

	if format == view.FormatJSON {
		return renderer.RenderJSON(results)
	}
	for _, r := range results {
		renderer.RenderText(r.Output)
	}
	return nil
}

// maxLineSize is the longest stdin line accepted.
const maxLineSize = 16 << 20

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}
