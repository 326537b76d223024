package mdcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/cmd/completion"
	"github.com/vomodo/microtools/internal/fetch"
	"github.com/vomodo/microtools/internal/version"
	"github.com/vomodo/microtools/internal/view"
	"github.com/vomodo/microtools/pkg/md"
)

type convertOptions struct {
	cmdutil.GlobalOptions

	url     string
	engine  string
	render  bool
	outline bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	client *fetch.Client
}

// convertResult is the JSON shape of a conversion.
type convertResult struct {
	Source   string       `json:"source"`
	Engine   string       `json:"engine"`
	Markdown string       `json:"markdown"`
	Headings []md.Heading `json:"headings"`
}

// NewCmdConvert creates the md convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert HTML to markdown",
		Long: `Convert an HTML fragment or document to markdown.

Input is read from the given file, from a URL with --url, or from stdin
when no file (or "-") is given.`,
		Example: `  # Convert a file
  microtools md convert page.html

  # Convert from stdin
  echo '<p>Hello <strong>world</strong></p>' | microtools md convert

  # Fetch and render in the terminal
  microtools md convert --url https://example.com --render

  # List the headings of the result
  microtools md convert page.html --outline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.GlobalFlags(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runConvert(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Fetch the HTML from a URL")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "Conversion engine: builtin, commonmark (default from config)")
	cmd.Flags().BoolVarP(&opts.render, "render", "r", false, "Render the markdown for the terminal")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "Show only the headings of the result")

	_ = cmd.RegisterFlagCompletionFunc("engine", completion.Engines)

	return cmd
}

func runConvert(ctx context.Context, args []string, opts *convertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}
	if opts.stderr == nil {
		opts.stderr = os.Stderr
	}

	cfg, format, log, err := opts.Setup(opts.stderr)
	if err != nil {
		return err
	}

	engineName := cfg.Engine
	if opts.engine != "" {
		engineName = opts.engine
	}
	engine, err := md.ParseEngine(engineName)
	if err != nil {
		return err
	}

	source, input, err := readInput(ctx, args, opts)
	if err != nil {
		return err
	}
	log.InputLoaded(source, len(input))

	start := time.Now()
	markdown, err := md.FromHTMLWithOptions(string(input), md.ConvertOptions{Engine: engine})
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", source, err)
	}
	log.Converted(string(engine), len(input), len(markdown), time.Since(start))

	headings := md.Outline([]byte(markdown))

	renderer := view.NewRenderer(format, opts.NoColor)
	renderer.SetWriter(opts.stdout)

	if format == view.FormatJSON {
		if headings == nil {
			headings = []md.Heading{}
		}
		return renderer.RenderJSON(convertResult{
			Source:   source,
			Engine:   string(engine),
			Markdown: markdown,
			Headings: headings,
		})
	}

	if opts.outline {
		rows := make([][]string, 0, len(headings))
		for _, h := range headings {
			rows = append(rows, []string{strconv.Itoa(h.Level), h.Text})
		}
		renderer.RenderTable([]string{"LEVEL", "HEADING"}, rows)
		return nil
	}

	if opts.render {
		rendered, err := view.RenderMarkdown(markdown, cfg.RenderStyle, cfg.WordWrap, opts.NoColor)
		if err != nil {
			// Fall back to plain markdown if rendering fails
			log.RenderFallback(err)
		} else {
			_, err = io.WriteString(opts.stdout, rendered)
			return err
		}
	}

	renderer.RenderText(markdown)
	return nil
}

// readInput returns a description of the input source and its contents.
func readInput(ctx context.Context, args []string, opts *convertOptions) (string, []byte, error) {
	if opts.url != "" {
		if len(args) > 0 {
			return "", nil, errors.New("cannot use --url together with a file argument")
		}
		client := opts.client
		if client == nil {
			client = fetch.NewClient("microtools/" + version.Version)
		}
		body, err := client.Get(ctx, opts.url)
		if err != nil {
			return "", nil, fmt.Errorf("failed to fetch %s: %w", opts.url, err)
		}
		return opts.url, body, nil
	}

	if len(args) == 0 || args[0] == "-" {
		if opts.stdin == nil {
			opts.stdin = os.Stdin
		}
		data, err := io.ReadAll(opts.stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return args[0], data, nil
}
