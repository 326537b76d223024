// Package cmdutil holds helpers shared by microtools commands.
package cmdutil

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/config"
	"github.com/vomodo/microtools/internal/logger"
	"github.com/vomodo/microtools/internal/view"
)

// GlobalOptions holds the root command's persistent flags.
type GlobalOptions struct {
	ConfigPath string
	// Output is empty when --output was not given, so the config value applies.
	Output  string
	NoColor bool
	Verbose bool
}

// GlobalFlags reads the persistent flags registered on the root command.
func GlobalFlags(cmd *cobra.Command) GlobalOptions {
	var g GlobalOptions
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	if cmd.Flags().Changed("output") {
		g.Output, _ = cmd.Flags().GetString("output")
	}
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

// Setup resolves the configuration, the output format and a logger writing to stderr.
func (g GlobalOptions) Setup(stderr io.Writer) (config.Config, view.Format, *logger.Logger, error) {
	log := logger.New(stderr, g.Verbose)

	cfg, err := config.Resolve(g.ConfigPath)
	if err != nil {
		return config.Config{}, "", nil, err
	}

	path := g.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	log.ConfigLoaded(path, cfg.Engine)

	format := cfg.OutputFormat
	if g.Output != "" {
		format = g.Output
	}
	if err := view.ValidateFormat(format); err != nil {
		return config.Config{}, "", nil, err
	}

	return cfg, view.Format(format), log, nil
}
