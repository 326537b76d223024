package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective microtools configuration with value source indicators.`,
		Example: `  # Show current config
  microtools config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPath, noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	envCfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}
	cfg := envCfg.WithDefaults()

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value string, fromFile bool, envVar string) {
		bold.Fprintf(w, "%-15s", label+":")
		fmt.Fprint(w, value)

		source := "default"
		switch {
		case os.Getenv(envVar) != "":
			source = envVar
		case fromFile:
			source = "config"
		}

		dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Engine", cfg.Engine, fileCfg.Engine != "", "MICROTOOLS_ENGINE")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat != "", "MICROTOOLS_OUTPUT")
	printField("Render style", cfg.RenderStyle, fileCfg.RenderStyle != "", "MICROTOOLS_RENDER_STYLE")
	printField("Word wrap", strconv.Itoa(cfg.WordWrap), fileCfg.WordWrap != 0, "MICROTOOLS_WORD_WRAP")
	printField("Work minutes", strconv.Itoa(cfg.WorkMinutes), fileCfg.WorkMinutes != 0, "MICROTOOLS_WORK_MINUTES")
	printField("Break minutes", strconv.Itoa(cfg.BreakMinutes), fileCfg.BreakMinutes != 0, "MICROTOOLS_BREAK_MINUTES")
	printField("Bell", strconv.FormatBool(cfg.Bell), fileCfg.Bell, "MICROTOOLS_BELL")

	fmt.Fprintln(w)
	dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		dim.Fprintln(w, "(file not found)")
	}

	return nil
}
