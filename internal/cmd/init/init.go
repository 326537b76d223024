// Package initcmd provides the init command for microtools.
package initcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/completion"
	"github.com/vomodo/microtools/internal/config"
	"github.com/vomodo/microtools/internal/view"
	"github.com/vomodo/microtools/pkg/md"
)

type initOptions struct {
	configPath   string
	engine       string
	workMinutes  int
	breakMinutes int
	bell         bool
	noForm       bool
	force        bool

	stdout io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize microtools configuration",
		Long: `Initialize microtools with your preferred settings.

This command guides you through choosing the markdown conversion engine,
the default output format and the interval timer lengths. The configuration
is saved to ~/.config/microtools/config.yml.`,
		Example: `  # Interactive setup
  microtools init

  # Non-interactive setup
  microtools init --no-form --engine commonmark --work 50 --break 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.stdout = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "Conversion engine: builtin, commonmark")
	cmd.Flags().IntVar(&opts.workMinutes, "work", 0, "Work phase length in minutes")
	cmd.Flags().IntVar(&opts.breakMinutes, "break", 0, "Break phase length in minutes")
	cmd.Flags().BoolVar(&opts.bell, "bell", false, "Ring the terminal bell on phase changes")
	cmd.Flags().BoolVar(&opts.noForm, "no-form", false, "Skip the interactive form and use flags only")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing configuration without asking")

	_ = cmd.RegisterFlagCompletionFunc("engine", completion.Engines)

	return cmd
}

func runInit(opts *initOptions) error {
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Settings the form does not cover are kept from the existing file
	cfg := &config.Config{}
	if _, err := os.Stat(configPath); err == nil {
		if !opts.force {
			if opts.noForm {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
			}
			var overwrite bool
			err := huh.NewConfirm().
				Title("Configuration already exists").
				Description(fmt.Sprintf("Overwrite %s?", configPath)).
				Value(&overwrite).
				Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(opts.stdout, "Initialization cancelled.")
				return nil
			}
		}
		if existing, err := config.Load(configPath); err == nil {
			cfg = existing
		}
	}

	applyFlags(cfg, opts)
	defaults := cfg.WithDefaults()
	cfg.Engine = defaults.Engine
	cfg.OutputFormat = defaults.OutputFormat
	cfg.WorkMinutes = defaults.WorkMinutes
	cfg.BreakMinutes = defaults.BreakMinutes

	if !opts.noForm {
		if err := runForm(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(opts.stdout, "Configuration saved to %s\n", configPath)
	fmt.Fprintln(opts.stdout, "\nYou're all set! Try running:")
	fmt.Fprintln(opts.stdout, "  microtools md convert page.html")
	fmt.Fprintln(opts.stdout, "  microtools pomodoro start")

	return nil
}

func applyFlags(cfg *config.Config, opts *initOptions) {
	if opts.engine != "" {
		cfg.Engine = opts.engine
	}
	if opts.workMinutes != 0 {
		cfg.WorkMinutes = opts.workMinutes
	}
	if opts.breakMinutes != 0 {
		cfg.BreakMinutes = opts.breakMinutes
	}
	if opts.bell {
		cfg.Bell = true
	}
}

func runForm(cfg *config.Config) error {
	engines := make([]string, 0, len(md.Engines()))
	for _, e := range md.Engines() {
		engines = append(engines, string(e))
	}

	work := strconv.Itoa(cfg.WorkMinutes)
	brk := strconv.Itoa(cfg.BreakMinutes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Conversion engine").
				Description("Used by md convert when --engine is not given").
				Options(huh.NewOptions(engines...)...).
				Value(&cfg.Engine),

			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&cfg.OutputFormat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Work minutes").
				Value(&work).
				Validate(validateMinutes),

			huh.NewInput().
				Title("Break minutes").
				Value(&brk).
				Validate(validateMinutes),

			huh.NewConfirm().
				Title("Ring the terminal bell on phase changes?").
				Value(&cfg.Bell),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Inputs were validated by the form
	cfg.WorkMinutes, _ = strconv.Atoi(work)
	cfg.BreakMinutes, _ = strconv.Atoi(brk)
	return nil
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a whole number of minutes")
	}
	if n < 1 || n > 24*60 {
		return errors.New("minutes must be between 1 and 1440")
	}
	return nil
}
