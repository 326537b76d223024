package pomodorocmd

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/config"
	"github.com/vomodo/microtools/internal/logger"
	"github.com/vomodo/microtools/internal/state"
	"github.com/vomodo/microtools/pkg/pomodoro"
)

type startOptions struct {
	cmdutil.GlobalOptions

	work      time.Duration
	breakTime time.Duration
	statePath string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCmdStart creates the pomodoro start command.
func NewCmdStart() *cobra.Command {
	opts := &startOptions{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the interval timer",
		Long: `Start an interactive work/break timer in the terminal.

Phase lengths default to the work_minutes and break_minutes settings.`,
		Example: `  # Start with the configured lengths
  microtools pomodoro start

  # Short cycles
  microtools pomodoro start --work 15m --break 3m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.GlobalOptions = cmdutil.GlobalFlags(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runStart(opts)
		},
	}

	cmd.Flags().DurationVar(&opts.work, "work", 0, "Work phase length (default from config, 25m)")
	cmd.Flags().DurationVar(&opts.breakTime, "break", 0, "Break phase length (default from config, 5m)")

	return cmd
}

func runStart(opts *startOptions) error {
	if opts.stdin == nil {
		opts.stdin = os.Stdin
	}
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}
	if opts.stderr == nil {
		opts.stderr = os.Stderr
	}

	cfg, _, log, err := opts.Setup(opts.stderr)
	if err != nil {
		return err
	}

	schedule, err := resolveSchedule(cfg, opts.work, opts.breakTime)
	if err != nil {
		return err
	}

	statePath := opts.statePath
	if statePath == "" {
		statePath = state.DefaultPath()
	}
	saved, err := state.Load(statePath)
	if err != nil {
		return err
	}

	onPhase := phaseHandler(statePath, saved, cfg.Bell, opts.stderr, log)
	m := newTimerModel(schedule, schedule.Start(saved.SessionsCompleted), onPhase)

	p := tea.NewProgram(m, tea.WithInput(opts.stdin), tea.WithOutput(opts.stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run timer: %w", err)
	}
	return nil
}

// resolveSchedule applies non-zero flag durations over the configured schedule.
func resolveSchedule(cfg config.Config, work, breakTime time.Duration) (pomodoro.Schedule, error) {
	schedule := cfg.Schedule()
	if work != 0 {
		schedule.Work = work
	}
	if breakTime != 0 {
		schedule.Break = breakTime
	}
	if err := schedule.Validate(); err != nil {
		return pomodoro.Schedule{}, fmt.Errorf("invalid timer settings: %w", err)
	}
	return schedule, nil
}

// phaseHandler logs phase changes, rings the bell when enabled and saves the
// session count whenever a work phase completes.
func phaseHandler(statePath string, saved *state.Timer, bell bool, stderr io.Writer, log *logger.Logger) phaseFunc {
	return func(prev, next pomodoro.State) {
		log.PhaseChanged(string(next.Phase), next.Sessions)
		if bell {
			io.WriteString(stderr, "\a")
		}
		if next.Sessions == prev.Sessions {
			return
		}
		saved.SessionsCompleted = next.Sessions
		if err := saved.Save(statePath); err != nil {
			log.StateError("save", err)
		}
	}
}
