package pomodorocmd

import (
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/state"
	"github.com/vomodo/microtools/internal/view"
)

// statusResult is the JSON shape of the persisted timer state.
type statusResult struct {
	SessionsCompleted int    `json:"sessions_completed"`
	UpdatedAt         string `json:"updated_at,omitempty"`
	Path              string `json:"path"`
}

// NewCmdStatus creates the pomodoro status command.
func NewCmdStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show completed work sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmdutil.GlobalFlags(cmd), state.DefaultPath(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runStatus(g cmdutil.GlobalOptions, statePath string, stdout, stderr io.Writer) error {
	_, format, _, err := g.Setup(stderr)
	if err != nil {
		return err
	}

	t, err := state.Load(statePath)
	if err != nil {
		return err
	}

	result := statusResult{SessionsCompleted: t.SessionsCompleted, Path: statePath}
	if !t.UpdatedAt.IsZero() {
		result.UpdatedAt = t.UpdatedAt.Format(time.RFC3339)
	}

	renderer := view.NewRenderer(format, g.NoColor)
	renderer.SetWriter(stdout)

	if format == view.FormatJSON {
		return renderer.RenderJSON(result)
	}

	renderer.RenderKeyValue("Sessions", strconv.Itoa(result.SessionsCompleted))
	if result.UpdatedAt != "" {
		renderer.RenderKeyValue("Updated", result.UpdatedAt)
	}
	return nil
}
