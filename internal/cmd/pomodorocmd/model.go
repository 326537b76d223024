package pomodorocmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vomodo/microtools/pkg/pomodoro"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	workStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	breakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// tickMsg advances the timer. Ticks from an older generation are dropped so
// that pausing or resetting cancels the tick already in flight.
type tickMsg struct {
	gen int
}

// phaseFunc is called after a tick that started a new phase.
type phaseFunc func(prev, next pomodoro.State)

type timerModel struct {
	schedule pomodoro.Schedule
	state    pomodoro.State
	running  bool
	gen      int
	onPhase  phaseFunc
}

func newTimerModel(schedule pomodoro.Schedule, st pomodoro.State, onPhase phaseFunc) timerModel {
	return timerModel{
		schedule: schedule,
		state:    st,
		running:  true,
		onPhase:  onPhase,
	}
}

func (m timerModel) Init() tea.Cmd {
	return tick(m.gen)
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.gen++
			m.running = !m.running
			if m.running {
				return m, tick(m.gen)
			}
			return m, nil
		case "r":
			m.gen++
			m.running = false
			m.state = m.schedule.Reset(m.state)
			return m, nil
		}

	case tickMsg:
		if msg.gen != m.gen || !m.running {
			return m, nil
		}
		prev := m.state
		m.state = m.schedule.Tick(m.state)
		if pomodoro.PhaseChanged(prev, m.state) && m.onPhase != nil {
			m.onPhase(prev, m.state)
		}
		return m, tick(m.gen)
	}

	return m, nil
}

func (m timerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pomodoro"))
	b.WriteString("\n\n")

	phase := workStyle.Render("● Work")
	if m.state.Phase == pomodoro.PhaseBreak {
		phase = breakStyle.Render("● Break")
	}
	b.WriteString("  " + phase)
	if !m.running {
		b.WriteString(labelStyle.Render("  (paused)"))
	}
	b.WriteString("\n")
	b.WriteString(clockStyle.Render(m.state.Clock()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d\n\n", labelStyle.Render("Sessions:"), m.state.Sessions))

	toggle := "pause"
	if !m.running {
		toggle = "resume"
	}
	b.WriteString(helpStyle.Render("space " + toggle + " • r reset • q quit"))
	b.WriteString("\n")

	return b.String()
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
