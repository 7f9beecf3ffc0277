package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator shown while the template
// copy runs.
type Spinner interface {
	Start()
	Stop()
}

// NewSpinner returns an animated spinner on a TTY and a plain log-line
// fallback in headless mode.
func NewSpinner(hm *HeadlessManager, title string) Spinner {
	if hm.IsHeadless() {
		return &headlessSpinner{title: title, writer: os.Stdout}
	}
	return newInteractiveSpinner(title)
}

// --- interactiveSpinner ---

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	sp    spinner.Model
	title string
}

func newSpinnerModel(title string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	return spinnerModel{sp: sp, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.sp.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case spinnerStopMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		// The copy phase is not cancellable from the spinner.
		return m, nil
	default:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	return fmt.Sprintf("%s %s", m.sp.View(), m.title)
}

type interactiveSpinner struct {
	prog *tea.Program
	done chan struct{}
}

func newInteractiveSpinner(title string) *interactiveSpinner {
	return &interactiveSpinner{
		prog: tea.NewProgram(newSpinnerModel(title)),
		done: make(chan struct{}),
	}
}

func (s *interactiveSpinner) Start() {
	go func() {
		defer close(s.done)
		_, _ = s.prog.Run()
	}()
}

func (s *interactiveSpinner) Stop() {
	s.prog.Send(spinnerStopMsg{})
	<-s.done
}

// --- headlessSpinner ---

type headlessSpinner struct {
	title  string
	writer io.Writer
}

func (s *headlessSpinner) Start() {
	_, _ = fmt.Fprintln(s.writer, s.title)
}

func (s *headlessSpinner) Stop() {}
