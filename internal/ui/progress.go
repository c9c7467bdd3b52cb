package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// StepBar tracks progress through a fixed sequence of steps.
type StepBar interface {
	// Step marks the given 1-based step as active and updates the title.
	Step(current int, title string)

	// Done completes the bar at 100% and releases its resources.
	Done()
}

// Progress creates step bars appropriate for the current terminal.
type Progress interface {
	// Steps creates a StepBar for a run with the given number of steps.
	Steps(total int) StepBar
}

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager. Output goes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: os.Stdout}
}

// newProgressImpl creates a progressImpl with a custom writer (for testing).
func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Steps creates a step bar. In headless mode it returns a log-based bar.
func (p *progressImpl) Steps(total int) StepBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &headlessStepBar{total: total, writer: p.writer}
	}
	return newInteractiveStepBar(p.theme, total)
}

// --- interactiveStepBar ---

// stepMsg is sent to advance the bar to a step.
type stepMsg struct {
	current int
	title   string
}

// stepDoneMsg is sent to complete the bar.
type stepDoneMsg struct{}

// stepModel is the bubbletea Model for the animated step bar.
type stepModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newStepModel(theme *Theme, total int) stepModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return stepModel{bar: bar, total: total}
}

func (m stepModel) Init() tea.Cmd {
	return nil
}

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.current = min(msg.current, m.total)
		m.title = msg.title
		return m, nil
	case stepDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m stepModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

// interactiveStepBar implements StepBar with an animated bubbles progress bar.
type interactiveStepBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveStepBar(theme *Theme, total int) *interactiveStepBar {
	p := tea.NewProgram(newStepModel(theme, total))

	b := &interactiveStepBar{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return b
}

// Step advances the bar to the given step.
func (b *interactiveStepBar) Step(current int, title string) {
	b.program.Send(stepMsg{current: current, title: title})
}

// Done completes the bar at 100%.
func (b *interactiveStepBar) Done() {
	b.once.Do(func() {
		b.program.Send(stepDoneMsg{})
		b.program.Wait()
	})
}

// --- headlessStepBar ---

// headlessStepBar implements StepBar with plain text log output.
type headlessStepBar struct {
	total   int
	current int
	writer  io.Writer
}

// Step writes a log line for the given step.
func (b *headlessStepBar) Step(current int, title string) {
	b.current = min(current, b.total)
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, title)
}

// Done completes the bar.
func (b *headlessStepBar) Done() {
	b.current = b.total
}
