package progress

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	valueStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#58d4ff"))
)

// tuiReporter runs a bubbletea program showing the latest Event as mining
// proceeds, in the style of bubbleTeaPrompter: a tea.Program fed messages
// from outside its own Update loop via Program.Send.
type tuiReporter struct {
	prog *tea.Program
	done chan struct{}
}

// newTUIReporter starts the live view if out looks like an interactive
// terminal, mirroring supportsColor's Fd()+term.IsTerminal check; it
// returns nil so callers fall back to plainReporter otherwise.
func newTUIReporter(out io.Writer) *tuiReporter {
	type fd interface{ Fd() uintptr }
	f, ok := out.(fd)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	model := newProgressModel(width)
	prog := tea.NewProgram(model, tea.WithOutput(out))

	r := &tuiReporter{prog: prog, done: make(chan struct{})}
	go func() {
		defer close(r.done)
		_, _ = prog.Run()
	}()
	return r
}

func (r *tuiReporter) Update(ev Event) {
	if r == nil {
		return
	}
	r.prog.Send(ev)
}

func (r *tuiReporter) Close() {
	if r == nil {
		return
	}
	r.prog.Send(closeMsg{})
	<-r.done
}

type closeMsg struct{}

type progressModel struct {
	width int
	last  Event
	seen  bool
}

func newProgressModel(width int) *progressModel {
	return &progressModel{width: width}
}

func (m *progressModel) Init() tea.Cmd { return nil }

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Event:
		m.last = msg
		m.seen = true
		return m, nil
	case closeMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	if !m.seen {
		return labelStyle.Render("mining...") + "\n"
	}
	ev := m.last
	slotFraction := 0.0
	if ev.SlotCount > 0 {
		slotFraction = float64(ev.SlotIndex+1) / float64(ev.SlotCount)
	}
	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	filled := int(slotFraction * float64(barWidth))
	bar := barStyle.Render(repeat("=", filled)) + repeat(" ", barWidth-filled)

	return fmt.Sprintf(
		"%s %s  [%s] %s %d/%d  %s %d  %s %d\n",
		labelStyle.Render("level"), valueStyle.Render(fmt.Sprintf("%d", ev.Level)),
		bar,
		labelStyle.Render("slot"), ev.SlotIndex+1, ev.SlotCount,
		labelStyle.Render("candidates"), ev.Candidates,
		labelStyle.Render("mdcops"), ev.MDCOPs,
	)
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
