// Package teaview adapts the videoslider core to a BubbleTea program.
//
// Terminal mouse events drive the drag controller (one cell = one
// pixel), the space bar toggles transport on both streams, and every
// animation frame runs one synchronization pass, which is exactly the
// "tick at least once per meaningful state change" contract the sync
// controller asks for.
//
// Usage:
//
//	slider := videoslider.New(videoslider.DefaultOptions(), videoslider.Callbacks{})
//	slider.AttachMedia(videoslider.MediaPair{Primary: left, Secondary: right})
//
//	p := tea.NewProgram(teaview.New(slider), tea.WithMouseCellMotion())
//	_, err := p.Run()
package teaview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	videoslider "github.com/DEVAIEXP/gradio-component-videoslider"
)

// frameInterval paces the synchronization tick at 30 frames per second.
const frameInterval = time.Second / 30

// frameMsg is one animation frame.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model renders a videoslider widget as a split two-tone surface with a
// draggable divider. It implements tea.Model.
type Model struct {
	slider *videoslider.VideoSlider

	width  int
	height int

	fullscreen bool
	quitting   bool

	primaryStyle   lipgloss.Style
	secondaryStyle lipgloss.Style
	dividerStyle   lipgloss.Style
	statusStyle    lipgloss.Style
}

// New creates a model over the given widget. The divider takes its
// color from the widget's SliderColor option when one is set.
func New(slider *videoslider.VideoSlider) Model {
	divider := lipgloss.Color("15")
	if c := slider.Options().SliderColor; c != "" {
		divider = lipgloss.Color(c)
	}
	return Model{
		slider:         slider,
		primaryStyle:   lipgloss.NewStyle().Background(lipgloss.Color("62")),
		secondaryStyle: lipgloss.NewStyle().Background(lipgloss.Color("205")),
		dividerStyle:   lipgloss.NewStyle().Foreground(divider),
		statusStyle:    lipgloss.NewStyle().Faint(true),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// One terminal cell is one pixel; the bottom row is status.
		m.slider.Drag().Resize(videoslider.Rect{
			Width:  float64(msg.Width),
			Height: float64(msg.Height - 1),
		}, float64(msg.Width))
		return m, nil

	case tea.MouseMsg:
		ev := videoslider.PointerEvent{X: float64(msg.X), Y: float64(msg.Y)}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.slider.Drag().PointerDown(ev)
			}
		case tea.MouseActionMotion:
			m.slider.Drag().PointerMove(ev)
		case tea.MouseActionRelease:
			m.slider.Drag().PointerUp(ev)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.slider.TogglePlayback()
		case "f":
			m.fullscreen = !m.fullscreen
			if m.fullscreen {
				return m, tea.EnterAltScreen
			}
			return m, tea.ExitAltScreen
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case frameMsg:
		m.slider.Tick()
		return m, frameTick()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height < 2 {
		return "measuring..."
	}

	handle := int(m.slider.Drag().HandleX())
	if handle >= m.width {
		handle = m.width - 1
	}

	left := m.primaryStyle.Render(strings.Repeat(" ", handle))
	right := ""
	if rest := m.width - handle - 1; rest > 0 {
		right = m.secondaryStyle.Render(strings.Repeat(" ", rest))
	}
	row := left + m.dividerStyle.Render("│") + right

	var b strings.Builder
	for i := 0; i < m.height-1; i++ {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(m.statusStyle.Render(m.statusLine()))
	return b.String()
}

func (m Model) statusLine() string {
	pos := m.slider.Drag().Position()
	pair := m.slider.Media()

	transport := "no media"
	if pair.Complete() {
		if pair.Primary.Paused() {
			transport = fmt.Sprintf("paused %.1fs", pair.Primary.CurrentTime())
		} else {
			transport = fmt.Sprintf("playing %.1fs", pair.Primary.CurrentTime())
		}
	}

	status := fmt.Sprintf(" %.0f%% · %s · space play/pause · f fullscreen · q quit", pos*100, transport)
	if log := m.slider.Sync().Hiccups(); log.Len() > 0 {
		status += " · " + log.Summary()
	}
	return status
}
