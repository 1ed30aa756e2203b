package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexdraw/internal/config"
	"github.com/vovakirdan/hexdraw/internal/core"
	"github.com/vovakirdan/hexdraw/internal/drawing"
	"github.com/vovakirdan/hexdraw/internal/raster"
	"github.com/vovakirdan/hexdraw/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// PlayerModel is the Bubble Tea model replaying a drawing program.
// Each tick applies one command to the canvas, so the raster builds up
// on screen the way the interpreter sees it.
type PlayerModel struct {
	drawing  *drawing.Drawing
	palette  config.Palette
	keys     PlayerKeyMap
	canvas   *raster.Raster
	pos      core.Position
	next     int // index of the next command to apply
	rate     int // commands per second
	playing  bool
	failed   error
	progress progress.Model
	quitting bool
}

// NewPlayerModel creates a player for the given program.
func NewPlayerModel(d *drawing.Drawing, pal config.Palette, rate int) PlayerModel {
	if rate <= 0 {
		rate = 10
	}

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return PlayerModel{
		drawing:  d,
		palette:  pal,
		keys:     DefaultPlayerKeyMap(),
		canvas:   raster.New(d.Height, d.Width, d.Background),
		rate:     rate,
		playing:  true,
		progress: prog,
	}
}

// Init starts the replay loop.
func (m PlayerModel) Init() tea.Cmd {
	return tickCmd(m.rate)
}

// Update handles messages and advances the replay.
func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 40 {
			w = 40
		}
		if w > 0 {
			m.progress.Width = w
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m PlayerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.playing = !m.playing && !m.done()
		if m.playing {
			return m, tickCmd(m.rate)
		}

	case key.Matches(msg, m.keys.Step):
		if !m.playing {
			m.step()
		}

	case key.Matches(msg, m.keys.Restart):
		m.canvas = raster.New(m.drawing.Height, m.drawing.Width, m.drawing.Background)
		m.pos = core.Position{}
		m.next = 0
		m.failed = nil
		m.playing = true
		return m, tickCmd(m.rate)
	}

	return m, nil
}

func (m PlayerModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.playing {
		return m, nil
	}

	m.step()
	if m.done() {
		m.playing = false
		return m, nil
	}
	return m, tickCmd(m.rate)
}

// step applies the next command. On an out-of-bounds paint the replay
// stops where it died, leaving the partial canvas on screen.
func (m *PlayerModel) step() {
	if m.done() {
		return
	}

	cmd := m.drawing.Commands[m.next]
	pos, err := cmd.Apply(m.canvas, m.pos)
	m.pos = pos
	if err != nil {
		m.failed = &drawing.CommandError{Index: m.next, Cmd: cmd, Err: err}
		m.playing = false
		return
	}
	m.next++
}

// done reports whether the replay has nothing left to apply.
func (m PlayerModel) done() bool {
	return m.failed != nil || m.next >= len(m.drawing.Commands)
}

// View renders the canvas, a progress bar, and a status line.
func (m PlayerModel) View() string {
	if m.quitting {
		return ""
	}

	total := len(m.drawing.Commands)
	frac := 1.0
	if total > 0 {
		frac = float64(m.next) / float64(total)
	}

	status := fmt.Sprintf("command %d/%d · cursor %s", m.next, total, m.pos)
	switch {
	case m.failed != nil:
		status = errorStyle.Render(fmt.Sprintf("failed: %v", m.failed))
	case m.next < total && !m.playing:
		status += fmt.Sprintf(" · paused on %q", m.drawing.Commands[m.next])
	case m.done():
		status += " · done"
	}

	return render.TermString(m.canvas, m.palette) + "\n" +
		m.progress.ViewAs(frac) + "\n" +
		status + "\n" +
		statusStyle.Render("space pause · n step · r restart · q quit")
}

// Run starts the Bubble Tea program for the player.
func Run(d *drawing.Drawing, pal config.Palette, rate int) error {
	p := tea.NewProgram(NewPlayerModel(d, pal, rate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
