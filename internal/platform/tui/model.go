package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/loop"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// platform buffers key events between ticks and keeps the last presented
// frame as text for View.
type platform struct {
	queue    core.EventQueue
	renderer *SurfaceRenderer
	frame    string
	title    string
	retitled bool
}

func newPlatform(f core.PixelFormat) *platform {
	return &platform{renderer: NewSurfaceRenderer(f)}
}

func (p *platform) Poll() []core.Event {
	return p.queue.Drain()
}

func (p *platform) Present(s *core.Surface) error {
	p.frame = p.renderer.Render(s)
	return nil
}

func (p *platform) SetTitle(title string) {
	p.title = title
	p.retitled = true
}

// Model is the Bubble Tea model running one game.
type Model struct {
	loop     *loop.Loop
	platform *platform
	keys     KeyMap
	help     help.Model
	fps      int
	quitting bool
	err      error
}

// newModel creates a model around an existing loop. The platform must be the
// one the loop was created with.
func newModel(l *loop.Loop, p *platform, fps int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		loop:     l,
		platform: p,
		keys:     DefaultKeyMap(),
		help:     h,
		fps:      fps,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.MapKey(msg); ok {
			m.platform.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame of the loop.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.loop.Frame(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if !m.loop.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.fps)}
	if m.platform.retitled {
		m.platform.retitled = false
		cmds = append(cmds, tea.SetWindowTitle(m.platform.title))
	}
	return m, tea.Batch(cmds...)
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the last presented frame with a status and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return m.platform.frame + "\n" +
		statusStyle.Render(m.platform.title) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}
