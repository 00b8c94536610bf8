package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-greeting/internal/canvas"
	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/effects/confetti"
	"github.com/vovakirdan/tui-greeting/internal/effects/reveal"
	"github.com/vovakirdan/tui-greeting/internal/effects/typing"
	"github.com/vovakirdan/tui-greeting/internal/page"
	"github.com/vovakirdan/tui-greeting/internal/sched"
)

// Model is the Bubble Tea model for the greeting card.
type Model struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	doc      *page.Document
	loop     *sched.Loop
	canvas   *canvas.Canvas
	typer    *typing.Typer
	reveal   *reveal.Controller
	surprise *confetti.Surprise
	viewport viewport.Model
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	width    int
	height   int
	colWidth int // Width of the card column
	offsetX  int // Left margin of the card column
	lastTick time.Time
	quitting bool
}

// NewModel builds the page from cfg and wires every effect to a fresh
// scheduler. A nil logger discards output.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	doc := page.Build(cfg.Content)
	loop := sched.NewLoop()
	cv := canvas.New(rt.ScreenW, rt.ScreenH, cfg.Cell.Width, cfg.Cell.Height)
	rng := rand.New(rand.NewSource(rt.Seed)) //nolint:gosec // Visual randomness only

	m := Model{
		cfg:      cfg,
		runtime:  rt,
		doc:      doc,
		loop:     loop,
		canvas:   cv,
		typer:    typing.Setup(doc, loop, page.FullMessage(cfg.Content), cfg.Typing, logger.WithPrefix("typing")),
		reveal:   reveal.Setup(doc, cfg.Reveal, logger.WithPrefix("reveal")),
		surprise: confetti.SetupSurprise(doc, cv, loop, rng, cfg.Confetti, logger.WithPrefix("confetti")),
		viewport: viewport.New(rt.ScreenW, rt.ScreenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		m.step(frameStep(m.lastTick, now, m.runtime.TickRate))
		m.lastTick = now
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Up):
		m.scrollTo(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.scrollTo(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.doc.Height())
	case key.Matches(msg, m.keys.Skip):
		if m.typer != nil {
			m.typer.Skip()
			m.relayout()
		}
	case key.Matches(msg, m.keys.Click):
		m.pressButton()
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleMouse sends left clicks on the button to the surprise and leaves
// everything else, such as the wheel, to the viewport.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if box, ok := m.buttonRect(); ok && box.Contains(msg.X, msg.Y) {
			m.click(box)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.checkReveal()
	return m, cmd
}

// step runs the scheduler for d, draws one frame and refreshes the page.
func (m *Model) step(d time.Duration) {
	m.loop.Advance(d)
	m.loop.Frame()
	m.relayout()
	m.checkReveal()
}

// resize fits the viewport, the confetti surface and the card column to a
// terminal of width×height cells.
func (m *Model) resize(width, height int) {
	m.width = core.Max(width, 0)
	m.height = core.Max(height, 0)
	m.help.Width = m.width

	vpHeight := core.Max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight

	if m.surprise != nil {
		m.surprise.Resize(m.width, vpHeight)
	} else {
		m.canvas.Resize(m.width, vpHeight)
	}

	m.colWidth = contentWidth(m.width)
	m.offsetX = core.Max((m.width-m.colWidth)/2, 0)
	m.relayout()
	m.checkReveal()
}

// relayout re-measures the page and refreshes the viewport content.
func (m *Model) relayout() {
	typingNow := m.typer != nil && !m.typer.Done()
	rows := renderDocument(m.doc, m.colWidth, m.offsetX, typingNow)
	m.viewport.SetContent(strings.Join(rows, "\n"))
}

// checkReveal reports the visible part of the page to the reveal observer.
func (m *Model) checkReveal() {
	if m.reveal == nil {
		return
	}
	m.reveal.Check(core.NewRect(0, m.viewport.YOffset, m.colWidth, m.viewport.Height))
}

func (m *Model) scrollTo(y int) {
	m.viewport.SetYOffset(y)
	m.checkReveal()
}

// buttonRect returns the button's box in screen cells.
func (m *Model) buttonRect() (core.Rect, bool) {
	el := m.doc.GetElementByID(page.IDSurpriseButton)
	if el == nil || m.surprise == nil {
		return core.Rect{}, false
	}
	return el.Box.Translate(m.offsetX, -m.viewport.YOffset), true
}

// pressButton clicks the button from the keyboard, scrolling it into
// view first so the burst starts on screen.
func (m *Model) pressButton() {
	el := m.doc.GetElementByID(page.IDSurpriseButton)
	if el == nil || m.surprise == nil {
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case el.Box.Y < top:
		m.scrollTo(el.Box.Y)
	case el.Box.Bottom() > bottom:
		m.scrollTo(el.Box.Bottom() - m.viewport.Height)
	}
	box, _ := m.buttonRect()
	m.click(box)
}

func (m *Model) click(box core.Rect) {
	cellW, cellH := m.canvas.CellSize()
	m.surprise.Click(box.Scale(cellW, cellH))
	m.relayout()
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".greeting", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("greeting_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(ansi.Strip(m.frame())), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// frame renders the page, the confetti layer and the help line.
func (m Model) frame() string {
	body := Composite(m.viewport.View(), m.canvas.Screen())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame()
}

// Run starts the Bubble Tea program for the card.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and wheel scrolling
	)

	_, err := p.Run()
	return err
}
