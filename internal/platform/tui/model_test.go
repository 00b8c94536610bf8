package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/effects/confetti"
	"github.com/vovakirdan/tui-greeting/internal/page"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return newSizedModel(t, 80, 24)
}

func newSizedModel(t *testing.T, w, h int) Model {
	t.Helper()
	cfg, err := config.Parse(config.DefaultYAML())
	require.NoError(t, err)
	rt := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 7}
	return NewModel(cfg, rt, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCut(t *testing.T) {
	assert.Equal(t, "cde", cut("abcdefg", 2, 5))
	assert.Equal(t, "fg  ", cut("abcdefg", 5, 9))
	assert.Equal(t, "   ", cut("ab", 4, 7))
	assert.Equal(t, "", cut("abc", 2, 2))
}

func TestCutWideCharacter(t *testing.T) {
	// "世" covers cells 1-2; cutting through it pads with a space
	seg := cut("a世b", 2, 4)
	assert.Equal(t, 2, ansi.StringWidth(seg))
	assert.Equal(t, " b", seg)
}

func TestCompositeOverlaysPaintedCells(t *testing.T) {
	layer := core.NewScreen(6, 2)
	layer.SetCell(2, 0, core.Cell{Rune: '█', Color: core.ColorPink})
	layer.SetCell(3, 0, core.Cell{Rune: '▓', Color: core.ColorPink})

	out := Composite("abcdef\nghijkl", layer)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ab█▓ef", lines[0])
	assert.Equal(t, "ghijkl", lines[1])
}

func TestCompositeShortLine(t *testing.T) {
	layer := core.NewScreen(5, 1)
	layer.SetCell(4, 0, core.Cell{Rune: '░', Color: core.ColorGold})

	out := ansi.Strip(Composite("ab", layer))
	assert.Equal(t, "ab  ░", out)
}

func TestFrameStep(t *testing.T) {
	now := time.Unix(100, 0)
	assert.Equal(t, time.Second/60, frameStep(time.Time{}, now, 60))
	assert.Equal(t, 20*time.Millisecond, frameStep(now, now.Add(20*time.Millisecond), 60))
	assert.Equal(t, maxFrameStep, frameStep(now, now.Add(5*time.Second), 60))
	assert.Equal(t, time.Duration(0), frameStep(now, now.Add(-time.Second), 60))
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, maxContentWidth, contentWidth(200))
	assert.Equal(t, 56, contentWidth(60))
	assert.Equal(t, 10, contentWidth(10))
}

func TestRenderElementHiddenUntilVisible(t *testing.T) {
	el := page.NewElement("section-0", page.KindSection, "hello there", page.ClassRevealOnScroll)
	el.Title = "Heading"

	hidden := renderElement(el, 30, false)
	assert.Empty(t, strings.TrimSpace(hidden))

	el.AddClass(page.ClassVisible)
	shown := renderElement(el, 30, false)
	assert.Contains(t, ansi.Strip(shown), "hello there")
	assert.Equal(t, strings.Count(hidden, "\n"), strings.Count(shown, "\n"))
}

func TestRenderTypingCursor(t *testing.T) {
	el := page.NewElement(page.IDTypedMessage, page.KindText, "Hi")
	assert.Contains(t, renderElement(el, 20, true), typingCursor)
	assert.NotContains(t, renderElement(el, 20, false), typingCursor)
}

func TestModelTypesMessage(t *testing.T) {
	m := newTestModel(t)
	typed := m.doc.GetElementByID(page.IDTypedMessage)
	require.NotNil(t, typed)
	assert.Empty(t, typed.Text())

	m.step(time.Minute)
	assert.True(t, m.typer.Done())
	assert.Equal(t, page.FullMessage(m.cfg.Content), typed.Text())
}

func TestModelSkipKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))
	assert.True(t, m.typer.Done())
	assert.Equal(t, page.FullMessage(m.cfg.Content), m.doc.GetElementByID(page.IDTypedMessage).Text())
}

func TestModelRevealOnScroll(t *testing.T) {
	m := newSizedModel(t, 80, 12)
	m, _ = update(t, m, runes("s"))

	footer := m.doc.GetElementByID(page.IDFooter)
	require.NotNil(t, footer)
	require.Greater(t, m.doc.Height(), m.viewport.Height, "page should need scrolling")
	assert.False(t, footer.HasClass(page.ClassVisible))

	m, _ = update(t, m, runes("G"))
	assert.True(t, footer.HasClass(page.ClassVisible))

	// Revealed elements stay revealed
	m, _ = update(t, m, runes("g"))
	assert.Equal(t, 0, m.viewport.YOffset)
	assert.True(t, footer.HasClass(page.ClassVisible))
}

func TestModelKeyboardClickOpensSurprise(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, confetti.Open, m.surprise.State())
	assert.True(t, m.doc.GetElementByID(page.IDSurpriseMessage).HasClass(page.ClassVisible))
	assert.True(t, m.surprise.Engine().Running())

	// The button was scrolled into view before the click
	box, ok := m.buttonRect()
	require.True(t, ok)
	assert.GreaterOrEqual(t, box.Y, 0)
	assert.LessOrEqual(t, box.Bottom(), m.viewport.Height)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, confetti.Closed, m.surprise.State())
	assert.False(t, m.doc.GetElementByID(page.IDSurpriseMessage).HasClass(page.ClassVisible))
}

func TestModelPartialConfigKeepsSurprise(t *testing.T) {
	cfg, err := config.Parse([]byte("confetti:\n  count: 50\n"))
	require.NoError(t, err)
	m := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)

	require.NotNil(t, m.surprise)
	assert.Len(t, m.doc.QueryByClass(page.ClassRevealOnScroll), len(cfg.Content.Sections)+2)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, confetti.Open, m.surprise.State())
	assert.Equal(t, 50, m.surprise.Engine().Active())
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))

	path, err := m.saveScreenshot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".greeting", "screenshots"), filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ansi.Strip(m.frame()), string(data))
	assert.Contains(t, string(data), m.cfg.Content.Title)
}

func TestModelMouseClick(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, runes("G"))

	box, ok := m.buttonRect()
	require.True(t, ok)

	// A miss leaves the surprise closed
	m, _ = update(t, m, tea.MouseMsg{X: box.X - 1, Y: box.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, confetti.Closed, m.surprise.State())

	m, _ = update(t, m, tea.MouseMsg{X: box.X + 1, Y: box.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, confetti.Open, m.surprise.State())
	assert.True(t, m.doc.GetElementByID(page.IDSurpriseButton).HasClass(page.ClassClicked))

	// The press highlight clears after the pulse
	m.step(m.cfg.Confetti.Pulse.D())
	assert.False(t, m.doc.GetElementByID(page.IDSurpriseButton).HasClass(page.ClassClicked))
}

func TestModelConfettiFadesOut(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	engine := m.surprise.Engine()
	for i := 0; i < 1000 && engine.Running(); i++ {
		m.step(time.Second / 60)
	}
	assert.False(t, engine.Running())
	assert.Equal(t, 0, engine.Active())
	assert.True(t, m.canvas.Screen().IsBlank())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	cols, rows := m.canvas.Screen().Width(), m.canvas.Screen().Height()
	assert.Equal(t, 120, cols)
	assert.Equal(t, m.viewport.Height, rows)
	assert.Equal(t, maxContentWidth, m.colWidth)
	assert.Equal(t, (120-maxContentWidth)/2, m.offsetX)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModelTickReschedules(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, TickMsg(time.Unix(10, 0)))
	assert.NotNil(t, cmd)
	assert.Equal(t, time.Unix(10, 0), m.lastTick)
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))
	view := ansi.Strip(m.View())
	assert.Contains(t, view, m.cfg.Content.Title)
	assert.Contains(t, view, "quit")
}
