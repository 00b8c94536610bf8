package confetti

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-greeting/internal/canvas"
	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/page"
	"github.com/vovakirdan/tui-greeting/internal/sched"
)

// State is the open/closed state of the surprise message.
type State uint8

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ResizableSurface is a Surface that follows the window size.
type ResizableSurface interface {
	canvas.Surface
	Resize(cols, rows int)
}

// Surprise wires the surprise button to its message panel and the
// confetti engine.
type Surprise struct {
	button    *page.Element
	message   *page.Element
	surface   ResizableSurface
	engine    *Engine
	scheduler sched.Scheduler
	pulse     config.Duration
	state     State
	unpulse   sched.Handle
	logger    *log.Logger
}

// SetupSurprise connects the surprise button. It returns nil when the
// button, the message or the confetti canvas element is missing.
func SetupSurprise(doc *page.Document, surface ResizableSurface, s sched.Scheduler, rng *rand.Rand, cfg config.ConfettiConfig, logger *log.Logger) *Surprise {
	button := doc.GetElementByID(page.IDSurpriseButton)
	message := doc.GetElementByID(page.IDSurpriseMessage)
	if button == nil || message == nil || doc.GetElementByID(page.IDConfettiCanvas) == nil || surface == nil {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Surprise{
		button:    button,
		message:   message,
		surface:   surface,
		engine:    NewEngine(surface, s, rng, cfg, logger),
		scheduler: s,
		pulse:     cfg.Pulse,
		logger:    logger,
	}
}

// Click toggles the message. Opening it also fires a burst from the
// centre of buttonBox, the button's current on-screen box in pixels.
// Closing it leaves any running burst to fade out on its own.
func (s *Surprise) Click(buttonBox core.RectF) {
	if s.state == Open {
		s.state = Closed
		s.message.RemoveClass(page.ClassVisible)
		s.logger.Debug("surprise closed")
		return
	}

	s.state = Open
	s.message.AddClass(page.ClassVisible)
	s.engine.SpawnBurst(buttonBox.Center())

	s.button.AddClass(page.ClassClicked)
	s.unpulse.Cancel()
	s.unpulse = s.scheduler.AfterFunc(s.pulse.D(), func() {
		s.button.RemoveClass(page.ClassClicked)
	})
	s.logger.Debug("surprise opened")
}

// Resize matches the confetti surface to the window. Particles keep their
// pixel coordinates.
func (s *Surprise) Resize(cols, rows int) {
	s.surface.Resize(cols, rows)
}

// State returns whether the message is open.
func (s *Surprise) State() State {
	return s.state
}

// Engine exposes the confetti engine.
func (s *Surprise) Engine() *Engine {
	return s.engine
}
