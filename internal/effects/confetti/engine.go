package confetti

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-greeting/internal/canvas"
	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/sched"
)

// Engine owns the active particle batch and the frame loop drawing it.
// Only one batch exists at a time: a new burst replaces the old one.
type Engine struct {
	surface   canvas.Surface
	scheduler sched.Scheduler
	rng       *rand.Rand
	cfg       config.ConfettiConfig
	palette   []core.Color
	logger    *log.Logger

	particles []Particle
	frame     sched.Handle
	frames    int // Frames drawn for the current batch
}

// NewEngine creates an idle engine. rng is the only source of randomness,
// so a seeded generator gives reproducible bursts.
func NewEngine(surface canvas.Surface, s sched.Scheduler, rng *rand.Rand, cfg config.ConfettiConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		surface:   surface,
		scheduler: s,
		rng:       rng,
		cfg:       cfg,
		palette:   cfg.Colors(),
		logger:    logger,
	}
}

// SpawnBurst discards any current batch, creates a new one at origin and
// draws its first frame immediately. Later frames follow on the scheduler.
func (e *Engine) SpawnBurst(origin core.Vec) {
	e.particles = spawn(e.rng, origin, e.cfg.Count, e.cfg, e.palette)
	e.frames = 0
	e.frame.Cancel()
	e.frame = sched.Handle{}
	e.logger.Debug("confetti burst", "count", len(e.particles), "x", origin.X, "y", origin.Y)
	e.advance()
}

// advance moves, draws and culls the batch for one frame.
func (e *Engine) advance() {
	e.surface.Clear()
	e.frames++

	for i := range e.particles {
		p := &e.particles[i]
		p.step(e.cfg.Gravity)

		e.surface.SetGlobalAlpha(core.ClampF(p.Alpha, 0, 1))
		e.surface.FillRotatedRect(p.Pos, p.Size, p.Size*2, p.Angle, p.Color)
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	e.particles = alive

	if len(e.particles) > 0 {
		e.frame = e.scheduler.RequestFrame(e.advance)
	} else {
		e.surface.Clear()
		e.frame.Cancel()
		e.frame = sched.Handle{}
		e.logger.Debug("confetti finished", "frames", e.frames)
	}

	e.surface.SetGlobalAlpha(1)
}

// Active returns the number of particles still in the active set.
func (e *Engine) Active() int {
	return len(e.particles)
}

// Running reports whether another frame is scheduled.
func (e *Engine) Running() bool {
	return e.frame.Active()
}

// Frames returns how many frames the current batch has been drawn for.
func (e *Engine) Frames() int {
	return e.frames
}

// Particles returns a copy of the active set.
func (e *Engine) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}
