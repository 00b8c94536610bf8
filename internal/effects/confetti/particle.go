// Package confetti implements the confetti burst: a short-lived particle
// simulation drawn onto a canvas surface, and the surprise button that
// toggles a message panel and fires the burst.
package confetti

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/core"
)

// Particle is one piece of confetti. Positions are in surface pixels.
type Particle struct {
	Pos   core.Vec
	Angle float64 // Direction of travel and rotation, radians
	Speed float64 // Pixels per frame
	Size  float64 // Width in pixels; height is twice this
	Color core.Color
	Spin  float64 // Radians per frame added to Angle
	Alpha float64 // Opacity, starts at 1 and only decreases
	Decay float64 // Alpha lost per frame
}

// Alive reports whether the particle is still in the active set.
func (p *Particle) Alive() bool {
	return p.Alpha > 0
}

// step advances the particle by one frame.
func (p *Particle) step(gravity float64) {
	p.Pos.X += math.Cos(p.Angle) * p.Speed
	p.Pos.Y += math.Sin(p.Angle)*p.Speed + gravity
	p.Angle += p.Spin
	p.Alpha -= p.Decay
}

// spawn builds count particles at origin with randomised attributes.
func spawn(rng *rand.Rand, origin core.Vec, count int, cfg config.ConfettiConfig, palette []core.Color) []Particle {
	if len(palette) == 0 {
		palette = []core.Color{core.ColorWhite}
	}
	out := make([]Particle, count)
	for i := range out {
		out[i] = Particle{
			Pos:   origin,
			Angle: rng.Float64() * 2 * math.Pi,
			Speed: between(rng, cfg.SpeedMin, cfg.SpeedMax),
			Size:  between(rng, cfg.SizeMin, cfg.SizeMax),
			Color: palette[rng.Intn(len(palette))],
			Spin:  between(rng, -cfg.SpinMax, cfg.SpinMax),
			Alpha: 1,
			Decay: between(rng, cfg.DecayMin, cfg.DecayMax),
		}
	}
	return out
}

// between draws uniformly from [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
