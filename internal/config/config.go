// Package config provides YAML-based configuration for the greeting card:
// the card's content and the tuning of each effect.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-greeting/internal/core"
)

// Config contains everything the card needs besides runtime flags.
type Config struct {
	Content  Content        `yaml:"content"`
	Typing   TypingConfig   `yaml:"typing"`
	Reveal   RevealConfig   `yaml:"reveal"`
	Confetti ConfettiConfig `yaml:"confetti"`
	Cell     CellConfig     `yaml:"cell"`
}

// Content is the text shown on the card. An empty Button or Surprise
// leaves that element out of the page.
type Content struct {
	Title    string    `yaml:"title"`
	Message  []string  `yaml:"message"`
	Sections []Section `yaml:"sections"`
	Button   string    `yaml:"button"`
	Surprise string    `yaml:"surprise"`
	Footer   string    `yaml:"footer"`
}

// Section is one scroll-revealed block of the card.
type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// TypingConfig tunes the typed message.
type TypingConfig struct {
	InitialDelay Duration `yaml:"initial_delay"` // Pause before the first character
	Delay        Duration `yaml:"delay"`         // Interval between characters
}

// RevealConfig tunes scroll reveals.
type RevealConfig struct {
	Threshold float64 `yaml:"threshold"` // Visible fraction that triggers a reveal
}

// ConfettiConfig tunes the confetti burst. Ranges are half-open [min, max).
type ConfettiConfig struct {
	Count    int      `yaml:"count"`
	Palette  []string `yaml:"palette"`
	SpeedMin float64  `yaml:"speed_min"` // px per frame
	SpeedMax float64  `yaml:"speed_max"`
	SizeMin  float64  `yaml:"size_min"` // px
	SizeMax  float64  `yaml:"size_max"`
	SpinMax  float64  `yaml:"spin_max"` // spin is drawn from [-SpinMax, SpinMax)
	DecayMin float64  `yaml:"decay_min"`
	DecayMax float64  `yaml:"decay_max"`
	Gravity  float64  `yaml:"gravity"` // px per frame added to y
	Pulse    Duration `yaml:"pulse"`   // How long the button stays "clicked"
}

// Colors resolves the palette to screen colours.
// Unknown entries are skipped; Validate reports them.
func (c ConfettiConfig) Colors() []core.Color {
	out := make([]core.Color, 0, len(c.Palette))
	for _, p := range c.Palette {
		if col, ok := core.ParseColor(p); ok {
			out = append(out, col)
		}
	}
	return out
}

// CellConfig gives the pixel size of one terminal cell. Confetti moves in
// pixels, so these set how fast it crosses the screen.
type CellConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Duration is a time.Duration that reads and writes YAML as "400ms".
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Validate reports every setting that would make an effect misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.Typing.InitialDelay < 0 {
		errs = append(errs, errors.New("typing.initial_delay must not be negative"))
	}
	if c.Typing.Delay <= 0 {
		errs = append(errs, errors.New("typing.delay must be positive"))
	}
	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		errs = append(errs, fmt.Errorf("reveal.threshold %v outside [0, 1]", c.Reveal.Threshold))
	}

	cf := c.Confetti
	if cf.Count <= 0 {
		errs = append(errs, errors.New("confetti.count must be positive"))
	}
	if len(cf.Palette) == 0 {
		errs = append(errs, errors.New("confetti.palette must not be empty"))
	}
	for _, p := range cf.Palette {
		if _, ok := core.ParseColor(p); !ok {
			errs = append(errs, fmt.Errorf("confetti.palette: unknown colour %q", p))
		}
	}
	for _, r := range []struct {
		name     string
		min, max float64
	}{
		{"speed", cf.SpeedMin, cf.SpeedMax},
		{"size", cf.SizeMin, cf.SizeMax},
		{"decay", cf.DecayMin, cf.DecayMax},
	} {
		if r.min > r.max {
			errs = append(errs, fmt.Errorf("confetti.%s_min %v exceeds %s_max %v", r.name, r.min, r.name, r.max))
		}
	}
	if cf.DecayMin <= 0 {
		errs = append(errs, errors.New("confetti.decay_min must be positive"))
	}
	if cf.SpinMax < 0 {
		errs = append(errs, errors.New("confetti.spin_max must not be negative"))
	}
	if cf.Pulse < 0 {
		errs = append(errs, errors.New("confetti.pulse must not be negative"))
	}

	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		errs = append(errs, errors.New("cell width and height must be positive"))
	}
	return errors.Join(errs...)
}
