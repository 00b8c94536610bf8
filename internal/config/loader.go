package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/greeting.yaml
var defaultYAML []byte

// Default returns the configuration described by the embedded
// defaults/greeting.yaml, card text included.
func Default() Config {
	cfg := fallback()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallback()
	}
	return cfg
}

// fallback holds the effect tuning of defaults/greeting.yaml and a minimal
// card, used only if the embedded document cannot be decoded.
func fallback() Config {
	return Config{
		Content: Content{
			Title:   "Happy Birthday",
			Message: []string{"Happy birthday!"},
			Button:  "One last thing",
		},
		Typing: TypingConfig{
			InitialDelay: Duration(400 * time.Millisecond),
			Delay:        Duration(32 * time.Millisecond),
		},
		Reveal: RevealConfig{
			Threshold: 0.15,
		},
		Confetti: ConfettiConfig{
			Count:    120,
			Palette:  []string{"#f29fb4", "#c3b3ff", "#f5d59c", "#ffffff"},
			SpeedMin: 3,
			SpeedMax: 7,
			SizeMin:  4,
			SizeMax:  8,
			SpinMax:  0.1,
			DecayMin: 0.01,
			DecayMax: 0.025,
			Gravity:  0.5,
			Pulse:    Duration(220 * time.Millisecond),
		},
		Cell: CellConfig{
			Width:  8,
			Height: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load loads the card configuration.
// Search order: customPath -> ~/.greeting/config.yaml -> ./configs/greeting.yaml -> embedded default
//
// Each file is decoded over Default(), so a file only needs the keys it
// changes. Only a custom path reports read and parse errors; the other
// locations are skipped when unusable.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "greeting.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	return Default(), nil
}

// Parse decodes a YAML document over Default() and validates the result.
// Keys absent from data keep their embedded values, card content included.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".greeting", filename)
}
