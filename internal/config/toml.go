// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reading ReadingConfig `toml:"reading"`
	Timing  TimingConfig  `toml:"timing"`
	Theme   ThemeConfig   `toml:"theme"`
	Font    FontConfig    `toml:"font"`
}

// ReadingConfig maps reading-session settings.
type ReadingConfig struct {
	WPM *int `toml:"wpm"`
}

// TimingConfig maps timing-model overrides.
type TimingConfig struct {
	MinWPM                *int     `toml:"min-wpm"`
	MaxWPM                *int     `toml:"max-wpm"`
	LongWordThreshold     *int     `toml:"long-word-threshold"`
	LongWordPenalty       *float64 `toml:"long-word-penalty"`
	PeriodMultiplier      *float64 `toml:"period-multiplier"`
	CommaMultiplier       *float64 `toml:"comma-multiplier"`
	QuestionMultiplier    *float64 `toml:"question-multiplier"`
	ExclamationMultiplier *float64 `toml:"exclamation-multiplier"`
	NewlineMultiplier     *float64 `toml:"newline-multiplier"`
}

// ThemeConfig maps display colors as "#RRGGBB" strings.
type ThemeConfig struct {
	Background *string `toml:"background"`
	Text       *string `toml:"text"`
	Anchor     *string `toml:"anchor"`
}

// FontConfig maps font selection and sizing.
type FontConfig struct {
	// Path points at a TTF/OTF file; empty uses the embedded face.
	Path *string `toml:"path"`
	// Scale sizes the face as a multiple of terminal cell height.
	Scale *float64 `toml:"scale"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
