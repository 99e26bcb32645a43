package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are applied on top of the defaults, so a file may set only some keys.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (Config, bool) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks settings that do not belong to the simulation itself and
// then the simulation settings for both cell sizes.
func (c Config) Validate() error {
	if c.Timing.FPS < 1 {
		return fmt.Errorf("timing.fps must be at least 1, got %d", c.Timing.FPS)
	}
	if c.Display.Title == "" {
		return errors.New("display.title must not be empty")
	}
	if _, err := c.Simulation(core.RGB888, false); err != nil {
		return err
	}
	if _, err := c.Simulation(core.RGB888, true); err != nil {
		return err
	}
	return nil
}

// Simulation builds the immutable game configuration. Terminal backends draw
// with the smaller terminal cell size.
func (c Config) Simulation(f core.PixelFormat, terminal bool) (snake.Config, error) {
	palette, err := c.Palette.resolve(f)
	if err != nil {
		return snake.Config{}, err
	}

	cellSize := c.Display.CellSize
	if terminal {
		cellSize = c.Display.TerminalCellSize
	}

	sim := snake.Config{
		Width:                c.Board.Width,
		Height:               c.Board.Height,
		InitialLength:        c.Snake.InitialLength,
		FoodCount:            c.Food.Count,
		MaxPlacementAttempts: c.Food.MaxAttempts,
		CellSize:             cellSize,
		Palette:              palette,
	}
	if err := sim.Validate(); err != nil {
		return snake.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return sim, nil
}

func (p PaletteConfig) resolve(f core.PixelFormat) (snake.Palette, error) {
	var out snake.Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"board_light", p.BoardLight, &out.BoardLight},
		{"board_dark", p.BoardDark, &out.BoardDark},
		{"body_primary", p.BodyPrimary, &out.BodyPrimary},
		{"body_secondary", p.BodySecondary, &out.BodySecondary},
		{"food", p.Food, &out.Food},
	}
	for _, fld := range fields {
		c, err := core.ParseHex(f, fld.hex)
		if err != nil {
			return out, fmt.Errorf("palette.%s: %w", fld.name, err)
		}
		*fld.dst = c
	}
	return out, nil
}
