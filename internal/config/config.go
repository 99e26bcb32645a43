// Package config provides YAML-based configuration loading for snake.
package config

// Config contains all user-tunable settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   SnakeConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Palette PaletteConfig `yaml:"palette"`
}

// BoardConfig defines the grid size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake at spawn.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Count       int `yaml:"count"`        // Food items kept on the board
	MaxAttempts int `yaml:"max_attempts"` // Random samples before scanning for free cells
}

// TimingConfig defines the frame rate and RNG seed.
type TimingConfig struct {
	FPS  int   `yaml:"fps"`
	Seed int64 `yaml:"seed"` // 0 = seed from the clock
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	Title            string `yaml:"title"`
	Backend          string `yaml:"backend"`
	CellSize         int    `yaml:"cell_size"`          // Window backend pixels per cell
	TerminalCellSize int    `yaml:"terminal_cell_size"` // Terminal backend pixels per cell
}

// PaletteConfig holds "#rrggbb" colors.
type PaletteConfig struct {
	BoardLight    string `yaml:"board_light"`
	BoardDark     string `yaml:"board_dark"`
	BodyPrimary   string `yaml:"body_primary"`
	BodySecondary string `yaml:"body_secondary"`
	Food          string `yaml:"food"`
}
