package config

import "time"

// DisplayConfig describes the attached monochrome panel.
type DisplayConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	PageHeight   int    `yaml:"page_height"`   // rows per addressable page, always 8
	Address      uint16 `yaml:"address"`       // 7-bit bus address
	ColumnOffset int    `yaml:"column_offset"` // SH1106-style panels start at column 2
	Contrast     uint8  `yaml:"contrast"`
	Bus          string `yaml:"bus"` // bus name for the host driver, empty = first
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"` // pixels per tick while a horizontal intent is held
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // applied upward, so velocity becomes -JumpImpulse
	// MaxFallSpeed caps downward velocity. Zero leaves it unbounded.
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// CoinConfig contains collectible configuration
type CoinConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Reward int     `yaml:"reward"`
}

// HUDConfig controls the score overlay.
type HUDConfig struct {
	ScoreX   int     `yaml:"score_x"`
	ScoreY   int     `yaml:"score_y"` // top edge of the text line
	Format   string  `yaml:"format"`
	FontPath string  `yaml:"font_path"` // optional TTF, empty = built-in bitmap face
	FontSize float64 `yaml:"font_size"`
}

// LoopConfig controls the fixed cadence of the game loop.
type LoopConfig struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
	Verbose    bool          `yaml:"verbose"` // log every raw sample, like a serial debug print
}

// Global configuration instances
var Display DisplayConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Coin CoinConfig
var HUD HUDConfig
var Loop LoopConfig

func init() {
	Reset()
}

// Reset restores every section to the built-in defaults.
func Reset() {
	Display = DisplayConfig{
		Width:      128,
		Height:     64,
		PageHeight: 8,
		Address:    0x3C,
		Contrast:   0xCF,
	}

	Player = PlayerConfig{
		SpawnX: 64,
		SpawnY: 32,
		Size:   8,
		Speed:  2,
	}

	Physics = PhysicsConfig{
		Gravity:     1,
		JumpImpulse: 5,
	}

	Coin = CoinConfig{
		Width:  4,
		Height: 4,
		Reward: 10,
	}

	HUD = HUDConfig{
		ScoreX:   0,
		ScoreY:   0,
		Format:   "Score: %d",
		FontSize: 8,
	}

	Loop = LoopConfig{
		FrameDelay: 20 * time.Millisecond,
	}

	resetInput()
}
