package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// sections mirrors the YAML document layout. Decoding into a copy of the
// current values means keys missing from the file keep their defaults.
type sections struct {
	Display   DisplayConfig   `yaml:"display"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Coin      CoinConfig      `yaml:"coin"`
	HUD       HUDConfig       `yaml:"hud"`
	Loop      LoopConfig      `yaml:"loop"`
	Input     InputConfig     `yaml:"input"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Joystick  JoystickConfig  `yaml:"joystick"`
}

// LoadFile overlays the YAML file at path onto the current configuration
// and validates the result. On error the configuration is left untouched.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays a YAML document onto the current configuration.
func Apply(data []byte) error {
	s := current()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := s.validate(); err != nil {
		return err
	}
	s.install()
	return nil
}

// Validate checks the installed configuration.
func Validate() error {
	s := current()
	return s.validate()
}

func current() sections {
	return sections{
		Display:   Display,
		Player:    Player,
		Physics:   Physics,
		Coin:      Coin,
		HUD:       HUD,
		Loop:      Loop,
		Input:     Input,
		Indicator: Indicator,
		Joystick:  Joystick,
	}
}

func (s sections) install() {
	Display = s.Display
	Player = s.Player
	Physics = s.Physics
	Coin = s.Coin
	HUD = s.HUD
	Loop = s.Loop
	Input = s.Input
	Indicator = s.Indicator
	Joystick = s.Joystick
}

func (s sections) validate() error {
	d := s.Display
	switch {
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, d.Width, d.Height)
	case d.PageHeight != 8:
		return fmt.Errorf("%w: page height %d, the controller pages are 8 rows", ErrInvalid, d.PageHeight)
	case d.Height%d.PageHeight != 0:
		return fmt.Errorf("%w: display height %d is not a multiple of page height %d", ErrInvalid, d.Height, d.PageHeight)
	case d.Width%8 != 0:
		return fmt.Errorf("%w: display width %d is not byte aligned", ErrInvalid, d.Width)
	case d.ColumnOffset < 0:
		return fmt.Errorf("%w: negative column offset", ErrInvalid)
	}

	if s.Player.Size <= 0 || s.Player.Size > float64(d.Width) || s.Player.Size > float64(d.Height) {
		return fmt.Errorf("%w: player size %v does not fit the display", ErrInvalid, s.Player.Size)
	}
	if s.Player.Speed < 0 || s.Physics.Gravity < 0 || s.Physics.JumpImpulse < 0 || s.Physics.MaxFallSpeed < 0 {
		return fmt.Errorf("%w: negative movement constant", ErrInvalid)
	}
	if s.Coin.Width <= 0 || s.Coin.Height <= 0 {
		return fmt.Errorf("%w: coin size %vx%v", ErrInvalid, s.Coin.Width, s.Coin.Height)
	}
	if s.Coin.Reward < 0 {
		return fmt.Errorf("%w: negative coin reward", ErrInvalid)
	}
	if s.Loop.FrameDelay <= 0 {
		return fmt.Errorf("%w: frame delay must be positive", ErrInvalid)
	}
	if s.Input.X.Threshold < 0 || s.Input.Y.Threshold < 0 {
		return fmt.Errorf("%w: negative deadband threshold", ErrInvalid)
	}
	if j := s.Joystick; j.Center < 0 || j.Threshold < 0 || j.FrameDelay < 0 {
		return fmt.Errorf("%w: negative joystick override", ErrInvalid)
	}
	if s.Input.X.Channel == s.Input.Y.Channel {
		return fmt.Errorf("%w: both axes read channel %d", ErrInvalid, s.Input.X.Channel)
	}
	return nil
}
