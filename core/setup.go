package core

import (
	"fmt"
	"time"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/fonts"
	"github.com/automoto/joyplat/indicator"
	"github.com/automoto/joyplat/input"
	"github.com/automoto/joyplat/render"
)

// Mode selects what the console runs.
type Mode string

const (
	ModeGame     Mode = "game"
	ModeJoystick Mode = "joystick" // indicators only, no display
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeGame, ModeJoystick:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeGame, ModeJoystick)
}

// FrameDelay returns the loop cadence for the mode.
func (m Mode) FrameDelay() time.Duration {
	if m == ModeJoystick {
		return cfg.JoystickFrameDelay()
	}
	return cfg.Loop.FrameDelay
}

// Input returns the stick calibration for the mode.
func (m Mode) Input() cfg.InputConfig {
	if m == ModeJoystick {
		return cfg.JoystickInput()
	}
	return cfg.Input
}

// Hardware is what a front end supplies to the driver. Display is unused
// in joystick mode.
type Hardware struct {
	Sensor  input.Sensor
	Lines   indicator.Output
	Display ssd1306.Bus
}

// Setup builds a driver from the global configuration. Joystick mode
// applies the joystick calibration overrides. In game mode it loads the
// level at levelPath (empty for the built-in one), loads the HUD font if
// one is configured and initialises the panel.
func Setup(hw Hardware, mode Mode, levelPath string) (*Driver, error) {
	indicators := indicator.NewDriver(hw.Lines)

	if mode == ModeJoystick {
		return NewJoystickDriver(input.NewSampler(hw.Sensor, input.NewJoystickClassifier()), indicators)
	}
	sampler := input.NewSampler(hw.Sensor, input.NewClassifier())

	if cfg.HUD.FontPath != "" {
		if err := fonts.LoadFile(fonts.HUD, cfg.HUD.FontPath, cfg.HUD.FontSize); err != nil {
			return nil, err
		}
	}

	level, err := LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	panel, err := ssd1306.NewPanel(hw.Display, ssd1306.OptsFromConfig())
	if err != nil {
		return nil, err
	}
	if err := panel.Init(); err != nil {
		return nil, err
	}

	return NewGameDriver(sampler, indicators, panel, render.NewRenderer(), level)
}
