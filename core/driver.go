// Package core runs the console: it owns the world holding the stick,
// indicators, panel and game state, and advances it one tick at a time.
package core

import (
	"errors"

	"github.com/automoto/joyplat/archetypes"
	"github.com/automoto/joyplat/components"
	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/fonts"
	"github.com/automoto/joyplat/game"
	"github.com/automoto/joyplat/indicator"
	"github.com/automoto/joyplat/input"
	"github.com/automoto/joyplat/render"
	"github.com/automoto/joyplat/systems"
	"github.com/yohamta/donburi"
)

var errMissingDevice = errors.New("core: missing device")

// Driver performs one tick per Step call. It is not safe for concurrent
// use; the loop or a simulator's update callback is its only caller.
type Driver struct {
	world    donburi.World
	console  *donburi.Entry
	pipeline []systems.System
}

// NewGameDriver sets up a console that plays level on panel.
func NewGameDriver(sampler *input.Sampler, indicators *indicator.Driver, panel *ssd1306.Panel, renderer *render.Renderer, level *game.Level) (*Driver, error) {
	if sampler == nil || indicators == nil || panel == nil || renderer == nil || level == nil {
		return nil, errMissingDevice
	}
	w := donburi.NewWorld()
	e := archetypes.Game.Spawn(w)
	components.Devices.SetValue(e, components.DevicesData{
		Sampler:    sampler,
		Indicators: indicators,
		Renderer:   renderer,
		Panel:      panel,
	})
	components.Frame.SetValue(e, components.FrameData{
		Buffer: render.NewFramebuffer(int(level.Params.Width), int(level.Params.Height)),
	})

	d := &Driver{world: w, console: e, pipeline: systems.GamePipeline()}
	d.Reset(level)
	return d, nil
}

// NewJoystickDriver sets up a console that only mirrors the stick on the
// indicators.
func NewJoystickDriver(sampler *input.Sampler, indicators *indicator.Driver) (*Driver, error) {
	if sampler == nil || indicators == nil {
		return nil, errMissingDevice
	}
	w := donburi.NewWorld()
	e := archetypes.Joystick.Spawn(w)
	components.Devices.SetValue(e, components.DevicesData{
		Sampler:    sampler,
		Indicators: indicators,
	})
	return &Driver{world: w, console: e, pipeline: systems.JoystickPipeline()}, nil
}

// Step runs one tick. On error nothing computed during the tick is
// committed and the next Step starts from the same state.
func (d *Driver) Step() error {
	err := systems.Run(d.world, d.pipeline...)
	if err != nil {
		components.Stats.Get(d.console).Failures++
		if d.Playing() {
			components.Pending.Get(d.console).Ready = false
		}
	}
	return err
}

// Playing reports whether the driver runs the game.
func (d *Driver) Playing() bool {
	return d.console.HasComponent(components.Session)
}

// Reset starts level from its spawn point with a zero score.
func (d *Driver) Reset(level *game.Level) {
	if !d.Playing() {
		return
	}
	components.Session.SetValue(d.console, components.SessionData{
		Level: level,
		State: game.NewState(level),
	})
	components.Pending.SetValue(d.console, components.PendingData{})
}

// Reconfigure applies the global configuration to the devices: the stick
// thresholds, the HUD and the panel contrast. The level is kept; callers
// that also want new physics follow up with Reset.
func (d *Driver) Reconfigure() error {
	dev := components.Devices.Get(d.console)
	if !d.Playing() {
		dev.Sampler.SetClassifier(input.NewJoystickClassifier())
		return nil
	}

	dev.Sampler.SetClassifier(input.NewClassifier())
	if cfg.HUD.FontPath != "" {
		if err := fonts.LoadFile(fonts.HUD, cfg.HUD.FontPath, cfg.HUD.FontSize); err != nil {
			return err
		}
	}
	dev.Renderer.ApplyHUD()
	return dev.Panel.SetContrast(cfg.Display.Contrast)
}

// SetVerbose toggles logging of every raw sample.
func (d *Driver) SetVerbose(on bool) {
	components.Stats.Get(d.console).Verbose = on
}

// State returns the last committed game state.
func (d *Driver) State() game.State {
	if !d.Playing() {
		return game.State{}
	}
	return components.Session.Get(d.console).State
}

// Level returns the level being played, or nil in joystick mode.
func (d *Driver) Level() *game.Level {
	if !d.Playing() {
		return nil
	}
	return components.Session.Get(d.console).Level
}

// Intent returns the intent read by the last tick.
func (d *Driver) Intent() input.Intent {
	return components.Control.Get(d.console).Intent
}

// Sample returns the raw reading of the last tick.
func (d *Driver) Sample() input.Sample {
	return components.Control.Get(d.console).Sample
}

// Indicators returns the indicator line state.
func (d *Driver) Indicators() indicator.State {
	return components.Devices.Get(d.console).Indicators.State()
}

// Stats returns the tick counters.
func (d *Driver) Stats() components.StatsData {
	return *components.Stats.Get(d.console)
}
