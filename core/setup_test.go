package core

import (
	"testing"
	"time"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/indicator"
	"github.com/automoto/joyplat/input"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"game", "joystick"} {
		if m, err := ParseMode(s); err != nil || string(m) != s {
			t.Errorf("ParseMode(%q) = %q, %v", s, m, err)
		}
	}
	if _, err := ParseMode("menu"); err == nil {
		t.Error("ParseMode(menu) should fail")
	}
}

func TestSetupGame(t *testing.T) {
	emu := ssd1306.NewEmulator(128, 64, 0)
	st := &stick{values: map[int]int{0: 2500, 1: 2500}}

	d, err := Setup(Hardware{Sensor: st, Lines: lines{}, Display: emu}, ModeGame, "")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !d.Playing() || !emu.On() {
		t.Fatal("game mode should play and switch the panel on")
	}
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	// Ground platform of the default level spans the bottom rows.
	if !emu.Pixel(0, 63) {
		t.Fatal("ground not drawn")
	}
}

func TestSetupJoystick(t *testing.T) {
	st := &stick{values: map[int]int{0: 2500, 1: 100}}
	d, err := Setup(Hardware{Sensor: st, Lines: lines{}}, ModeJoystick, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if !d.Indicators()[indicator.Up] {
		t.Fatal("up indicator not lit")
	}
}

func TestSetupJoystickUsesOverrides(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Reset()
	cfg.Joystick = cfg.JoystickConfig{Center: 512, Threshold: 150, FrameDelay: 100 * time.Millisecond}

	// Centred on a 10-bit stick, far below the game calibration.
	st := &stick{values: map[int]int{0: 512, 1: 512}}
	d, err := Setup(Hardware{Sensor: st, Lines: lines{}}, ModeJoystick, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if d.Intent() != input.Neutral {
		t.Fatalf("intent = %v, want neutral", d.Intent())
	}

	if got := ModeJoystick.FrameDelay(); got != 100*time.Millisecond {
		t.Errorf("joystick frame delay = %v, want 100ms", got)
	}
	if got := ModeGame.FrameDelay(); got != cfg.Loop.FrameDelay {
		t.Errorf("game frame delay = %v, want %v", got, cfg.Loop.FrameDelay)
	}
	if got := ModeGame.Input().X.Center; got != 2500 {
		t.Errorf("game center = %d, want 2500", got)
	}

	cfg.Joystick = cfg.JoystickConfig{}
	if err := d.Reconfigure(); err != nil {
		t.Fatal(err)
	}
	if err := d.Step(); err != nil {
		t.Fatal(err)
	}
	if d.Intent() != (input.Intent{X: input.Left, Y: input.Up}) {
		t.Fatalf("intent after dropping overrides = %v, want left/up", d.Intent())
	}
}
