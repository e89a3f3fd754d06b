package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/core"
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/indicator"
	"github.com/automoto/joyplat/input"
	"github.com/automoto/joyplat/sim"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses but not releases, so a direction is held
// for this long after its last key event.
const holdTime = 150 * time.Millisecond

type heldIntent struct {
	x, y           input.Intent
	xUntil, yUntil time.Time
}

func (h *heldIntent) press(in input.Intent, now time.Time) {
	if in.X != input.HorizontalNeutral {
		h.x, h.xUntil = in, now.Add(holdTime)
	}
	if in.Y != input.VerticalNeutral {
		h.y, h.yUntil = in, now.Add(holdTime)
	}
}

func (h *heldIntent) current(now time.Time) input.Intent {
	var in input.Intent
	if now.Before(h.xUntil) {
		in.X = h.x.X
	}
	if now.Before(h.yUntil) {
		in.Y = h.y.Y
	}
	return in
}

type Term struct {
	screen   tcell.Screen
	driver   *core.Driver
	stick    *sim.Stick
	emulator *ssd1306.Emulator
	reloader *sim.Reloader
	held     heldIntent
	delay    time.Duration
}

func keyIntent(ev *tcell.EventKey) (input.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.Intent{X: input.Left}, true
	case tcell.KeyRight:
		return input.Intent{X: input.Right}, true
	case tcell.KeyUp:
		return input.Intent{Y: input.Up}, true
	case tcell.KeyDown:
		return input.Intent{Y: input.Down}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return input.Intent{X: input.Left}, true
		case 'd', 'l':
			return input.Intent{X: input.Right}, true
		case 'w', 'k', ' ':
			return input.Intent{Y: input.Up}, true
		case 's', 'j':
			return input.Intent{Y: input.Down}, true
		}
	}
	return input.Neutral, false
}

func (t *Term) run() error {
	ticker := time.NewTicker(t.delay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	dt := float32(t.delay.Seconds())
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if in, ok := keyIntent(ev); ok {
					t.held.press(in, time.Now())
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case now := <-ticker.C:
			t.stick.Push(t.held.current(now))
			t.stick.Update(dt)
			if t.reloader != nil {
				t.reloader.Poll(t.driver)
			}
			if err := t.driver.Step(); err != nil {
				return err
			}
			t.draw()
		}
	}
}

// draw shows two panel rows per terminal cell using the upper half block.
func (t *Term) draw() {
	t.screen.Clear()
	img := t.emulator.Image()
	b := img.Bounds()

	lit := tcell.ColorAqua
	dark := tcell.ColorBlack
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top, bottom := dark, dark
			if img.GrayAt(x, y).Y != 0 {
				top = lit
			}
			if y+1 < b.Max.Y && img.GrayAt(x, y+1).Y != 0 {
				bottom = lit
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}

	row := (b.Dy() + 1) / 2
	state := t.driver.Indicators()
	lamps := []struct {
		line  indicator.Line
		label rune
	}{
		{indicator.Left, '<'},
		{indicator.Up, '^'},
		{indicator.Down, 'v'},
		{indicator.Right, '>'},
	}
	for i, l := range lamps {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if state[l.line] {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}
		t.screen.SetContent(2*i, row, l.label, nil, style)
	}

	status := fmt.Sprintf("score %d  x %d y %d  q quits", t.driver.State().Score, t.driver.Sample().X, t.driver.Sample().Y)
	for i, r := range status {
		t.screen.SetContent(10+i, row, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	levelPath := flag.String("level", "", "TMX level file, reloaded when it changes")
	modeName := flag.String("mode", string(core.ModeGame), "game or joystick")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	mode, err := core.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}

	// Log lines would corrupt the screen.
	logFile, err := os.CreateTemp("", "joyplat-term-*.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	t := &Term{
		stick:    sim.NewStickFrom(mode.Input(), sim.DefaultTravel),
		emulator: ssd1306.NewEmulator(cfg.Display.Width, cfg.Display.Height, cfg.Display.ColumnOffset),
		delay:    mode.FrameDelay(),
	}
	t.driver, err = core.Setup(core.Hardware{Sensor: t.stick, Lines: &sim.Lines{}, Display: t.emulator}, mode, *levelPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if mode == core.ModeGame && (*levelPath != "" || *configPath != "") {
		if t.reloader, err = sim.NewReloader(*levelPath, *configPath); err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer t.reloader.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	t.screen = screen

	runErr := t.run()
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "joyplat-term: %v\n", runErr)
		os.Exit(1)
	}
}
