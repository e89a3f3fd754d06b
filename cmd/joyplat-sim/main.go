package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"time"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/core"
	"github.com/automoto/joyplat/display/ssd1306"
	"github.com/automoto/joyplat/indicator"
	"github.com/automoto/joyplat/input"
	"github.com/automoto/joyplat/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowScale = 6
	stripHeight = 10 // indicator row under the panel
	lampSize    = 6
)

var (
	panelColor = color.RGBA{0x9c, 0xe4, 0xff, 0xff}
	lampOff    = color.RGBA{0x30, 0x10, 0x10, 0xff}
	lampOn     = color.RGBA{0xff, 0x40, 0x30, 0xff}
)

type Game struct {
	driver   *core.Driver
	stick    *sim.Stick
	emulator *ssd1306.Emulator
	reloader *sim.Reloader

	panel *ebiten.Image
	lamp  *ebiten.Image
	pix   []byte
	dt    float32
}

func NewGame(levelPath, configPath string, mode core.Mode) (*Game, error) {
	g := &Game{
		stick:    sim.NewStickFrom(mode.Input(), sim.DefaultTravel),
		emulator: ssd1306.NewEmulator(cfg.Display.Width, cfg.Display.Height, cfg.Display.ColumnOffset),
		panel:    ebiten.NewImage(cfg.Display.Width, cfg.Display.Height),
		lamp:     ebiten.NewImage(lampSize, lampSize),
		pix:      make([]byte, 4*cfg.Display.Width*cfg.Display.Height),
		dt:       float32(mode.FrameDelay().Seconds()),
	}
	g.lamp.Fill(color.White)

	driver, err := core.Setup(core.Hardware{Sensor: g.stick, Lines: &sim.Lines{}, Display: g.emulator}, mode, levelPath)
	if err != nil {
		return nil, err
	}
	g.driver = driver

	if mode == core.ModeGame && (levelPath != "" || configPath != "") {
		r, err := sim.NewReloader(levelPath, configPath)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			g.reloader = r
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.stick.Push(keyboardIntent())
	g.stick.Update(g.dt)

	if g.reloader != nil {
		g.reloader.Poll(g.driver)
	}
	return g.driver.Step()
}

func keyboardIntent() input.Intent {
	var in input.Intent
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		in.X = input.Left
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		in.X = input.Right
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace):
		in.Y = input.Up
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		in.Y = input.Down
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawPanel()
	screen.DrawImage(g.panel, nil)

	lamps := []struct {
		line indicator.Line
		x    int
	}{
		{indicator.Left, 0},
		{indicator.Up, 1},
		{indicator.Down, 2},
		{indicator.Right, 3},
	}
	state := g.driver.Indicators()
	spacing := cfg.Display.Width / len(lamps)
	for _, l := range lamps {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(l.x*spacing+(spacing-lampSize)/2), float64(cfg.Display.Height+(stripHeight-lampSize)/2))
		c := lampOff
		if state[l.line] {
			c = lampOn
		}
		op.ColorScale.ScaleWithColor(c)
		screen.DrawImage(g.lamp, op)
	}
}

// drawPanel copies what the emulated controller shows into g.panel.
func (g *Game) drawPanel() {
	img := g.emulator.Image()
	copyLit(g.pix, img, panelColor)
	g.panel.WritePixels(g.pix)
}

func copyLit(dst []byte, img *image.Gray, on color.RGBA) {
	for i, y := range img.Pix {
		o := dst[4*i : 4*i+4]
		if y != 0 {
			o[0], o[1], o[2] = on.R, on.G, on.B
		} else {
			o[0], o[1], o[2] = 0, 0, 0
		}
		o[3] = 0xff
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.Display.Width, cfg.Display.Height + stripHeight
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	levelPath := flag.String("level", "", "TMX level file, reloaded when it changes")
	modeName := flag.String("mode", string(core.ModeGame), "game or joystick")
	verbose := flag.Bool("verbose", false, "Log every raw stick sample")
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

	game, err := NewGame(*levelPath, *configPath, mode)
	if err != nil {
		log.Fatalf("Failed to start simulator: %v", err)
	}
	game.driver.SetVerbose(*verbose || cfg.Loop.Verbose)
	if game.reloader != nil {
		defer game.reloader.Close()
	}

	ebiten.SetTPS(int(time.Second / mode.FrameDelay()))
	ebiten.SetWindowSize(cfg.Display.Width*windowScale, (cfg.Display.Height+stripHeight)*windowScale)
	ebiten.SetWindowTitle("joyplat")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Simulator stopped: %v", err)
	}
}
