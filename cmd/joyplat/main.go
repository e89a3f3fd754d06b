package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/core"
	"github.com/automoto/joyplat/hw/periph"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (empty = built-in defaults)")
	levelPath := flag.String("level", "", "TMX level file (empty = built-in level)")
	modeName := flag.String("mode", string(core.ModeGame), "game or joystick (indicators only)")
	verbose := flag.Bool("verbose", false, "Log every raw stick sample")
	delay := flag.Duration("delay", 0, "Frame delay (0 = from configuration)")
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
	frameDelay := mode.FrameDelay()
	if *delay > 0 {
		frameDelay = *delay
	}

	board, err := periph.Open()
	if err != nil {
		log.Fatalf("Failed to open hardware: %v", err)
	}

	driver, err := core.Setup(core.Hardware{Sensor: board, Lines: board, Display: board.Display}, mode, *levelPath)
	if err != nil {
		board.Close()
		log.Fatalf("Failed to set up %s mode: %v", mode, err)
	}
	driver.SetVerbose(*verbose || cfg.Loop.Verbose)

	loop := core.NewGameLoop(driver, frameDelay)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Starting joyplat in %s mode (frame delay %v)", mode, frameDelay)
	runErr := loop.Run(context.Background())

	if err := board.Close(); err != nil {
		log.Printf("Hardware close error: %v", err)
	}
	if runErr != nil {
		log.Fatalf("Loop error: %v", runErr)
	}
	st := driver.Stats()
	log.Printf("Ran %d ticks, %d frames shown, score %d", st.Ticks, st.Committed, driver.State().Score)
}
