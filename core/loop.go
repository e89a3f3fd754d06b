package core

import (
	"context"
	"log"
	"sync"
	"time"
)

// Stepper advances the system by one tick.
type Stepper interface {
	Step() error
}

// GameLoop calls Step at a fixed cadence until stopped, cancelled or a
// tick fails.
type GameLoop struct {
	stepper  Stepper
	delay    time.Duration
	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(stepper Stepper, delay time.Duration) *GameLoop {
	return &GameLoop{
		stepper:  stepper,
		delay:    delay,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until ctx is done, Stop is called or a tick returns an error.
// That error is returned; a normal stop returns nil.
func (g *GameLoop) Run(ctx context.Context) error {
	g.setRunning(true)
	defer g.setRunning(false)

	ticker := time.NewTicker(g.delay)
	defer ticker.Stop()

	log.Printf("Game loop started, one tick every %v", g.delay)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return nil
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
			if err := g.stepper.Step(); err != nil {
				log.Printf("Tick error: %v", err)
				return err
			}
		}
	}
}

// Stop ends Run. It may be called more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Running reports whether Run is active.
func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *GameLoop) setRunning(v bool) {
	g.mu.Lock()
	g.running = v
	g.mu.Unlock()
}
