package sim

import (
	"sync"

	"github.com/automoto/joyplat/indicator"
)

// Lines is an indicator.Output that only remembers line levels.
type Lines struct {
	mu    sync.Mutex
	state indicator.State
}

func (l *Lines) Set(line indicator.Line, on bool) error {
	l.mu.Lock()
	l.state[line] = on
	l.mu.Unlock()
	return nil
}

// State returns the current line levels.
func (l *Lines) State() indicator.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
