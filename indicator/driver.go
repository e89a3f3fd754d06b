// Package indicator mirrors the current stick intent on four output lines.
package indicator

import (
	"fmt"

	"github.com/automoto/joyplat/input"
)

// Line identifies one indicator output.
type Line int

const (
	Up Line = iota
	Down
	Left
	Right
	LineCount // Must be last - used for array sizing
)

func (l Line) String() string {
	switch l {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("line(%d)", int(l))
}

// Output drives a single boolean line.
type Output interface {
	Set(line Line, on bool) error
}

// State is the on/off level of every line.
type State [LineCount]bool

// StateFor returns the lines an intent lights: at most one horizontal and
// one vertical.
func StateFor(in input.Intent) State {
	var s State
	switch in.X {
	case input.Left:
		s[Left] = true
	case input.Right:
		s[Right] = true
	}
	switch in.Y {
	case input.Up:
		s[Up] = true
	case input.Down:
		s[Down] = true
	}
	return s
}

// Driver applies intents to an Output.
type Driver struct {
	out   Output
	state State
}

func NewDriver(out Output) *Driver {
	return &Driver{out: out}
}

// Apply clears every line and then sets the lines matching the intent.
// Applying the same intent twice leaves the outputs unchanged.
func (d *Driver) Apply(in input.Intent) error {
	for l := Line(0); l < LineCount; l++ {
		if err := d.out.Set(l, false); err != nil {
			return fmt.Errorf("clear %s indicator: %w", l, err)
		}
		d.state[l] = false
	}

	want := StateFor(in)
	for l := Line(0); l < LineCount; l++ {
		if !want[l] {
			continue
		}
		if err := d.out.Set(l, true); err != nil {
			return fmt.Errorf("set %s indicator: %w", l, err)
		}
		d.state[l] = true
	}
	return nil
}

// State returns the last applied line levels.
func (d *Driver) State() State {
	return d.state
}
