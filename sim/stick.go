// Package sim provides stand-in hardware for running the console on a
// desktop: an eased analog stick, recorded indicator lines and a level
// file watcher.
package sim

import (
	"sync"
	"time"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/input"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTravel is how long the simulated stick takes to reach a new
// deflection.
const DefaultTravel = 80 * time.Millisecond

type axis struct {
	channel int
	center  int
	max     int
	value   float32
	target  float32
	tween   *gween.Tween
}

// Stick is an input.Sensor whose axes glide towards the deflection set by
// Push, like a thumb stick under a finger.
type Stick struct {
	mu     sync.Mutex
	x, y   axis
	travel float32 // seconds
}

// NewStick returns a centred stick matching the configured axes.
func NewStick(travel time.Duration) *Stick {
	return NewStickFrom(cfg.Input, travel)
}

// NewStickFrom returns a stick centred on the axes of in.
func NewStickFrom(in cfg.InputConfig, travel time.Duration) *Stick {
	newAxis := func(a cfg.AxisConfig) axis {
		c := float32(a.Center)
		return axis{channel: a.Channel, center: a.Center, max: in.SensorMax, value: c, target: c}
	}
	return &Stick{
		x:      newAxis(in.X),
		y:      newAxis(in.Y),
		travel: float32(travel.Seconds()),
	}
}

// Push sets the deflection the stick is moving towards. Left and Up pull
// an axis to 0, Right and Down to full scale.
func (s *Stick) Push(in input.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.x.aim(deflection(s.x, in.X == input.Left, in.X == input.Right), s.travel)
	s.y.aim(deflection(s.y, in.Y == input.Up, in.Y == input.Down), s.travel)
}

func deflection(a axis, low, high bool) float32 {
	switch {
	case low:
		return 0
	case high:
		return float32(a.max)
	}
	return float32(a.center)
}

func (a *axis) aim(target, travel float32) {
	if target == a.target {
		return
	}
	a.target = target
	if travel <= 0 {
		a.value, a.tween = target, nil
		return
	}
	a.tween = gween.New(a.value, target, travel, ease.OutQuad)
}

// Update advances the glide by dt seconds.
func (s *Stick) Update(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x.update(dt)
	s.y.update(dt)
}

func (a *axis) update(dt float32) {
	if a.tween == nil {
		return
	}
	v, done := a.tween.Update(dt)
	a.value = v
	if done {
		a.value, a.tween = a.target, nil
	}
}

// ReadAxis implements input.Sensor. Unknown channels read as centred.
func (s *Stick) ReadAxis(channel int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch channel {
	case s.x.channel:
		return int(s.x.value), nil
	case s.y.channel:
		return int(s.y.value), nil
	}
	return s.x.center, nil
}
